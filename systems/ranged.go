package systems

import (
	"github.com/automoto/timetravel/components"
	cfg "github.com/automoto/timetravel/config"
	"github.com/automoto/timetravel/logger"
	"github.com/automoto/timetravel/shared/tilemath"
	"github.com/automoto/timetravel/systems/factory"
	"github.com/automoto/timetravel/tags"
	"github.com/sirupsen/logrus"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
	math2 "github.com/yohamta/donburi/features/math"
)

type spawnFunc func(*ecs.ECS, math2.Vec2, tilemath.Facing) *donburi.Entry

// UpdateArsenal ticks the attack cooldowns and fires arrows and projectiles.
func UpdateArsenal(ecs *ecs.ECS) {
	arsenal := components.Arsenal.Get(components.Arsenal.MustFirst(ecs.World))
	input := components.Input.Get(components.Input.MustFirst(ecs.World))
	dt := frameDelta(ecs.World)

	fireWhenReady(ecs, &arsenal.Arrow, input, cfg.ActionFire, dt, factory.CreateArrow)
	fireWhenReady(ecs, &arsenal.Projectile, input, cfg.ActionSkill, dt, factory.CreateProjectile)
}

func fireWhenReady(ecs *ecs.ECS, cd *tilemath.Cooldown, input *components.InputData, action cfg.ActionID, dt float64, spawn spawnFunc) {
	cd.Tick(dt)
	if !GetAction(input, action).JustPressed || !cd.Ready() {
		return
	}
	cd.Reset()

	indicator := tags.DirectionIndicator.MustFirst(ecs.World)
	spawn(ecs, components.Transform.Get(indicator).Position, components.Indicator.Get(indicator).Facing)
}

// UpdateAttacks flies arrows and projectiles and removes the ones that hit
// something or left the screen. A breakable obstacle that is hit goes too.
func UpdateAttacks(ecs *ecs.ECS) {
	camera := components.Camera.Get(components.Camera.MustFirst(ecs.World))
	tile := cfg.Grid.TileSize
	dt := frameDelta(ecs.World)

	var toRemove []*donburi.Entry
	components.Attack.Each(ecs.World, func(e *donburi.Entry) {
		attack := components.Attack.Get(e)
		if attack.Kind == components.AttackHookshot {
			return
		}

		transform := components.Transform.Get(e)
		transform.Position = tilemath.Ahead(transform.Position, attack.Facing,
			tilemath.ManualDisplacement(attack.Speed, tile, dt))

		if target, hit := findHit(ecs.World, transform.Position, attack.Size, e.Entity(), tags.ResolvCollidable); hit {
			logger.Log.WithFields(logrus.Fields{
				"kind": attack.Kind,
				"x":    transform.Position.X,
				"y":    transform.Position.Y,
			}).Debug("attack hit")
			toRemove = append(toRemove, e)
			if target.HasComponent(tags.Breakable) {
				toRemove = append(toRemove, target)
			}
			return
		}

		if offScreen(camera, transform.Position) {
			toRemove = append(toRemove, e)
		}
	})

	for _, e := range toRemove {
		destroy(ecs.World, e)
	}
}

func offScreen(camera *components.CameraData, pos math2.Vec2) bool {
	screen := math2.Vec2{X: float64(cfg.C.Width), Y: float64(cfg.C.Height)}
	return tilemath.OutOfBounds(camera.Position, pos, screen, cfg.Culling.Divisor)
}
