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
)

// UpdateHookshotFire launches the hookshot. Only one can be out at a time
// and the player is rooted until it is gone.
func UpdateHookshotFire(ecs *ecs.ECS) {
	input := components.Input.Get(components.Input.MustFirst(ecs.World))
	if !GetAction(input, cfg.ActionHookshot).JustPressed {
		return
	}

	player := tags.Player.MustFirst(ecs.World)
	if player.HasComponent(tags.HookshotFired) {
		return
	}
	player.AddComponent(tags.HookshotFired)

	indicator := tags.DirectionIndicator.MustFirst(ecs.World)
	factory.CreateHookshot(ecs, components.Transform.Get(indicator).Position, components.Indicator.Get(indicator).Facing)
}

// UpdateHookshot flies the hookshot until it grabs something hookshotable,
// then holds it there. A flying or latched hookshot retracts when it gets
// out of range of the player or leaves the screen.
//
// A latched hookshot also retracts after config.Hookshot.LatchHold seconds.
// A latch inside range would otherwise never end and the player, rooted
// while the hookshot is out, could not move again. The hold limit applies
// to the latch only; flight ends on range or culling alone.
func UpdateHookshot(ecs *ecs.ECS) {
	camera := components.Camera.Get(components.Camera.MustFirst(ecs.World))
	player := tags.Player.MustFirst(ecs.World)
	playerPos := components.Transform.Get(player).Position
	tile := cfg.Grid.TileSize
	dt := frameDelta(ecs.World)

	var latched, retracted []*donburi.Entry
	tags.Hookshot.Each(ecs.World, func(e *donburi.Entry) {
		attack := components.Attack.Get(e)
		transform := components.Transform.Get(e)

		if e.HasComponent(components.Latch) {
			latch := components.Latch.Get(e)
			latch.Held += dt
			if latch.Held >= cfg.Hookshot.LatchHold {
				retracted = append(retracted, e)
				return
			}
		} else {
			transform.Position = tilemath.Ahead(transform.Position, attack.Facing,
				tilemath.ManualDisplacement(attack.Speed, tile, dt))

			if _, hit := findHit(ecs.World, transform.Position, attack.Size, e.Entity(), tags.ResolvHookshotable); hit {
				latched = append(latched, e)
			}
		}

		if tilemath.OutOfRange(transform.Position, playerPos, cfg.Hookshot.Range*tile) ||
			offScreen(camera, transform.Position) {
			retracted = append(retracted, e)
		}
	})

	for _, e := range latched {
		if !e.Valid() || e.HasComponent(components.Latch) {
			continue
		}
		e.AddComponent(components.Latch)
		pos := components.Transform.Get(e).Position
		logger.Log.WithFields(logrus.Fields{"x": pos.X, "y": pos.Y}).Debug("hookshot latched")
	}

	for _, e := range retracted {
		if !e.Valid() {
			continue
		}
		destroy(ecs.World, e)
		if player.HasComponent(tags.HookshotFired) {
			player.RemoveComponent(tags.HookshotFired)
		}
		logger.Log.Debug("hookshot retracted")
	}
}
