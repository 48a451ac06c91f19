package factory

import (
	"github.com/automoto/timetravel/archetypes"
	"github.com/automoto/timetravel/components"
	cfg "github.com/automoto/timetravel/config"
	"github.com/automoto/timetravel/shared/leveldata"
	"github.com/automoto/timetravel/shared/tilemath"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
	math2 "github.com/yohamta/donburi/features/math"
)

func CreateCamera(ecs *ecs.ECS, pos math2.Vec2) *donburi.Entry {
	camera := archetypes.Camera.Spawn(ecs)
	components.Camera.SetValue(camera, components.CameraData{Position: pos})
	return camera
}

func CreateClock(ecs *ecs.ECS) *donburi.Entry {
	return archetypes.Clock.Spawn(ecs)
}

func CreateInput(ecs *ecs.ECS) *donburi.Entry {
	return archetypes.Input.Spawn(ecs)
}

// CreateArsenal creates the attack cooldowns, all ready to fire.
func CreateArsenal(ecs *ecs.ECS) *donburi.Entry {
	arsenal := archetypes.Arsenal.Spawn(ecs)
	components.Arsenal.SetValue(arsenal, components.ArsenalData{
		Arrow:      tilemath.NewCooldown(cfg.Arrow.Cooldown),
		Projectile: tilemath.NewCooldown(cfg.Projectile.Cooldown),
	})
	return arsenal
}

// CreateWorld populates an empty world from level: singletons first, then
// the grid, the obstacles and finally the player.
func CreateWorld(ecs *ecs.ECS, level *leveldata.Level) *donburi.Entry {
	spawn := math2.Vec2{X: level.Spawn.X, Y: level.Spawn.Y}

	CreateClock(ecs)
	CreateInput(ecs)
	CreateArsenal(ecs)
	CreateCamera(ecs, spawn)
	CreateGrid(ecs, level.Bounds)

	for _, o := range level.Obstacles {
		CreateObstacle(ecs, o)
	}
	return CreatePlayer(ecs, spawn)
}
