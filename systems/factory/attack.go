package factory

import (
	"github.com/automoto/timetravel/archetypes"
	"github.com/automoto/timetravel/components"
	cfg "github.com/automoto/timetravel/config"
	"github.com/automoto/timetravel/logger"
	"github.com/automoto/timetravel/shared/tilemath"
	"github.com/sirupsen/logrus"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
	math2 "github.com/yohamta/donburi/features/math"
)

// CreateArrow spawns an arrow half a tile ahead of the indicator.
func CreateArrow(ecs *ecs.ECS, indicator math2.Vec2, facing tilemath.Facing) *donburi.Entry {
	size := tilemath.AttackFootprint(facing, cfg.Arrow.Length, cfg.Arrow.Width)
	return createAttack(ecs, archetypes.Arrow.Spawn(ecs), components.AttackData{
		Kind:   components.AttackArrow,
		Facing: facing,
		Speed:  cfg.Arrow.Speed,
		Size:   size,
	}, indicator)
}

// CreateProjectile spawns a projectile half a tile ahead of the indicator.
func CreateProjectile(ecs *ecs.ECS, indicator math2.Vec2, facing tilemath.Facing) *donburi.Entry {
	size := tilemath.AttackFootprint(facing, cfg.Projectile.Length, cfg.Projectile.Width)
	return createAttack(ecs, archetypes.Projectile.Spawn(ecs), components.AttackData{
		Kind:   components.AttackProjectile,
		Facing: facing,
		Speed:  cfg.Projectile.Speed,
		Size:   size,
	}, indicator)
}

// CreateHookshot spawns the hookshot head half a tile ahead of the indicator.
func CreateHookshot(ecs *ecs.ECS, indicator math2.Vec2, facing tilemath.Facing) *donburi.Entry {
	return createAttack(ecs, archetypes.Hookshot.Spawn(ecs), components.AttackData{
		Kind:   components.AttackHookshot,
		Facing: facing,
		Speed:  cfg.Hookshot.Speed,
		Size:   math2.Vec2{X: cfg.Hookshot.Size, Y: cfg.Hookshot.Size},
	}, indicator)
}

func createAttack(ecs *ecs.ECS, entry *donburi.Entry, data components.AttackData, indicator math2.Vec2) *donburi.Entry {
	pos := tilemath.Ahead(indicator, data.Facing, cfg.Grid.TileSize/2)

	components.Attack.SetValue(entry, data)
	components.Transform.SetValue(entry, components.TransformData{Position: pos})

	logger.Log.WithFields(logrus.Fields{
		"kind":   data.Kind,
		"facing": data.Facing,
		"x":      pos.X,
		"y":      pos.Y,
	}).Debug("attack spawned")
	return entry
}
