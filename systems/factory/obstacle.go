package factory

import (
	"github.com/automoto/timetravel/archetypes"
	"github.com/automoto/timetravel/components"
	cfg "github.com/automoto/timetravel/config"
	"github.com/automoto/timetravel/shared/leveldata"
	"github.com/automoto/timetravel/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
	math2 "github.com/yohamta/donburi/features/math"
)

// CreateObstacle spawns a tile-sized static entity with the roles in def.
func CreateObstacle(ecs *ecs.ECS, def leveldata.Obstacle) *donburi.Entry {
	var roles []donburi.IComponentType
	var resolvTags []string
	if def.Collidable {
		roles = append(roles, tags.Collidable)
		resolvTags = append(resolvTags, tags.ResolvCollidable)
	}
	if def.Interactable {
		roles = append(roles, tags.Interactable)
		resolvTags = append(resolvTags, tags.ResolvInteractable)
	}
	if def.Hookshotable {
		roles = append(roles, tags.Hookshotable)
		resolvTags = append(resolvTags, tags.ResolvHookshotable)
	}
	if def.Breakable {
		roles = append(roles, tags.Breakable)
	}

	obstacle := archetypes.Obstacle.Spawn(ecs, roles...)
	pos := math2.Vec2{X: def.X, Y: def.Y}
	components.Transform.SetValue(obstacle, components.TransformData{Position: pos})

	grid := components.Grid.Get(components.Grid.MustFirst(ecs.World))
	tile := cfg.Grid.TileSize
	obj := grid.Place(obstacle, pos, math2.Vec2{X: tile, Y: tile}, resolvTags...)
	components.Object.SetValue(obstacle, components.ObjectData{Object: obj})

	return obstacle
}
