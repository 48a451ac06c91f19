package archetypes

import (
	"github.com/automoto/timetravel/components"
	cfg "github.com/automoto/timetravel/config"
	"github.com/automoto/timetravel/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

var (
	Player = newArchetype(
		tags.Player,
		components.Mover,
		components.Transform,
	)
	DirectionIndicator = newArchetype(
		tags.DirectionIndicator,
		components.Indicator,
		components.Transform,
	)
	// Obstacles get their role tags at spawn.
	Obstacle = newArchetype(
		tags.Obstacle,
		components.Transform,
		components.Object,
	)
	Arrow = newArchetype(
		tags.Arrow,
		components.Attack,
		components.Transform,
	)
	Projectile = newArchetype(
		tags.Projectile,
		components.Attack,
		components.Transform,
	)
	Hookshot = newArchetype(
		tags.Hookshot,
		components.Attack,
		components.Transform,
	)
	Grid = newArchetype(
		components.Grid,
	)
	Camera = newArchetype(
		components.Camera,
	)
	Clock = newArchetype(
		components.Clock,
	)
	Input = newArchetype(
		components.Input,
	)
	Arsenal = newArchetype(
		components.Arsenal,
	)
)

type archetype struct {
	components []donburi.IComponentType
}

func newArchetype(cs ...donburi.IComponentType) *archetype {
	return &archetype{
		components: cs,
	}
}

func (a *archetype) Spawn(ecs *ecs.ECS, cs ...donburi.IComponentType) *donburi.Entry {
	all := make([]donburi.IComponentType, 0, len(a.components)+len(cs))
	all = append(all, a.components...)
	all = append(all, cs...)
	return ecs.World.Entry(ecs.Create(cfg.Default, all...))
}
