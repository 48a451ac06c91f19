package factory

import (
	"github.com/automoto/timetravel/archetypes"
	"github.com/automoto/timetravel/components"
	cfg "github.com/automoto/timetravel/config"
	"github.com/automoto/timetravel/shared/tilemath"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
	math2 "github.com/yohamta/donburi/features/math"
)

// CreatePlayer spawns the mover and its facing indicator. The indicator
// starts facing up.
func CreatePlayer(ecs *ecs.ECS, pos math2.Vec2) *donburi.Entry {
	player := archetypes.Player.Spawn(ecs)

	components.Transform.SetValue(player, components.TransformData{Position: pos})
	components.Mover.SetValue(player, components.MoverData{
		Movement: tilemath.MoveNeutral,
		Speed:    cfg.Player.Speed,
	})

	indicator := archetypes.DirectionIndicator.Spawn(ecs)
	components.Indicator.SetValue(indicator, components.IndicatorData{
		Owner:  player.Entity(),
		Facing: tilemath.FacingUp,
		Lock:   tilemath.LockNone,
	})
	components.Transform.SetValue(indicator, components.TransformData{
		Position: tilemath.Ahead(pos, tilemath.FacingUp, cfg.Grid.IndicatorOffset),
	})

	return player
}
