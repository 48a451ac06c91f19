package systems

import (
	"github.com/automoto/timetravel/components"
	cfg "github.com/automoto/timetravel/config"
	"github.com/automoto/timetravel/logger"
	"github.com/automoto/timetravel/shared/tilemath"
	"github.com/automoto/timetravel/tags"
	"github.com/sirupsen/logrus"
	"github.com/yohamta/donburi/ecs"
	math2 "github.com/yohamta/donburi/features/math"
)

// UpdateMovement advances the player one frame along the tile grid.
//
// Held keys move the player freely along one axis; once released the player
// keeps going until it sits on the next tile boundary. A step that would
// overlap a collidable obstacle is dropped and the player stops.
// Nothing moves while the hookshot is out.
func UpdateMovement(ecs *ecs.ECS) {
	player := tags.Player.MustFirst(ecs.World)
	if player.HasComponent(tags.HookshotFired) {
		return
	}

	mover := components.Mover.Get(player)
	transform := components.Transform.Get(player)
	input := components.Input.Get(components.Input.MustFirst(ecs.World))
	tile := cfg.Grid.TileSize

	target, next := tilemath.Step(
		transform.Position,
		mover.Movement,
		heldDirections(input),
		mover.Speed,
		tile,
		frameDelta(ecs.World),
	)

	size := math2.Vec2{X: tile, Y: tile}
	if blocker, hit := findHit(ecs.World, target, size, player.Entity(), tags.ResolvCollidable); hit {
		if mover.Movement != tilemath.MoveNeutral {
			blockedAt := components.Transform.Get(blocker).Position
			logger.Log.WithFields(logrus.Fields{
				"movement": mover.Movement,
				"x":        blockedAt.X,
				"y":        blockedAt.Y,
			}).Debug("movement blocked")
		}
		mover.Movement = tilemath.MoveNeutral
		return
	}

	transform.Position = target
	mover.Movement = next
}
