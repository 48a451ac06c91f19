package systems

import (
	"github.com/automoto/timetravel/components"
	cfg "github.com/automoto/timetravel/config"
	"github.com/automoto/timetravel/shared/tilemath"
	"github.com/automoto/timetravel/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// UpdateFacing points the indicator where the player is going, or, while
// the player stands still, where the player last pressed a direction.
// Holding a key turns the idle indicator once; the lock lifts when that key
// is released.
func UpdateFacing(ecs *ecs.ECS) {
	input := components.Input.Get(components.Input.MustFirst(ecs.World))
	held := heldDirections(input)

	tags.DirectionIndicator.Each(ecs.World, func(e *donburi.Entry) {
		ind := components.Indicator.Get(e)
		owner := ecs.World.Entry(ind.Owner)
		mover := components.Mover.Get(owner)
		ind.Lock = ind.Lock.Release(held)

		if f, moving := mover.Movement.Facing(); moving {
			if f != ind.Facing {
				turn(ind, f)
			}
		} else if key, pressed := held.First(nil); pressed && !ind.Lock.Locks(key) {
			turn(ind, key)
			ind.Lock = tilemath.LockFor(key)
		}

		ownerPos := components.Transform.Get(owner).Position
		components.Transform.Get(e).Position = tilemath.Ahead(ownerPos, ind.Facing, cfg.Grid.IndicatorOffset)
	})
}

func turn(ind *components.IndicatorData, to tilemath.Facing) {
	ind.Rotation = tilemath.NormalizeAngle(ind.Rotation + tilemath.RotationDelta(ind.Facing, to))
	ind.Facing = to
}
