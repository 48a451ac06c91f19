package tilemath

import (
	"math"

	math2 "github.com/yohamta/donburi/features/math"
)

// snapTolerance decides when an auto-snap step has reached the boundary.
const snapTolerance = 1e-6

// ManualDisplacement is the distance covered in dt at speed tiles/second,
// truncated toward zero to a whole number of world units.
func ManualDisplacement(speed, tile, dt float64) float64 {
	return math.Trunc(speed * tile * dt)
}

// SnapDistance is how far a mover committed to m still has to travel along
// its axis to reach the next tile boundary in that direction.
//
// The remainder keeps the sign of the coordinate, so negative coordinates
// measure from the boundary on their own side of zero.
func SnapDistance(pos math2.Vec2, m Movement, tile float64) float64 {
	var axis float64
	switch m {
	case MoveUp, MoveDown:
		axis = pos.Y
	case MoveLeft, MoveRight:
		axis = pos.X
	default:
		return 0
	}

	signed := math.Mod(axis, tile)
	switch m {
	case MoveUp, MoveRight:
		if signed >= 0 {
			return tile - signed
		}
		return math.Abs(signed)
	default:
		if signed >= 0 {
			return signed
		}
		return tile - math.Abs(signed)
	}
}

// AutoSnap returns the step magnitude a committed mover takes this frame
// with no key held, and the commitment that follows. The commitment drops
// to Neutral on the frame the step lands on the boundary.
func AutoSnap(pos math2.Vec2, m Movement, speed, tile, dt float64) (float64, Movement) {
	if m == MoveNeutral {
		return 0, MoveNeutral
	}
	dist := SnapDistance(pos, m, tile)
	delta := math.Trunc(math.Min(math.Abs(speed*tile*dt), dist))
	if math.Abs(delta-dist) <= snapTolerance {
		return delta, MoveNeutral
	}
	return delta, m
}

// Displace offsets pos by dist along the axis of m.
func Displace(pos math2.Vec2, m Movement, dist float64) math2.Vec2 {
	f, ok := m.Facing()
	if !ok {
		return pos
	}
	return Ahead(pos, f, dist)
}

// Step resolves one frame of the movement state machine. It returns the
// candidate position and the commitment that goes with it.
//
// A held key is honoured when the mover is Neutral or already committed to
// that key's direction, in priority order up, down, left, right. With no
// usable key a committed mover keeps sliding toward the next boundary.
func Step(pos math2.Vec2, current Movement, held Held, speed, tile, dt float64) (math2.Vec2, Movement) {
	key, ok := held.First(func(f Facing) bool {
		return current == MoveNeutral || current == f.Movement()
	})
	if ok {
		next := key.Movement()
		return Displace(pos, next, ManualDisplacement(speed, tile, dt)), next
	}

	if current == MoveNeutral {
		return pos, MoveNeutral
	}
	delta, next := AutoSnap(pos, current, speed, tile, dt)
	return Displace(pos, current, delta), next
}

// OutOfRange reports whether a and b are more than limit apart on either
// axis.
func OutOfRange(a, b math2.Vec2, limit float64) bool {
	return math.Abs(a.X-b.X) > limit || math.Abs(a.Y-b.Y) > limit
}
