package tilemath

import (
	"math"

	math2 "github.com/yohamta/donburi/features/math"
)

// Candidate is an obstacle the collision test may hit.
type Candidate[ID comparable] struct {
	ID       ID
	Position math2.Vec2
}

// Overlaps reports whether two centred boxes intersect. Boxes that only
// share an edge do not overlap.
func Overlaps(aPos, aSize, bPos, bSize math2.Vec2) bool {
	return math.Abs(aPos.X-bPos.X) < (aSize.X+bSize.X)/2 &&
		math.Abs(aPos.Y-bPos.Y) < (aSize.Y+bSize.Y)/2
}

// CheckCollision tests a box of size at pos against a tile-sized box at each
// candidate and returns the position of the first one it overlaps.
// Candidates carrying the self identity are ignored.
func CheckCollision[ID comparable](pos math2.Vec2, self ID, candidates []Candidate[ID], size math2.Vec2, tile float64) (math2.Vec2, bool) {
	hit, ok := FirstHit(pos, self, candidates, size, tile)
	return hit.Position, ok
}

// FirstHit is CheckCollision returning the whole candidate.
func FirstHit[ID comparable](pos math2.Vec2, self ID, candidates []Candidate[ID], size math2.Vec2, tile float64) (Candidate[ID], bool) {
	tileSize := math2.Vec2{X: tile, Y: tile}
	for _, c := range candidates {
		if c.ID == self {
			continue
		}
		if Overlaps(pos, size, c.Position, tileSize) {
			return c, true
		}
	}
	return Candidate[ID]{}, false
}

// AttackFootprint returns the size of an attack elongated along f.
func AttackFootprint(f Facing, length, width float64) math2.Vec2 {
	if f.Vertical() {
		return math2.Vec2{X: width, Y: length}
	}
	return math2.Vec2{X: length, Y: width}
}
