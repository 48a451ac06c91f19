package tilemath

import (
	"math"

	math2 "github.com/yohamta/donburi/features/math"
)

// OutOfBounds reports whether pos has left the area around camera.
//
// Distances compare the magnitudes of each coordinate rather than the
// coordinates themselves, which makes the test symmetric under a sign
// flip of both points.
func OutOfBounds(camera, pos, screen math2.Vec2, divisor float64) bool {
	dx := math.Abs(math.Abs(pos.X) - math.Abs(camera.X))
	dy := math.Abs(math.Abs(pos.Y) - math.Abs(camera.Y))
	return dx > screen.X/divisor || dy > screen.Y/divisor
}
