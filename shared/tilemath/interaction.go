package tilemath

import math2 "github.com/yohamta/donburi/features/math"

// InteractionProbe pushes pos reach tiles toward f.
func InteractionProbe(pos math2.Vec2, f Facing, reach, tile float64) math2.Vec2 {
	return Ahead(pos, f, tile*reach)
}

// InteractionHit reports whether a square probe of boxSize at probe overlaps
// the tile-sized box centred on target.
func InteractionHit(probe math2.Vec2, boxSize float64, target math2.Vec2, tile float64) bool {
	return Overlaps(probe, math2.Vec2{X: boxSize, Y: boxSize}, target, math2.Vec2{X: tile, Y: tile})
}
