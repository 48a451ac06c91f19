// Package leveldata provides TMX level parsing.
// It has no dependencies on ebitengine, donburi or resolv.
//
// Positions are world coordinates: tile centres, X to the right, Y upward,
// with the centre of the map at the origin.
package leveldata

// Level holds everything the world scene needs to populate a map.
type Level struct {
	Name      string
	TileSize  float64
	Bounds    Bounds
	Spawn     Point
	Obstacles []Obstacle
}

// Bounds is the world-space rectangle covered by the map.
type Bounds struct {
	MinX, MinY, MaxX, MaxY float64
}

// Point is a world-space position.
type Point struct {
	X, Y float64
}

// Obstacle is a tile-sized static entity and the roles it plays.
type Obstacle struct {
	X, Y         float64
	Collidable   bool
	Interactable bool
	Hookshotable bool
	Breakable    bool
}
