package components

import (
	"github.com/automoto/timetravel/shared/tilemath"
	"github.com/yohamta/donburi"
)

// MoverData is the player's grid-locked movement state.
type MoverData struct {
	Movement tilemath.Movement
	Speed    float64 // tiles per second
}

var Mover = donburi.NewComponentType[MoverData]()
