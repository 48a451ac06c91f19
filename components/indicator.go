package components

import (
	"github.com/automoto/timetravel/shared/tilemath"
	"github.com/yohamta/donburi"
)

// IndicatorData tracks where the player is aiming.
type IndicatorData struct {
	Owner    donburi.Entity
	Facing   tilemath.Facing
	Rotation float64 // radians in [0, 2π), 0 is up
	Lock     tilemath.RotationLock
}

var Indicator = donburi.NewComponentType[IndicatorData]()
