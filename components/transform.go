package components

import (
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/features/math"
)

// TransformData is an entity's centre in world space.
type TransformData struct {
	Position math.Vec2
}

var Transform = donburi.NewComponentType[TransformData]()
