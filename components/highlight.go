package components

import (
	"github.com/tanema/gween"
	"github.com/yohamta/donburi"
)

// HighlightData fades an outline on an entity after it is interacted with.
type HighlightData struct {
	Tween *gween.Tween
	Alpha float32
}

var Highlight = donburi.NewComponentType[HighlightData]()
