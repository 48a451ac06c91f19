package systems

import (
	"github.com/automoto/timetravel/components"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// UpdateClock advances the world clock by one ebiten tick.
func UpdateClock(ecs *ecs.ECS) {
	AdvanceClock(ecs.World, 1/float64(ebiten.TPS()))
}

// AdvanceClock records dt as this frame's elapsed time.
func AdvanceClock(w donburi.World, dt float64) {
	clock := components.Clock.Get(components.Clock.MustFirst(w))
	clock.Delta = dt
	clock.Elapsed += dt
}

func frameDelta(w donburi.World) float64 {
	return components.Clock.Get(components.Clock.MustFirst(w)).Delta
}
