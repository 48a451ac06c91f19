package components

import "github.com/yohamta/donburi"

// ClockData carries the frame's elapsed time to the systems.
type ClockData struct {
	Delta   float64 // seconds since the previous frame
	Elapsed float64 // seconds since the world started
}

var Clock = donburi.NewComponentType[ClockData]()
