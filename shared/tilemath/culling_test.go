package tilemath

import (
	"testing"

	"github.com/stretchr/testify/assert"
	math2 "github.com/yohamta/donburi/features/math"
)

var testScreen = math2.Vec2{X: 1600, Y: 900}

func TestOutOfBounds(t *testing.T) {
	tests := []struct {
		name        string
		camera, pos math2.Vec2
		want        bool
	}{
		{"far from origin camera", math2.Vec2{}, math2.Vec2{X: 1000, Y: 1000}, true},
		{"on camera", math2.Vec2{}, math2.Vec2{}, false},
		{"on negative camera", math2.Vec2{X: -1000, Y: -1000}, math2.Vec2{X: -1000, Y: -1000}, false},
		{"origin seen from negative camera", math2.Vec2{X: -1000, Y: -1000}, math2.Vec2{}, true},
		{"inside horizontal margin", math2.Vec2{}, math2.Vec2{X: 800}, false},
		{"past horizontal margin", math2.Vec2{}, math2.Vec2{X: 843}, true},
		{"past vertical margin", math2.Vec2{}, math2.Vec2{Y: 474}, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, OutOfBounds(tt.camera, tt.pos, testScreen, 1.9))
		})
	}
}

func TestOutOfBoundsSignSymmetry(t *testing.T) {
	points := []math2.Vec2{
		{}, {X: 1000, Y: 1000}, {X: -1000, Y: 250}, {X: 320, Y: -780}, {X: -5, Y: -5},
	}
	for _, c := range points {
		for _, p := range points {
			negC := math2.Vec2{X: -c.X, Y: -c.Y}
			negP := math2.Vec2{X: -p.X, Y: -p.Y}
			assert.Equal(t,
				OutOfBounds(c, p, testScreen, 1.9),
				OutOfBounds(negC, negP, testScreen, 1.9),
				"camera %v pos %v", c, p)
		}
	}
}
