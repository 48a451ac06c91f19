package tilemath

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	math2 "github.com/yohamta/donburi/features/math"
)

var tileBox = math2.Vec2{X: testTile, Y: testTile}

func TestCheckCollisionIgnoresSelf(t *testing.T) {
	candidates := []Candidate[int]{{ID: 1, Position: math2.Vec2{}}}

	_, hit := CheckCollision(math2.Vec2{}, 1, candidates, tileBox, testTile)
	assert.False(t, hit)

	pos, hit := CheckCollision(math2.Vec2{}, 2, candidates, tileBox, testTile)
	require.True(t, hit)
	assert.Equal(t, math2.Vec2{}, pos)
}

func TestCheckCollisionBoundary(t *testing.T) {
	candidates := []Candidate[int]{{ID: 7, Position: math2.Vec2{X: 500}}}

	tests := []struct {
		name string
		pos  math2.Vec2
		want bool
	}{
		{"touching edge", math2.Vec2{X: 400}, false},
		{"just inside", math2.Vec2{X: 400.5}, true},
		{"diagonal corner", math2.Vec2{X: 400, Y: 100}, false},
		{"overlap on both axes", math2.Vec2{X: 450, Y: 99}, true},
		{"far away", math2.Vec2{X: -500}, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, hit := CheckCollision(tt.pos, 0, candidates, tileBox, testTile)
			assert.Equal(t, tt.want, hit)
		})
	}
}

func TestCheckCollisionReturnsFirstHit(t *testing.T) {
	candidates := []Candidate[string]{
		{ID: "far", Position: math2.Vec2{X: 1000}},
		{ID: "a", Position: math2.Vec2{X: 60}},
		{ID: "b", Position: math2.Vec2{X: -60}},
	}
	pos, hit := CheckCollision(math2.Vec2{}, "player", candidates, tileBox, testTile)
	require.True(t, hit)
	assert.Equal(t, math2.Vec2{X: 60}, pos)

	_, hit = CheckCollision(math2.Vec2{}, "player", nil, tileBox, testTile)
	assert.False(t, hit)
}

func TestCheckCollisionSmallMover(t *testing.T) {
	candidates := []Candidate[int]{{ID: 1, Position: math2.Vec2{Y: 100}}}
	arrow := AttackFootprint(FacingUp, 50, 10)

	_, hit := CheckCollision(math2.Vec2{Y: 25}, 0, candidates, arrow, testTile)
	assert.False(t, hit)
	_, hit = CheckCollision(math2.Vec2{Y: 26}, 0, candidates, arrow, testTile)
	assert.True(t, hit)
}

func TestAttackFootprint(t *testing.T) {
	assert.Equal(t, math2.Vec2{X: 10, Y: 50}, AttackFootprint(FacingUp, 50, 10))
	assert.Equal(t, math2.Vec2{X: 10, Y: 50}, AttackFootprint(FacingDown, 50, 10))
	assert.Equal(t, math2.Vec2{X: 50, Y: 10}, AttackFootprint(FacingLeft, 50, 10))
	assert.Equal(t, math2.Vec2{X: 50, Y: 10}, AttackFootprint(FacingRight, 50, 10))
}

func TestInteractionHit(t *testing.T) {
	target := math2.Vec2{X: 500}
	indicatorOffset := testTile / 6

	adjacent := Ahead(math2.Vec2{X: 400}, FacingRight, indicatorOffset)
	probe := InteractionProbe(adjacent, FacingRight, 0.5, testTile)
	assert.True(t, InteractionHit(probe, 50, target, testTile))

	twoAway := Ahead(math2.Vec2{X: 300}, FacingRight, indicatorOffset)
	probe = InteractionProbe(twoAway, FacingRight, 0.5, testTile)
	assert.False(t, InteractionHit(probe, 50, target, testTile))

	facingAway := Ahead(math2.Vec2{X: 400}, FacingLeft, indicatorOffset)
	probe = InteractionProbe(facingAway, FacingLeft, 0.5, testTile)
	assert.False(t, InteractionHit(probe, 50, target, testTile))
}
