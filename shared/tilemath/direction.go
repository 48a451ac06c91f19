// Package tilemath holds the tile-grid rules shared by the game systems:
// direction types, displacement, AABB overlap, culling and cooldowns.
// It has no dependencies on ebitengine or the ECS, pure math only.
//
// World coordinates grow to the right on X and upward on Y.
package tilemath

import (
	"math"

	math2 "github.com/yohamta/donburi/features/math"
)

// Movement is the mover's directional commitment.
type Movement int

const (
	MoveNeutral Movement = iota
	MoveUp
	MoveDown
	MoveLeft
	MoveRight
)

func (m Movement) String() string {
	switch m {
	case MoveUp:
		return "up"
	case MoveDown:
		return "down"
	case MoveLeft:
		return "left"
	case MoveRight:
		return "right"
	}
	return "neutral"
}

// Facing reports the facing that matches a committed movement.
// Neutral has no facing.
func (m Movement) Facing() (Facing, bool) {
	switch m {
	case MoveUp:
		return FacingUp, true
	case MoveDown:
		return FacingDown, true
	case MoveLeft:
		return FacingLeft, true
	case MoveRight:
		return FacingRight, true
	}
	return FacingUp, false
}

// Facing is one of the four cardinal directions. The declaration order is
// also the priority order used when several direction keys are held.
type Facing int

const (
	FacingUp Facing = iota
	FacingDown
	FacingLeft
	FacingRight
)

// Facings lists all directions in priority order.
var Facings = [4]Facing{FacingUp, FacingDown, FacingLeft, FacingRight}

func (f Facing) String() string {
	switch f {
	case FacingDown:
		return "down"
	case FacingLeft:
		return "left"
	case FacingRight:
		return "right"
	}
	return "up"
}

// Movement returns the commitment that travels toward f.
func (f Facing) Movement() Movement {
	switch f {
	case FacingDown:
		return MoveDown
	case FacingLeft:
		return MoveLeft
	case FacingRight:
		return MoveRight
	}
	return MoveUp
}

// Unit is the unit vector pointing toward f.
func (f Facing) Unit() math2.Vec2 {
	switch f {
	case FacingDown:
		return math2.Vec2{X: 0, Y: -1}
	case FacingLeft:
		return math2.Vec2{X: -1, Y: 0}
	case FacingRight:
		return math2.Vec2{X: 1, Y: 0}
	}
	return math2.Vec2{X: 0, Y: 1}
}

// Vertical reports whether f lies on the Y axis.
func (f Facing) Vertical() bool {
	return f == FacingUp || f == FacingDown
}

// Ahead returns the point dist units from pos toward f.
func Ahead(pos math2.Vec2, f Facing, dist float64) math2.Vec2 {
	u := f.Unit()
	return math2.Vec2{X: pos.X + u.X*dist, Y: pos.Y + u.Y*dist}
}

// rotationTable holds the counter-clockwise turn, in radians, taken when the
// facing changes from the first direction to the second.
var rotationTable = map[[2]Facing]float64{
	{FacingUp, FacingUp}:       0,
	{FacingDown, FacingUp}:     math.Pi,
	{FacingLeft, FacingUp}:     3 * math.Pi / 2,
	{FacingRight, FacingUp}:    math.Pi / 2,
	{FacingUp, FacingDown}:     math.Pi,
	{FacingDown, FacingDown}:   0,
	{FacingLeft, FacingDown}:   math.Pi / 2,
	{FacingRight, FacingDown}:  3 * math.Pi / 2,
	{FacingUp, FacingLeft}:     math.Pi / 2,
	{FacingDown, FacingLeft}:   3 * math.Pi / 2,
	{FacingLeft, FacingLeft}:   0,
	{FacingRight, FacingLeft}:  math.Pi,
	{FacingUp, FacingRight}:    3 * math.Pi / 2,
	{FacingDown, FacingRight}:  math.Pi / 2,
	{FacingLeft, FacingRight}:  math.Pi,
	{FacingRight, FacingRight}: 0,
}

// RotationDelta returns the turn needed to face `to` when currently facing
// `from`.
func RotationDelta(from, to Facing) float64 {
	return rotationTable[[2]Facing{from, to}]
}

// NormalizeAngle wraps a into [0, 2π).
func NormalizeAngle(a float64) float64 {
	a = math.Mod(a, 2*math.Pi)
	if a < 0 {
		a += 2 * math.Pi
	}
	return a
}

// RotationLock records which direction last turned an idle indicator.
// At most one direction can be locked.
type RotationLock int

const (
	LockNone RotationLock = iota
	LockUp
	LockDown
	LockLeft
	LockRight
)

// LockFor returns the lock state that pins f.
func LockFor(f Facing) RotationLock {
	switch f {
	case FacingDown:
		return LockDown
	case FacingLeft:
		return LockLeft
	case FacingRight:
		return LockRight
	}
	return LockUp
}

// Locks reports whether f is the locked direction.
func (l RotationLock) Locks(f Facing) bool {
	return l == LockFor(f)
}

// Release drops the lock once its key is no longer held, so the next press
// of that key turns the indicator again.
func (l RotationLock) Release(h Held) RotationLock {
	for _, f := range Facings {
		if h[f] && l.Locks(f) {
			return l
		}
	}
	return LockNone
}

// Held is the pressed state of the four direction keys, indexed by Facing.
type Held [4]bool

// First returns the highest-priority held direction accepted by allow.
func (h Held) First(allow func(Facing) bool) (Facing, bool) {
	for _, f := range Facings {
		if h[f] && (allow == nil || allow(f)) {
			return f, true
		}
	}
	return FacingUp, false
}
