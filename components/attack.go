package components

import (
	"github.com/automoto/timetravel/shared/tilemath"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/features/math"
)

// AttackKind identifies a ranged attack type.
type AttackKind int

const (
	AttackArrow AttackKind = iota
	AttackProjectile
	AttackHookshot
)

func (k AttackKind) String() string {
	switch k {
	case AttackProjectile:
		return "projectile"
	case AttackHookshot:
		return "hookshot"
	}
	return "arrow"
}

// AttackData is a player-fired entity flying in a straight line.
// Facing is captured at spawn and never changes.
type AttackData struct {
	Kind   AttackKind
	Facing tilemath.Facing
	Speed  float64 // tiles per second
	Size   math.Vec2
}

var Attack = donburi.NewComponentType[AttackData]()

// ArsenalData holds the cooldown of each cooldown-gated attack.
type ArsenalData struct {
	Arrow      tilemath.Cooldown
	Projectile tilemath.Cooldown
}

var Arsenal = donburi.NewComponentType[ArsenalData]()

// LatchData marks a hookshot that has grabbed something. A latched hookshot
// stops moving and retracts once Held reaches the configured hold time.
type LatchData struct {
	Held float64 // seconds
}

var Latch = donburi.NewComponentType[LatchData]()
