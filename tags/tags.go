package tags

import "github.com/yohamta/donburi"

var (
	Player             = donburi.NewTag().SetName("Player")
	DirectionIndicator = donburi.NewTag().SetName("DirectionIndicator")
	Obstacle           = donburi.NewTag().SetName("Obstacle")
	Arrow              = donburi.NewTag().SetName("Arrow")
	Projectile         = donburi.NewTag().SetName("Projectile")
	Hookshot           = donburi.NewTag().SetName("Hookshot")

	// Roles an obstacle can play, in any combination.
	Collidable   = donburi.NewTag().SetName("Collidable")
	Interactable = donburi.NewTag().SetName("Interactable")
	Hookshotable = donburi.NewTag().SetName("Hookshotable")
	Breakable    = donburi.NewTag().SetName("Breakable")

	// Markers added and removed at runtime.
	HookshotFired  = donburi.NewTag().SetName("HookshotFired")
	InteractedWith = donburi.NewTag().SetName("InteractedWith")
)

// Resolv tags for broadphase queries
const (
	ResolvCollidable   = "collidable"
	ResolvInteractable = "interactable"
	ResolvHookshotable = "hookshotable"
)
