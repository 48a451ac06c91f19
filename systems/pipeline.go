package systems

import (
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// Gameplay lists the simulation systems in the order they run each tick.
// Device polling (UpdateClock, UpdateInput) runs before these.
var Gameplay = []func(*ecs.ECS){
	UpdateMovement,
	UpdateFacing,
	UpdateCameraFollow,
	UpdateInteract,
	ProcessInteractions,
	UpdateArsenal,
	UpdateAttacks,
	UpdateHookshotFire,
	UpdateHookshot,
	UpdateHighlights,
}

// Subscribe wires the event handlers for w.
func Subscribe(w donburi.World) {
	InteractionEvents.Subscribe(w, HandleInteraction)
}

// Step runs every gameplay system once.
func Step(e *ecs.ECS) {
	for _, system := range Gameplay {
		system(e)
	}
}
