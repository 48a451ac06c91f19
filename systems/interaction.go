package systems

import (
	"github.com/automoto/timetravel/components"
	cfg "github.com/automoto/timetravel/config"
	"github.com/automoto/timetravel/logger"
	"github.com/automoto/timetravel/shared/tilemath"
	"github.com/automoto/timetravel/tags"
	"github.com/sirupsen/logrus"
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
	"github.com/yohamta/donburi/features/events"
	math2 "github.com/yohamta/donburi/features/math"
)

// InteractionEvent is published when the player presses interact.
type InteractionEvent struct {
	Position math2.Vec2 // indicator position
	Facing   tilemath.Facing
}

var InteractionEvents = events.NewEventType[InteractionEvent]()

// UpdateInteract publishes an InteractionEvent on the frame interact is
// pressed.
func UpdateInteract(ecs *ecs.ECS) {
	input := components.Input.Get(components.Input.MustFirst(ecs.World))
	if !GetAction(input, cfg.ActionInteract).JustPressed {
		return
	}

	indicator := tags.DirectionIndicator.MustFirst(ecs.World)
	InteractionEvents.Publish(ecs.World, InteractionEvent{
		Position: components.Transform.Get(indicator).Position,
		Facing:   components.Indicator.Get(indicator).Facing,
	})
}

// ProcessInteractions delivers this frame's interaction events.
func ProcessInteractions(ecs *ecs.ECS) {
	InteractionEvents.ProcessEvents(ecs.World)
}

// HandleInteraction marks every interactable in front of the event.
func HandleInteraction(w donburi.World, ev InteractionEvent) {
	tile := cfg.Grid.TileSize
	probe := tilemath.InteractionProbe(ev.Position, ev.Facing, cfg.Interaction.Reach, tile)

	grid := components.Grid.Get(components.Grid.MustFirst(w))
	box := math2.Vec2{X: cfg.Interaction.BoxSize, Y: cfg.Interaction.BoxSize}

	var hits []*donburi.Entry
	for _, e := range grid.Query(probe, box, tags.ResolvInteractable) {
		if tilemath.InteractionHit(probe, cfg.Interaction.BoxSize, components.Transform.Get(e).Position, tile) {
			hits = append(hits, e)
		}
	}

	for _, e := range hits {
		if !e.HasComponent(tags.InteractedWith) {
			e.AddComponent(tags.InteractedWith)
		}
		startHighlight(e)

		pos := components.Transform.Get(e).Position
		logger.Log.WithFields(logrus.Fields{
			"x":      pos.X,
			"y":      pos.Y,
			"facing": ev.Facing,
		}).Debug("interacted")
	}
}

func startHighlight(e *donburi.Entry) {
	if !e.HasComponent(components.Highlight) {
		e.AddComponent(components.Highlight)
	}
	components.Highlight.SetValue(e, components.HighlightData{
		Tween: gween.New(1, 0, float32(cfg.Interaction.HighlightSeconds), ease.OutQuad),
		Alpha: 1,
	})
}

// UpdateHighlights fades interaction highlights and drops finished ones.
func UpdateHighlights(ecs *ecs.ECS) {
	dt := float32(frameDelta(ecs.World))

	var finished []*donburi.Entry
	components.Highlight.Each(ecs.World, func(e *donburi.Entry) {
		h := components.Highlight.Get(e)
		if h.Tween == nil {
			finished = append(finished, e)
			return
		}
		var done bool
		h.Alpha, done = h.Tween.Update(dt)
		if done {
			finished = append(finished, e)
		}
	})

	for _, e := range finished {
		e.RemoveComponent(components.Highlight)
	}
}
