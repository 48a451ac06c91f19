package systems

import (
	"testing"

	"github.com/automoto/timetravel/components"
	cfg "github.com/automoto/timetravel/config"
	"github.com/automoto/timetravel/shared/leveldata"
	"github.com/automoto/timetravel/tags"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/yohamta/donburi"
	math2 "github.com/yohamta/donburi/features/math"
)

func obstacleAt(t *testing.T, tw *testWorld, x, y float64) *donburi.Entry {
	t.Helper()
	var found *donburi.Entry
	tags.Obstacle.Each(tw.ecs.World, func(e *donburi.Entry) {
		if components.Transform.Get(e).Position == (math2.Vec2{X: x, Y: y}) {
			found = e
		}
	})
	require.NotNil(t, found)
	return found
}

func TestInteractMarksObstacleInFront(t *testing.T) {
	tw := newTestWorld(t, rock(0, 100), rock(0, 200), rock(100, 0))

	tw.tick(cfg.ActionInteract)

	front := obstacleAt(t, tw, 0, 100)
	assert.True(t, front.HasComponent(tags.InteractedWith))
	assert.True(t, front.HasComponent(components.Highlight))

	assert.False(t, obstacleAt(t, tw, 0, 200).HasComponent(tags.InteractedWith))
	assert.False(t, obstacleAt(t, tw, 100, 0).HasComponent(tags.InteractedWith))
}

func TestInteractSkipsNonInteractable(t *testing.T) {
	tw := newTestWorld(t, leveldata.Obstacle{X: 0, Y: 100, Collidable: true})

	tw.tick(cfg.ActionInteract)
	assert.False(t, obstacleAt(t, tw, 0, 100).HasComponent(tags.InteractedWith))
}

func TestInteractOnlyOnPress(t *testing.T) {
	tw := newTestWorld(t, rock(0, 100))

	tw.ticks(2, cfg.ActionInteract)
	events := 0
	InteractionEvents.Subscribe(tw.ecs.World, func(donburi.World, InteractionEvent) { events++ })

	tw.ticks(3, cfg.ActionInteract)
	assert.Equal(t, 0, events)

	tw.tick()
	tw.tick(cfg.ActionInteract)
	assert.Equal(t, 1, events)
}

func TestHighlightFades(t *testing.T) {
	tw := newTestWorld(t, rock(0, 100))

	tw.tick(cfg.ActionInteract)
	front := obstacleAt(t, tw, 0, 100)
	require.True(t, front.HasComponent(components.Highlight))
	first := components.Highlight.Get(front).Alpha

	tw.tick()
	assert.Less(t, components.Highlight.Get(front).Alpha, first)

	tw.ticks(6)
	assert.False(t, front.HasComponent(components.Highlight))
	assert.True(t, front.HasComponent(tags.InteractedWith))
}
