package systems

import (
	"testing"

	"github.com/automoto/timetravel/components"
	cfg "github.com/automoto/timetravel/config"
	"github.com/stretchr/testify/assert"
)

func TestGetAction(t *testing.T) {
	input := &components.InputData{}
	input.Current[cfg.ActionFire] = true

	assert.Equal(t, components.ActionState{Pressed: true, JustPressed: true}, GetAction(input, cfg.ActionFire))

	input.Previous = input.Current
	assert.Equal(t, components.ActionState{Pressed: true}, GetAction(input, cfg.ActionFire))

	input.Current[cfg.ActionFire] = false
	assert.Equal(t, components.ActionState{JustReleased: true}, GetAction(input, cfg.ActionFire))
}

func TestRestartRequested(t *testing.T) {
	tw := newTestWorld(t)

	tw.tick(cfg.ActionRestart)
	assert.True(t, RestartRequested(tw.ecs))

	tw.tick(cfg.ActionRestart)
	assert.False(t, RestartRequested(tw.ecs), "held restart fires once")

	tw.tick()
	assert.False(t, RestartRequested(tw.ecs))
}

func TestAdvanceClock(t *testing.T) {
	tw := newTestWorld(t)

	tw.ticks(3)
	clock := components.Clock.Get(components.Clock.MustFirst(tw.ecs.World))
	assert.Equal(t, testDt, clock.Delta)
	assert.InDelta(t, 3*testDt, clock.Elapsed, 1e-9)

	AdvanceClock(tw.ecs.World, 0)
	assert.Equal(t, 0.0, clock.Delta)
	assert.InDelta(t, 3*testDt, clock.Elapsed, 1e-9)
}
