package systems

import (
	"testing"

	"github.com/automoto/timetravel/components"
	cfg "github.com/automoto/timetravel/config"
	"github.com/automoto/timetravel/shared/leveldata"
	"github.com/automoto/timetravel/shared/tilemath"
	"github.com/automoto/timetravel/systems/factory"
	"github.com/automoto/timetravel/tags"
	"github.com/stretchr/testify/require"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
	"github.com/yohamta/donburi/filter"
	math2 "github.com/yohamta/donburi/features/math"
)

// At speed 3 a player covers 30 units per 0.1s frame.
const testDt = 0.1

type testWorld struct {
	t      *testing.T
	ecs    *ecs.ECS
	player *donburi.Entry
}

func newTestWorld(t *testing.T, obstacles ...leveldata.Obstacle) *testWorld {
	t.Helper()

	w := donburi.NewWorld()
	Subscribe(w)
	e := ecs.NewECS(w)

	level := &leveldata.Level{
		Name:      "test",
		TileSize:  cfg.Grid.TileSize,
		Bounds:    leveldata.Bounds{MinX: -1050, MinY: -1050, MaxX: 1050, MaxY: 1050},
		Obstacles: obstacles,
	}
	player := factory.CreateWorld(e, level)
	require.True(t, player.Valid())

	return &testWorld{t: t, ecs: e, player: player}
}

// tick runs one frame with exactly the given actions held.
func (tw *testWorld) tick(actions ...cfg.ActionID) {
	input := components.Input.Get(components.Input.MustFirst(tw.ecs.World))
	input.Previous = input.Current
	input.Current = [cfg.ActionCount]bool{}
	for _, a := range actions {
		input.Current[a] = true
	}

	AdvanceClock(tw.ecs.World, testDt)
	Step(tw.ecs)
}

func (tw *testWorld) ticks(n int, actions ...cfg.ActionID) {
	for i := 0; i < n; i++ {
		tw.tick(actions...)
	}
}

func (tw *testWorld) playerPos() math2.Vec2 {
	return components.Transform.Get(tw.player).Position
}

func (tw *testWorld) movement() tilemath.Movement {
	return components.Mover.Get(tw.player).Movement
}

func (tw *testWorld) indicator() *components.IndicatorData {
	return components.Indicator.Get(tags.DirectionIndicator.MustFirst(tw.ecs.World))
}

// face turns the idle indicator without moving the player.
func (tw *testWorld) face(f tilemath.Facing) {
	tw.indicator().Facing = f
	entry := tags.DirectionIndicator.MustFirst(tw.ecs.World)
	components.Transform.Get(entry).Position = tilemath.Ahead(tw.playerPos(), f, cfg.Grid.IndicatorOffset)
}

func (tw *testWorld) camera() math2.Vec2 {
	return components.Camera.Get(components.Camera.MustFirst(tw.ecs.World)).Position
}

func (tw *testWorld) count(tag donburi.IComponentType) int {
	return donburi.NewQuery(filter.Contains(tag)).Count(tw.ecs.World)
}

func rock(x, y float64) leveldata.Obstacle {
	return leveldata.Obstacle{X: x, Y: y, Collidable: true, Interactable: true, Hookshotable: true}
}

func crate(x, y float64) leveldata.Obstacle {
	return leveldata.Obstacle{X: x, Y: y, Collidable: true, Interactable: true, Breakable: true}
}

func (tw *testWorld) indicatorPos() math2.Vec2 {
	return components.Transform.Get(tags.DirectionIndicator.MustFirst(tw.ecs.World)).Position
}
