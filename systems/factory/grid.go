package factory

import (
	"math"

	"github.com/automoto/timetravel/archetypes"
	"github.com/automoto/timetravel/components"
	cfg "github.com/automoto/timetravel/config"
	"github.com/automoto/timetravel/shared/leveldata"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
	math2 "github.com/yohamta/donburi/features/math"
)

// gridMarginCells is the empty border kept around the level so attacks
// leaving the map still land in valid cells for a while.
const gridMarginCells = 4

// CreateGrid creates the broadphase space covering bounds.
func CreateGrid(ecs *ecs.ECS, bounds leveldata.Bounds) *donburi.Entry {
	cell := cfg.Grid.CellSize
	margin := float64(gridMarginCells * cell)

	width := int(math.Ceil(bounds.MaxX-bounds.MinX+2*margin)) + 1
	height := int(math.Ceil(bounds.MaxY-bounds.MinY+2*margin)) + 1

	grid := archetypes.Grid.Spawn(ecs)
	components.Grid.SetValue(grid, components.GridData{
		Space:  resolv.NewSpace(width, height, cell, cell),
		Origin: math2.Vec2{X: bounds.MinX - margin, Y: bounds.MinY - margin},
	})
	return grid
}
