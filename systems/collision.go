package systems

import (
	"github.com/automoto/timetravel/components"
	cfg "github.com/automoto/timetravel/config"
	"github.com/automoto/timetravel/shared/tilemath"
	"github.com/yohamta/donburi"
	math2 "github.com/yohamta/donburi/features/math"
)

// findHit returns the first entity carrying resolvTag whose tile box a box
// of size at pos would overlap. self is never returned.
func findHit(w donburi.World, pos, size math2.Vec2, self donburi.Entity, resolvTag string) (*donburi.Entry, bool) {
	grid := components.Grid.Get(components.Grid.MustFirst(w))

	nearby := grid.Query(pos, size, resolvTag)
	if len(nearby) == 0 {
		return nil, false
	}

	candidates := make([]tilemath.Candidate[donburi.Entity], 0, len(nearby))
	for _, e := range nearby {
		candidates = append(candidates, tilemath.Candidate[donburi.Entity]{
			ID:       e.Entity(),
			Position: components.Transform.Get(e).Position,
		})
	}

	hit, ok := tilemath.FirstHit(pos, self, candidates, size, cfg.Grid.TileSize)
	if !ok {
		return nil, false
	}
	return w.Entry(hit.ID), true
}

// destroy removes an entity and its broadphase object.
func destroy(w donburi.World, entry *donburi.Entry) {
	if !entry.Valid() {
		return
	}
	if entry.HasComponent(components.Object) {
		obj := components.Object.Get(entry)
		if obj != nil && obj.Object != nil {
			components.Grid.Get(components.Grid.MustFirst(w)).Remove(obj.Object)
		}
	}
	w.Remove(entry.Entity())
}
