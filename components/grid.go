package components

import (
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/features/math"
)

// ObjectData links an entity to its broadphase object.
type ObjectData struct {
	*resolv.Object
}

var Object = donburi.NewComponentType[ObjectData]()

// GridData wraps the resolv space used to find collision candidates.
// Resolv cells start at zero, so world positions are shifted by Origin,
// the world position of the space's first cell corner.
type GridData struct {
	Space  *resolv.Space
	Origin math.Vec2
}

var Grid = donburi.NewComponentType[GridData]()

func (g *GridData) corner(center, size math.Vec2) (float64, float64) {
	return center.X - size.X/2 - g.Origin.X, center.Y - size.Y/2 - g.Origin.Y
}

// Place registers a box for entry and returns the new object.
func (g *GridData) Place(entry *donburi.Entry, center, size math.Vec2, tags ...string) *resolv.Object {
	x, y := g.corner(center, size)
	obj := resolv.NewObject(x, y, size.X, size.Y, tags...)
	obj.Data = entry
	g.Space.Add(obj)
	return obj
}

func (g *GridData) Remove(obj *resolv.Object) {
	g.Space.Remove(obj)
}

// Query returns the live entries carrying any of tags whose objects share a
// cell with the box. It is a superset of the entries that overlap the box;
// callers run the exact test themselves.
func (g *GridData) Query(center, size math.Vec2, tags ...string) []*donburi.Entry {
	// Pad by a unit on every side so boxes that overlap by a fraction of a
	// unit across a cell edge are still found.
	x, y := g.corner(center, size)
	probe := resolv.NewObject(x-1, y-1, size.X+2, size.Y+2)
	probe.Space = g.Space

	check := probe.Check(0, 0, tags...)
	if check == nil {
		return nil
	}

	seen := make(map[donburi.Entity]bool, len(check.Objects))
	entries := make([]*donburi.Entry, 0, len(check.Objects))
	for _, obj := range check.Objects {
		entry, ok := obj.Data.(*donburi.Entry)
		if !ok || entry == nil || !entry.Valid() || seen[entry.Entity()] {
			continue
		}
		seen[entry.Entity()] = true
		entries = append(entries, entry)
	}
	return entries
}
