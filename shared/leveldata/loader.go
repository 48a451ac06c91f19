package leveldata

import (
	"errors"
	"fmt"
	"io/fs"
	"path/filepath"
	"sort"
	"strings"

	"github.com/lafriks/go-tiled"
)

// Object group names read from the map.
const (
	groupObstacles = "Obstacles"
	groupSpawn     = "PlayerSpawn"
)

var (
	ErrNoSpawn        = errors.New("no player spawn defined in map")
	ErrNonSquareTiles = errors.New("map tiles must be square")
)

// Load parses a TMX file. It takes an fs.FS so callers can pass embed.FS
// (game) or os.DirFS (tests).
//
// Tiled measures from the top-left corner with Y growing down. The loader
// re-centres the map on the world origin and flips Y.
func Load(fsys fs.FS, tmxPath string) (*Level, error) {
	levelMap, err := tiled.LoadFile(tmxPath, tiled.WithFileSystem(fsys))
	if err != nil {
		return nil, fmt.Errorf("load TMX %s: %w", tmxPath, err)
	}
	if levelMap.TileWidth != levelMap.TileHeight {
		return nil, fmt.Errorf("load TMX %s: %w", tmxPath, ErrNonSquareTiles)
	}

	width := float64(levelMap.Width * levelMap.TileWidth)
	height := float64(levelMap.Height * levelMap.TileHeight)
	originX, originY := -width/2, height/2

	toWorld := func(o *tiled.Object) Point {
		return Point{
			X: originX + o.X + o.Width/2,
			Y: originY - (o.Y + o.Height/2),
		}
	}

	level := &Level{
		Name:     strings.TrimSuffix(filepath.Base(tmxPath), filepath.Ext(tmxPath)),
		TileSize: float64(levelMap.TileWidth),
		Bounds: Bounds{
			MinX: originX,
			MinY: originY - height,
			MaxX: originX + width,
			MaxY: originY,
		},
	}

	spawnFound := false
	for _, og := range levelMap.ObjectGroups {
		switch og.Name {
		case groupObstacles:
			for _, o := range og.Objects {
				p := toWorld(o)
				level.Obstacles = append(level.Obstacles, Obstacle{
					X:            p.X,
					Y:            p.Y,
					Collidable:   o.Properties.GetBool("collidable"),
					Interactable: o.Properties.GetBool("interactable"),
					Hookshotable: o.Properties.GetBool("hookshotable"),
					Breakable:    o.Properties.GetBool("breakable"),
				})
			}
		case groupSpawn:
			if len(og.Objects) > 0 {
				level.Spawn = toWorld(og.Objects[0])
				spawnFound = true
			}
		}
	}
	if !spawnFound {
		return nil, fmt.Errorf("load TMX %s: %w", tmxPath, ErrNoSpawn)
	}

	// Keep a stable order independent of object ids.
	sort.Slice(level.Obstacles, func(i, j int) bool {
		a, b := level.Obstacles[i], level.Obstacles[j]
		if a.Y != b.Y {
			return a.Y > b.Y
		}
		return a.X < b.X
	})

	return level, nil
}
