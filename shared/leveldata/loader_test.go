package leveldata

import (
	"os"
	"testing"
	"testing/fstest"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadOverworld(t *testing.T) {
	level, err := Load(os.DirFS("../../assets"), "levels/overworld.tmx")
	require.NoError(t, err)

	assert.Equal(t, "overworld", level.Name)
	assert.Equal(t, 100.0, level.TileSize)
	assert.Equal(t, Point{X: 0, Y: 0}, level.Spawn)
	assert.Equal(t, Bounds{MinX: -1050, MinY: -1050, MaxX: 1050, MaxY: 1050}, level.Bounds)

	require.Len(t, level.Obstacles, 4)
	rock := Obstacle{Collidable: true, Interactable: true, Hookshotable: true}

	want := []Obstacle{rock, rock, rock}
	want[0].X, want[0].Y = 0, 400
	want[1].X, want[1].Y = 500, 0
	want[2].X, want[2].Y = 600, 0
	assert.Equal(t, want, level.Obstacles[:3])

	crate := level.Obstacles[3]
	assert.Equal(t, -300.0, crate.X)
	assert.Equal(t, -200.0, crate.Y)
	assert.True(t, crate.Breakable)
	assert.False(t, crate.Hookshotable)
}

func TestLoadWithoutSpawn(t *testing.T) {
	fsys := fstest.MapFS{
		"empty.tmx": &fstest.MapFile{Data: []byte(`<?xml version="1.0" encoding="UTF-8"?>
<map version="1.10" orientation="orthogonal" renderorder="right-down" width="3" height="3" tilewidth="100" tileheight="100" infinite="0">
 <objectgroup id="1" name="Obstacles"/>
</map>
`)},
	}

	_, err := Load(fsys, "empty.tmx")
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrNoSpawn)
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(fstest.MapFS{}, "missing.tmx")
	assert.Error(t, err)
}
