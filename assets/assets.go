package assets

import (
	"embed"
	"fmt"

	"github.com/automoto/timetravel/config"
	"github.com/automoto/timetravel/logger"
	"github.com/automoto/timetravel/shared/leveldata"
	"github.com/sirupsen/logrus"
)

var (
	//go:embed all:levels
	assetFS embed.FS
)

// LoadLevel parses an embedded map.
func LoadLevel(path string) (*leveldata.Level, error) {
	level, err := leveldata.Load(assetFS, path)
	if err != nil {
		return nil, err
	}
	if level.TileSize != config.Grid.TileSize {
		return nil, fmt.Errorf("level %s: tile size %.0f does not match grid tile size %.0f",
			path, level.TileSize, config.Grid.TileSize)
	}

	logger.Log.WithFields(logrus.Fields{
		"level":     level.Name,
		"obstacles": len(level.Obstacles),
	}).Info("level loaded")
	return level, nil
}

// MustLoadLevel is LoadLevel for startup paths where a broken map is fatal.
func MustLoadLevel(path string) *leveldata.Level {
	level, err := LoadLevel(path)
	if err != nil {
		panic(err)
	}
	return level
}
