package config

import "image/color"

// Config holds general game configuration
type Config struct {
	// Logical screen size in world units. The camera shows exactly this much
	// of the world, and off-screen culling is measured against it.
	Width  int
	Height int

	WindowWidth  int
	WindowHeight int
	TPS          int
	Title        string
}

// GridConfig describes the tile lattice everything snaps to.
type GridConfig struct {
	TileSize float64

	// Distance from the player's centre to the facing indicator.
	IndicatorOffset float64

	// Broadphase cell size, in world units.
	CellSize int
}

// PlayerConfig contains the mover's tuning values
type PlayerConfig struct {
	Speed float64 // tiles per second

	// Camera follow
	CameraCatchup  float64 // multiplier on Speed while the camera trails behind
	CameraDeadZone float64 // tiles along the movement axis before the camera moves
}

// AttackConfig contains the tuning for a straight-flying ranged attack
type AttackConfig struct {
	Cooldown float64 // seconds
	Speed    float64 // tiles per second
	Length   float64 // world units along the facing axis
	Width    float64 // world units across the facing axis
}

// HookshotConfig contains hookshot tuning values
type HookshotConfig struct {
	Speed float64 // tiles per second
	Size  float64 // square footprint, world units
	Range float64 // tiles from the player on either axis before it retracts

	// Seconds a latched hookshot holds on before retracting.
	LatchHold float64
}

// CullingConfig controls when ranged attacks are considered off-screen.
type CullingConfig struct {
	// An attack is culled once its distance to the camera on either axis
	// exceeds screen size divided by Divisor.
	Divisor float64
}

// InteractionConfig contains interaction targeting values
type InteractionConfig struct {
	Reach            float64 // tiles the probe is pushed along the facing
	BoxSize          float64 // probe square, world units
	HighlightSeconds float64
}

// RenderConfig holds the palette used by the shape renderer
type RenderConfig struct {
	GroundTiles int // checkerboard extent in tiles on each axis
	GroundLight color.RGBA
	GroundDark  color.RGBA
	Obstacle    color.RGBA
	Breakable   color.RGBA
	Player      color.RGBA
	Indicator   color.RGBA
	Arrow       color.RGBA
	Projectile  color.RGBA
	Hookshot    color.RGBA
	Highlight   color.RGBA
	HUDText     color.RGBA
	HUDMuted    color.RGBA
}

// LevelConfig names the map the world scene loads.
type LevelConfig struct {
	Path string
}

// Global configuration instances
var C *Config
var Grid GridConfig
var Player PlayerConfig
var Arrow AttackConfig
var Projectile AttackConfig
var Hookshot HookshotConfig
var Culling CullingConfig
var Interaction InteractionConfig
var Render RenderConfig
var Level LevelConfig

// Shared RGBA color constants
var (
	White     = color.RGBA{R: 255, G: 255, B: 255, A: 255}
	Gray      = color.RGBA{R: 140, G: 140, B: 140, A: 255}
	Yellow    = color.RGBA{R: 255, G: 255, B: 0, A: 255}
	Orange    = color.RGBA{R: 255, G: 140, B: 0, A: 255}
	Red       = color.RGBA{R: 255, G: 0, B: 0, A: 255}
	LightBlue = color.RGBA{R: 100, G: 180, B: 255, A: 255}
	Purple    = color.RGBA{R: 128, G: 0, B: 255, A: 255}
	Brown     = color.RGBA{R: 120, G: 80, B: 40, A: 255}
)

func init() {
	C = &Config{
		Width:        1600,
		Height:       900,
		WindowWidth:  960,
		WindowHeight: 540,
		TPS:          60,
		Title:        "timetravel",
	}

	Grid = GridConfig{
		TileSize:        100,
		IndicatorOffset: 100.0 / 6.0,
		CellSize:        100,
	}

	Player = PlayerConfig{
		Speed:          3.0,
		CameraCatchup:  1.1,
		CameraDeadZone: 2.0,
	}

	Arrow = AttackConfig{
		Cooldown: 0.5,
		Speed:    7.5,
		Length:   Grid.TileSize / 2,
		Width:    Grid.TileSize / 10,
	}

	// Projectiles are the quicker, lighter sibling of the arrow.
	Projectile = AttackConfig{
		Cooldown: 0.25,
		Speed:    10.0,
		Length:   Grid.TileSize / 2,
		Width:    Grid.TileSize / 10,
	}

	Hookshot = HookshotConfig{
		Speed:     7.5,
		Size:      Grid.TileSize / 2,
		Range:     3.4,
		LatchHold: 0.4,
	}

	Culling = CullingConfig{
		Divisor: 1.9,
	}

	Interaction = InteractionConfig{
		Reach:            0.5,
		BoxSize:          Grid.TileSize / 2,
		HighlightSeconds: 0.6,
	}

	Render = RenderConfig{
		GroundTiles: 22,
		GroundLight: color.RGBA{R: 96, G: 128, B: 72, A: 255},
		GroundDark:  color.RGBA{R: 72, G: 104, B: 56, A: 255},
		Obstacle:    Gray,
		Breakable:   Brown,
		Player:      LightBlue,
		Indicator:   White,
		Arrow:       Yellow,
		Projectile:  Purple,
		Hookshot:    Orange,
		Highlight:   Red,
		HUDText:     White,
		HUDMuted:    Gray,
	}

	Level = LevelConfig{
		Path: "levels/overworld.tmx",
	}
}
