package systems

import (
	"image/color"

	"github.com/automoto/timetravel/components"
	cfg "github.com/automoto/timetravel/config"
	"github.com/automoto/timetravel/shared/tilemath"
	"github.com/automoto/timetravel/tags"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
	math2 "github.com/yohamta/donburi/features/math"
)

// toScreen converts a world position to screen pixels. World Y grows up,
// screen Y grows down.
func toScreen(camera math2.Vec2, pos math2.Vec2) (float32, float32) {
	return float32(pos.X - camera.X + float64(cfg.C.Width)/2),
		float32(camera.Y - pos.Y + float64(cfg.C.Height)/2)
}

func fillBox(screen *ebiten.Image, camera, center, size math2.Vec2, clr color.Color) {
	x, y := toScreen(camera, center)
	vector.DrawFilledRect(screen,
		x-float32(size.X)/2, y-float32(size.Y)/2,
		float32(size.X), float32(size.Y),
		clr, false)
}

// fade scales a premultiplied colour by alpha.
func fade(c color.RGBA, alpha float32) color.RGBA {
	return color.RGBA{
		R: uint8(float32(c.R) * alpha),
		G: uint8(float32(c.G) * alpha),
		B: uint8(float32(c.B) * alpha),
		A: uint8(float32(c.A) * alpha),
	}
}

// DrawGround renders the checkerboard floor around the origin.
func DrawGround(ecs *ecs.ECS, screen *ebiten.Image) {
	camera := components.Camera.Get(components.Camera.MustFirst(ecs.World)).Position
	tile := cfg.Grid.TileSize
	size := math2.Vec2{X: tile, Y: tile}

	half := cfg.Render.GroundTiles / 2
	for ty := -half; ty < half; ty++ {
		for tx := -half; tx < half; tx++ {
			clr := cfg.Render.GroundLight
			if (tx+ty)%2 != 0 {
				clr = cfg.Render.GroundDark
			}
			center := math2.Vec2{X: float64(tx) * tile, Y: float64(ty) * tile}
			fillBox(screen, camera, center, size, clr)
		}
	}
}

// DrawObstacles renders obstacles and the highlight of recently interacted ones.
func DrawObstacles(ecs *ecs.ECS, screen *ebiten.Image) {
	camera := components.Camera.Get(components.Camera.MustFirst(ecs.World)).Position
	tile := cfg.Grid.TileSize
	size := math2.Vec2{X: tile, Y: tile}

	tags.Obstacle.Each(ecs.World, func(e *donburi.Entry) {
		pos := components.Transform.Get(e).Position
		clr := cfg.Render.Obstacle
		if e.HasComponent(tags.Breakable) {
			clr = cfg.Render.Breakable
		}
		fillBox(screen, camera, pos, size, clr)

		if e.HasComponent(components.Highlight) {
			h := components.Highlight.Get(e)
			x, y := toScreen(camera, pos)
			vector.StrokeRect(screen,
				x-float32(tile)/2, y-float32(tile)/2, float32(tile), float32(tile),
				4, fade(cfg.Render.Highlight, h.Alpha), false)
		}
	})
}

// DrawAttacks renders arrows, projectiles and the hookshot with its chain.
func DrawAttacks(ecs *ecs.ECS, screen *ebiten.Image) {
	camera := components.Camera.Get(components.Camera.MustFirst(ecs.World)).Position

	components.Attack.Each(ecs.World, func(e *donburi.Entry) {
		attack := components.Attack.Get(e)
		pos := components.Transform.Get(e).Position

		switch attack.Kind {
		case components.AttackProjectile:
			fillBox(screen, camera, pos, attack.Size, cfg.Render.Projectile)
		case components.AttackHookshot:
			if player, ok := tags.Player.First(ecs.World); ok {
				px, py := toScreen(camera, components.Transform.Get(player).Position)
				hx, hy := toScreen(camera, pos)
				vector.StrokeLine(screen, px, py, hx, hy, 2, cfg.Render.Hookshot, false)
			}
			fillBox(screen, camera, pos, attack.Size, cfg.Render.Hookshot)
		default:
			fillBox(screen, camera, pos, attack.Size, cfg.Render.Arrow)
		}
	})
}

// DrawPlayer renders the player and its facing indicator.
func DrawPlayer(ecs *ecs.ECS, screen *ebiten.Image) {
	camera := components.Camera.Get(components.Camera.MustFirst(ecs.World)).Position
	tile := cfg.Grid.TileSize

	tags.Player.Each(ecs.World, func(e *donburi.Entry) {
		pos := components.Transform.Get(e).Position
		fillBox(screen, camera, pos, math2.Vec2{X: tile * 0.8, Y: tile * 0.8}, cfg.Render.Player)
	})

	tags.DirectionIndicator.Each(ecs.World, func(e *donburi.Entry) {
		ind := components.Indicator.Get(e)
		pos := components.Transform.Get(e).Position
		tip := tilemath.Ahead(pos, ind.Facing, tile/4)

		x0, y0 := toScreen(camera, pos)
		x1, y1 := toScreen(camera, tip)
		vector.StrokeLine(screen, x0, y0, x1, y1, 4, cfg.Render.Indicator, false)
		vector.DrawFilledCircle(screen, x1, y1, 6, cfg.Render.Indicator, false)
	})
}
