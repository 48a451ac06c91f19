package systems

import (
	"fmt"
	"image/color"

	"github.com/automoto/timetravel/components"
	cfg "github.com/automoto/timetravel/config"
	"github.com/automoto/timetravel/fonts"
	"github.com/automoto/timetravel/shared/tilemath"
	"github.com/automoto/timetravel/tags"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text" //nolint:staticcheck // TODO: migrate to text/v2
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/yohamta/donburi/ecs"
)

const (
	hudMargin     = 16
	hudLineHeight = 26
	hudPanelWidth = 300
)

// DrawHUD renders cooldowns, hookshot state and the player's tile position
// in the top-left corner.
func DrawHUD(ecs *ecs.ECS, screen *ebiten.Image) {
	player, ok := tags.Player.First(ecs.World)
	if !ok {
		return
	}
	arsenal := components.Arsenal.Get(components.Arsenal.MustFirst(ecs.World))

	vector.DrawFilledRect(screen,
		hudMargin/2, hudMargin/2,
		hudPanelWidth, hudLineHeight*4+hudMargin,
		color.RGBA{0, 0, 0, 140}, false)

	face := fonts.Small.Get()
	y := hudMargin + hudLineHeight/2

	label, clr := cooldownLabel("Arrow", arsenal.Arrow)
	text.Draw(screen, label, face, hudMargin, y, clr)
	y += hudLineHeight

	label, clr = cooldownLabel("Projectile", arsenal.Projectile)
	text.Draw(screen, label, face, hudMargin, y, clr)
	y += hudLineHeight

	hook, hookClr := "Hookshot  ready", color.Color(cfg.Render.HUDText)
	if player.HasComponent(tags.HookshotFired) {
		hook, hookClr = "Hookshot  out", cfg.Render.HUDMuted
	}
	text.Draw(screen, hook, face, hudMargin, y, hookClr)
	y += hudLineHeight

	pos := components.Transform.Get(player).Position
	mover := components.Mover.Get(player)
	tile := cfg.Grid.TileSize
	elapsed := components.Clock.Get(components.Clock.MustFirst(ecs.World)).Elapsed
	status := fmt.Sprintf("%+.2f,%+.2f %s %.0fs", pos.X/tile, pos.Y/tile, mover.Movement, elapsed)
	text.Draw(screen, status, fonts.Mono.Get(), hudMargin, y, cfg.Render.HUDMuted)
}

func cooldownLabel(name string, cd tilemath.Cooldown) (string, color.Color) {
	if cd.Ready() {
		return fmt.Sprintf("%-10s ready", name), cfg.Render.HUDText
	}
	return fmt.Sprintf("%-10s %.1fs", name, cd.Remaining()), cfg.Render.HUDMuted
}
