package main

import (
	"github.com/automoto/timetravel/config"
	"github.com/automoto/timetravel/fonts"
	"github.com/automoto/timetravel/logger"
	"github.com/automoto/timetravel/scenes"
	"github.com/automoto/timetravel/systems"
	"github.com/hajimehoshi/ebiten/v2"
)

type Game struct {
	scene scenes.Scene
}

// ChangeScene switches to a new scene
func (g *Game) ChangeScene(scene scenes.Scene) {
	g.scene = scene
}

func NewGame() *Game {
	g := &Game{}
	g.scene = scenes.NewWorldScene(g)
	return g
}

func (g *Game) Update() error {
	g.scene.Update()
	return nil
}

func (g *Game) Draw(screen *ebiten.Image) {
	g.scene.Draw(screen)
}

func (g *Game) Layout(width, height int) (int, int) {
	return config.C.Width, config.C.Height
}

// loadBindings applies saved key bindings over the defaults, or saves the
// defaults on first run.
func loadBindings() {
	if err := systems.InitPersistence(); err != nil {
		logger.Log.WithError(err).Warn("settings store unavailable, using default bindings")
		return
	}

	saved, err := systems.LoadBindings()
	if err != nil {
		logger.Log.WithError(err).Warn("could not read saved bindings")
		return
	}
	if saved == nil {
		if err := systems.SaveBindings(config.Input.Bindings); err != nil {
			logger.Log.WithError(err).Warn("could not save default bindings")
		}
		return
	}
	config.Input.Bindings = systems.ApplyBindings(config.Input.Bindings, saved)
}

func main() {
	logger.Init()

	if err := fonts.LoadDefaults(); err != nil {
		logger.Log.WithError(err).Fatal("failed to load fonts")
	}
	loadBindings()

	ebiten.SetWindowSize(config.C.WindowWidth, config.C.WindowHeight)
	ebiten.SetWindowTitle(config.C.Title)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetTPS(config.C.TPS)

	if err := ebiten.RunGame(NewGame()); err != nil {
		logger.Log.WithError(err).Fatal("game exited")
	}
}
