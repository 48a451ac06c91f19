package scenes

import (
	"image/color"
	"sync"

	"github.com/automoto/timetravel/assets"
	cfg "github.com/automoto/timetravel/config"
	"github.com/automoto/timetravel/logger"
	"github.com/automoto/timetravel/systems"
	"github.com/automoto/timetravel/systems/factory"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/sirupsen/logrus"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

type WorldScene struct {
	ecs          *ecs.ECS
	sceneChanger SceneChanger
	levelPath    string
	once         sync.Once
}

// NewWorldScene creates the overworld scene for the configured level.
func NewWorldScene(sc SceneChanger) *WorldScene {
	return &WorldScene{sceneChanger: sc, levelPath: cfg.Level.Path}
}

func (ws *WorldScene) Update() {
	ws.once.Do(ws.configure)
	ws.ecs.Update()

	if systems.RestartRequested(ws.ecs) {
		logger.Log.WithField("level", ws.levelPath).Info("restarting level")
		ws.sceneChanger.ChangeScene(NewWorldScene(ws.sceneChanger))
	}
}

func (ws *WorldScene) Draw(screen *ebiten.Image) {
	screen.Fill(color.Black)

	if ws.ecs == nil {
		return
	}
	ws.ecs.Draw(screen)
}

func (ws *WorldScene) configure() {
	level := assets.MustLoadLevel(ws.levelPath)

	world := donburi.NewWorld()
	systems.Subscribe(world)
	ecs := ecs.NewECS(world)

	// Device polling runs before the simulation
	ecs.AddSystem(systems.UpdateClock)
	ecs.AddSystem(systems.UpdateInput)
	for _, system := range systems.Gameplay {
		ecs.AddSystem(system)
	}

	ecs.AddRenderer(cfg.Default, systems.DrawGround)
	ecs.AddRenderer(cfg.Default, systems.DrawObstacles)
	ecs.AddRenderer(cfg.Default, systems.DrawAttacks)
	ecs.AddRenderer(cfg.Default, systems.DrawPlayer)
	ecs.AddRenderer(cfg.Default, systems.DrawHUD)

	ws.ecs = ecs

	player := factory.CreateWorld(ws.ecs, level)
	logger.Log.WithFields(logrus.Fields{
		"level":     level.Name,
		"obstacles": len(level.Obstacles),
		"player":    player.Entity(),
	}).Info("world ready")
}
