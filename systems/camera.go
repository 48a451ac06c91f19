package systems

import (
	"github.com/automoto/timetravel/components"
	cfg "github.com/automoto/timetravel/config"
	"github.com/automoto/timetravel/shared/tilemath"
	"github.com/automoto/timetravel/tags"
	"github.com/yohamta/donburi/ecs"
)

// UpdateCameraFollow drags the camera after a moving player once the player
// is more than the dead zone ahead of it along the movement axis.
func UpdateCameraFollow(e *ecs.ECS) {
	camera := components.Camera.Get(components.Camera.MustFirst(e.World))
	player := tags.Player.MustFirst(e.World)
	mover := components.Mover.Get(player)

	f, moving := mover.Movement.Facing()
	if !moving {
		return
	}

	pos := components.Transform.Get(player).Position
	u := f.Unit()
	ahead := (pos.X-camera.Position.X)*u.X + (pos.Y-camera.Position.Y)*u.Y

	tile := cfg.Grid.TileSize
	if ahead <= cfg.Player.CameraDeadZone*tile {
		return
	}
	step := tilemath.ManualDisplacement(mover.Speed*cfg.Player.CameraCatchup, tile, frameDelta(e.World))
	camera.Position = tilemath.Ahead(camera.Position, f, step)
}
