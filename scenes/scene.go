package scenes

import "github.com/hajimehoshi/ebiten/v2"

// SceneChanger allows scenes to trigger transitions
type SceneChanger interface {
	ChangeScene(scene Scene)
}

type Scene interface {
	Update()
	Draw(screen *ebiten.Image)
}
