package scenes

import (
	"github.com/decker502/flappycube/pkg/game"
)

// Scene is a type alias for game.Scene.
type Scene = game.Scene
