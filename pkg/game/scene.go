package game

import (
	"github.com/hajimehoshi/ebiten/v2"
)

// SceneID identifies one of the closed set of scenes the editor can show.
type SceneID string

const (
	// SceneMainView 主视图：展示可建造区域和当前花盆
	SceneMainView SceneID = "main_view"
	// ScenePotBuilder 花盆构建器：放置/移除墙体、缩放、平移
	ScenePotBuilder SceneID = "pot_builder"
)

// Transition is the value a scene returns from Update to request a scene change.
// The zero value means "stay on the current scene".
type Transition struct {
	Next SceneID
	Quit bool
}

// Stay 保持当前场景
var Stay = Transition{}

// QuitGame 请求结束游戏循环
var QuitGame = Transition{Quit: true}

// GoTo 返回切换到指定场景的转换
func GoTo(id SceneID) Transition {
	return Transition{Next: id}
}

// Scene represents a game scene (e.g., main view, pot builder).
// Each scene has its own update and rendering logic.
type Scene interface {
	// Update updates the scene logic based on the elapsed time
	// and returns the transition the scene requests.
	Update(deltaTime float64) Transition

	// Draw renders the scene to the provided screen.
	Draw(screen *ebiten.Image)
}
