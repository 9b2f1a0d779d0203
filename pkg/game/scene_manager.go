package game

import (
	"errors"
	"fmt"
	"log"

	"github.com/hajimehoshi/ebiten/v2"
)

// ErrQuit 表示当前场景请求结束游戏
var ErrQuit = errors.New("quit requested")

// SceneFactory 场景工厂函数类型
// 根据场景ID创建场景实例，编辑会话等共享状态由工厂闭包显式传入
type SceneFactory func(id SceneID) (Scene, error)

// SceneManager manages the game's high-level state by controlling which scene is active.
// It ensures only one scene's Update and Draw methods are called at any given time.
type SceneManager struct {
	currentScene Scene
	currentID    SceneID
	sceneFactory SceneFactory
}

// NewSceneManager creates and returns a new SceneManager instance.
// The manager starts with no active scene; use SwitchTo to set the initial scene.
func NewSceneManager(factory SceneFactory) *SceneManager {
	return &SceneManager{sceneFactory: factory}
}

// SwitchTo 创建并切换到指定场景
// 创建失败时保持当前场景不变
func (sm *SceneManager) SwitchTo(id SceneID) error {
	if sm.sceneFactory == nil {
		return fmt.Errorf("scene factory not set, cannot switch to %s", id)
	}

	scene, err := sm.sceneFactory(id)
	if err != nil {
		return fmt.Errorf("failed to create scene %s: %w", id, err)
	}
	if scene == nil {
		return fmt.Errorf("scene factory returned nil for %s", id)
	}

	log.Printf("[SceneManager] %s -> %s", sm.currentID, id)
	sm.currentScene = scene
	sm.currentID = id
	return nil
}

// CurrentID 返回当前场景ID，没有活动场景时返回空字符串
func (sm *SceneManager) CurrentID() SceneID {
	return sm.currentID
}

// Update updates the currently active scene and applies the transition it returns.
// Returns ErrQuit when the scene asks to end the game.
func (sm *SceneManager) Update(deltaTime float64) error {
	if sm.currentScene == nil {
		return nil
	}

	t := sm.currentScene.Update(deltaTime)
	if t.Quit {
		return ErrQuit
	}
	if t.Next != "" && t.Next != sm.currentID {
		if err := sm.SwitchTo(t.Next); err != nil {
			log.Printf("[SceneManager] 错误: %v", err)
		}
	}
	return nil
}

// Draw renders the currently active scene to the provided screen.
// If no scene is active, this method does nothing.
func (sm *SceneManager) Draw(screen *ebiten.Image) {
	if sm.currentScene != nil {
		sm.currentScene.Draw(screen)
	}
}
