package game

import (
	"log"

	"github.com/hajimehoshi/ebiten/v2"
)

// SceneFactory 场景工厂函数类型
// 用随机种子创建一局新游戏，避免 game 包依赖 scenes 包
type SceneFactory func(seed int64) Scene

// SceneManager 管理当前活动的场景
// 同一时间只有一个场景的 Update 和 Draw 被调用
type SceneManager struct {
	currentScene Scene
	sceneFactory SceneFactory
}

// NewSceneManager 创建场景管理器，初始没有活动场景
func NewSceneManager() *SceneManager {
	return &SceneManager{}
}

// SetSceneFactory 设置场景工厂函数
func (sm *SceneManager) SetSceneFactory(factory SceneFactory) {
	sm.sceneFactory = factory
}

// SwitchTo 切换活动场景
func (sm *SceneManager) SwitchTo(scene Scene) {
	sm.currentScene = scene
}

// GetCurrentScene 返回当前活动的场景，没有时返回 nil
func (sm *SceneManager) GetCurrentScene() Scene {
	return sm.currentScene
}

// StartRun 用指定种子开始新的一局
// 返回 false 表示工厂未设置或创建失败，当前场景保持不变
func (sm *SceneManager) StartRun(seed int64) bool {
	log.Printf("[SceneManager] Starting run with seed %d", seed)

	if sm.sceneFactory == nil {
		log.Printf("[SceneManager] Error: scene factory not set")
		return false
	}

	newScene := sm.sceneFactory(seed)
	if newScene == nil {
		log.Printf("[SceneManager] Error: failed to create run scene (seed %d)", seed)
		return false
	}

	sm.SwitchTo(newScene)
	return true
}

// Update 更新当前场景
func (sm *SceneManager) Update(deltaTime float64) {
	if sm.currentScene != nil {
		sm.currentScene.Update(deltaTime)
	}
}

// Draw 绘制当前场景
func (sm *SceneManager) Draw(screen *ebiten.Image) {
	if sm.currentScene != nil {
		sm.currentScene.Draw(screen)
	}
}
