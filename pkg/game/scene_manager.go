package game

import (
	"log"

	"github.com/hajimehoshi/ebiten/v2"
)

// SceneFactory 按重力预设名称创建场景
type SceneFactory func(presetName string) Scene

// SceneManager 控制当前活动场景，任意时刻只有一个场景被更新和绘制
type SceneManager struct {
	currentScene Scene
	currentName  string
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

// SwitchTo 切换到指定场景
func (sm *SceneManager) SwitchTo(scene Scene) {
	sm.currentScene = scene
}

// GetCurrentScene 返回当前活动的场景（没有时为 nil）
func (sm *SceneManager) GetCurrentScene() Scene {
	return sm.currentScene
}

// CurrentPreset 返回最近一次通过 LoadPreset 加载的预设名称
func (sm *SceneManager) CurrentPreset() string {
	return sm.currentName
}

// LoadPreset 使用场景工厂创建指定预设的场景并切换过去
//
// 返回:
//   - bool: 工厂未设置或创建失败时返回 false，当前场景保持不变
func (sm *SceneManager) LoadPreset(presetName string) bool {
	log.Printf("[SceneManager] 加载预设: %s", presetName)

	if sm.sceneFactory == nil {
		log.Printf("[SceneManager] 错误: SceneFactory 未设置")
		return false
	}

	newScene := sm.sceneFactory(presetName)
	if newScene == nil {
		log.Printf("[SceneManager] 错误: 无法创建预设场景: %s", presetName)
		return false
	}

	sm.SwitchTo(newScene)
	sm.currentName = presetName
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
