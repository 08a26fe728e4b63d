package game

import (
	"github.com/hajimehoshi/ebiten/v2"
)

// Scene 场景：每帧由 SceneManager 驱动更新与绘制
//
// Stage 实现了该接口；演示程序也可以包装 Stage 实现自己的场景。
type Scene interface {
	// Update 推进场景逻辑，deltaTime 为距上一帧的秒数
	Update(deltaTime float64)

	// Draw 把场景绘制到 screen
	Draw(screen *ebiten.Image)
}
