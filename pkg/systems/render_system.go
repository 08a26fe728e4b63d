package systems

import (
	"github.com/gonewx/gravity/pkg/components"
	"github.com/gonewx/gravity/pkg/ecs"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// RenderSystem 以纯色矩形绘制拥有 PositionComponent 和 BoxComponent 的实体
type RenderSystem struct {
	entityManager *ecs.EntityManager
}

// NewRenderSystem 创建一个新的渲染系统
func NewRenderSystem(em *ecs.EntityManager) *RenderSystem {
	return &RenderSystem{
		entityManager: em,
	}
}

// Draw 绘制所有方块实体，绘制顺序为实体ID升序
func (s *RenderSystem) Draw(screen *ebiten.Image) {
	entities := ecs.GetEntitiesWith2[*components.PositionComponent, *components.BoxComponent](s.entityManager)

	for _, id := range entities {
		pos, ok := ecs.GetComponent[*components.PositionComponent](s.entityManager, id)
		if !ok {
			continue
		}
		box, ok := ecs.GetComponent[*components.BoxComponent](s.entityManager, id)
		if !ok {
			continue
		}
		vector.DrawFilledRect(screen,
			float32(pos.X), float32(pos.Y),
			float32(box.Width), float32(box.Height),
			box.Color, true)
	}
}
