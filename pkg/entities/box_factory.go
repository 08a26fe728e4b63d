package entities

import (
	"image/color"

	"github.com/gonewx/gravity/pkg/components"
	"github.com/gonewx/gravity/pkg/ecs"
)

// NewDropBoxEntity 创建一个下落方块实体
// 参数:
//   - manager: EntityManager 实例
//   - x, y: 左上角坐标
//   - size: 边长(像素)
//   - clr: 填充颜色
//
// 返回: 创建的实体ID
//
// 方块不带动作组件，第一次挂载动作时由演员自动添加。
func NewDropBoxEntity(manager *ecs.EntityManager, x, y, size float64, clr color.RGBA) ecs.EntityID {
	id := manager.CreateEntity()

	ecs.AddComponent(manager, id, &components.PositionComponent{X: x, Y: y})
	ecs.AddComponent(manager, id, &components.BoxComponent{
		Width:  size,
		Height: size,
		Color:  clr,
	})

	return id
}

// NewDustEntity 创建一个落地尘土实体，lifetime 秒后由 LifetimeSystem 删除
func NewDustEntity(manager *ecs.EntityManager, x, y, width, height, lifetime float64, clr color.RGBA) ecs.EntityID {
	id := manager.CreateEntity()

	ecs.AddComponent(manager, id, &components.PositionComponent{X: x, Y: y})
	ecs.AddComponent(manager, id, &components.BoxComponent{
		Width:  width,
		Height: height,
		Color:  clr,
	})
	ecs.AddComponent(manager, id, &components.LifetimeComponent{
		MaxLifetime: lifetime,
	})

	return id
}
