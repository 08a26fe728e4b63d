package systems

import (
	"log"

	"github.com/gonewx/gravity/pkg/action"
	"github.com/gonewx/gravity/pkg/components"
	"github.com/gonewx/gravity/pkg/ecs"
)

// ActionSystem 每帧驱动所有实体上的动作
//
// 职责范围：
//   - 按实体ID升序、按添加顺序驱动 ActionComponent 中的动作
//   - 移除已完成的动作并断开其演员
//   - 把来自对象池的已完成动作归还对象池
//
// 驱动过程中新添加的动作从下一帧开始执行。
type ActionSystem struct {
	entityManager *ecs.EntityManager
	verbose       bool
}

// NewActionSystem 创建一个新的动作系统
func NewActionSystem(em *ecs.EntityManager) *ActionSystem {
	return &ActionSystem{
		entityManager: em,
	}
}

// SetVerbose 打开后每个动作完成时输出一条日志
func (s *ActionSystem) SetVerbose(verbose bool) {
	s.verbose = verbose
}

// Update 驱动所有实体的动作 deltaTime 秒
func (s *ActionSystem) Update(deltaTime float64) {
	entities := ecs.GetEntitiesWith1[*components.ActionComponent](s.entityManager)

	for _, id := range entities {
		comp, ok := ecs.GetComponent[*components.ActionComponent](s.entityManager, id)
		if !ok || len(comp.Actions) == 0 {
			continue
		}
		action.ActAll(&comp.Actions, deltaTime, func(a action.Action) {
			if s.verbose {
				log.Printf("[ActionSystem] 动作完成 (实体ID: %d, 类型: %T)", id, a)
			}
		})
	}
}
