package game

import (
	"log"

	"github.com/gonewx/gravity/pkg/action"
	"github.com/gonewx/gravity/pkg/components"
	"github.com/gonewx/gravity/pkg/ecs"
)

// ActorRef 把 ECS 实体包装成动作可以操作的演员
//
// 实现 action.Actor（挂载动作）与 action.Positioner（读写 Y 坐标）。
// 同一实体的多个 ActorRef 指向相同的组件。
type ActorRef struct {
	em *ecs.EntityManager
	id ecs.EntityID
}

// NewActorRef 创建指向实体 id 的演员
func NewActorRef(em *ecs.EntityManager, id ecs.EntityID) *ActorRef {
	return &ActorRef{em: em, id: id}
}

// ID 返回实体ID
func (a *ActorRef) ID() ecs.EntityID {
	return a.id
}

// AddAction 把动作追加到实体的 ActionComponent，实体没有该组件时自动创建
//
// 实体已被删除时动作被丢弃并归还对象池。
func (a *ActorRef) AddAction(act action.Action) {
	if act == nil {
		return
	}
	if !a.em.Exists(a.id) {
		log.Printf("[ActorRef] Warning: entity %d does not exist, dropping %T", a.id, act)
		action.Release(act)
		return
	}
	comp, ok := ecs.GetComponent[*components.ActionComponent](a.em, a.id)
	if !ok {
		comp = &components.ActionComponent{}
		ecs.AddComponent(a.em, a.id, comp)
	}
	act.SetActor(a)
	comp.Actions = append(comp.Actions, act)
}

// Actions 返回实体上正在运行的动作
func (a *ActorRef) Actions() []action.Action {
	comp, ok := ecs.GetComponent[*components.ActionComponent](a.em, a.id)
	if !ok {
		return nil
	}
	return comp.Actions
}

// ClearActions 停止并移除实体上的全部动作，池化的动作归还对象池
func (a *ActorRef) ClearActions() {
	comp, ok := ecs.GetComponent[*components.ActionComponent](a.em, a.id)
	if !ok {
		return
	}
	for i, act := range comp.Actions {
		act.SetActor(nil)
		action.Release(act)
		comp.Actions[i] = nil
	}
	comp.Actions = comp.Actions[:0]
}

// Y 返回实体的 Y 坐标（没有位置组件时为 0）
func (a *ActorRef) Y() float64 {
	pos, ok := ecs.GetComponent[*components.PositionComponent](a.em, a.id)
	if !ok {
		return 0
	}
	return pos.Y
}

// SetY 设置实体的 Y 坐标，没有位置组件时忽略
func (a *ActorRef) SetY(y float64) {
	if pos, ok := ecs.GetComponent[*components.PositionComponent](a.em, a.id); ok {
		pos.Y = y
	}
}

var (
	_ action.Actor      = (*ActorRef)(nil)
	_ action.Positioner = (*ActorRef)(nil)
)
