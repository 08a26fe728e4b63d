package components

import "github.com/gonewx/gravity/pkg/action"

// ActionComponent 实体上正在运行的动作列表
//
// 生命周期:
//  1. action.Actor.AddAction 把动作追加到 Actions（实体没有该组件时自动创建）
//  2. ActionSystem 每帧按顺序驱动 Actions 中的每个动作
//  3. 动作返回完成后从列表移除，来自对象池的动作被归还
//
// 实体被销毁后组件随之消失，未完成的动作不再被驱动（隐式取消）。
type ActionComponent struct {
	Actions []action.Action
}
