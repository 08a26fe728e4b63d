// Package action 提供由宿主逐帧驱动的演员动作（Action）
//
// 该包包含：
//   - GravityAction：无需物理引擎的重力下落 + 衰减弹跳动作
//   - 组合动作：DelayAction、SequenceAction、ParallelAction、TimeScaleAction 等
//   - Duration/MaxDuration：递归计算任意嵌套动作树的总时长
//   - ActionList：批量挂载动作，并在最慢的动作结束后触发一次回调
//   - Pools：按类型复用动作实例的对象池
//
// 所有动作都在单线程中由宿主的每帧 Update 调用推进，不需要任何加锁。
package action

// Action 动作接口
//
// 宿主每帧调用 Act(delta) 推进动作，返回 true 表示动作已完成，
// 此后宿主不再调用 Act，并可以把池化的动作归还对象池。
type Action interface {
	// Act 推进 delta 秒（delta >= 0），返回动作是否已完成
	Act(delta float64) bool

	// Actor 返回动作当前挂载的演员（未挂载时为 nil）
	Actor() Actor

	// SetActor 设置动作挂载的演员，组合动作会把演员传递给子动作
	SetActor(actor Actor)

	// Restart 把动作倒回起点，保留已设置的参数
	Restart()

	// Reset 恢复默认参数并断开演员，用于归还对象池
	Reset()
}

// Actor 动作的宿主（场景中的演员）
type Actor interface {
	// AddAction 把动作交给演员，从下一帧开始由宿主驱动
	AddAction(a Action)
}

// Positioner 拥有可写纵坐标的演员
//
// 会修改位置的动作（GravityAction、TweenAction、SpringAction）只写这一个属性。
type Positioner interface {
	Y() float64
	SetY(y float64)
}

// FiniteDurationAction 时长由自身参数推导出来的动作
//
// 与 TemporalAction 不同，调用方不需要指定时长，时长由动作参数计算得到。
// 计算总时长时它的优先级高于 TemporalAction。
type FiniteDurationAction interface {
	Action

	// Duration 返回动作从开始到完成的总时长（秒）
	Duration() float64
}

// TemporalAction 由调用方显式指定固定时长的动作（如补间动画）
type TemporalAction interface {
	Action

	// FixedDuration 返回调用方指定的时长（秒）
	FixedDuration() float64
}

// Delegator 包装另一个动作的动作
type Delegator interface {
	Action

	// Wrapped 返回被包装的动作（可能为 nil）
	Wrapped() Action
}

// pooled 记录自身来源对象池的动作
type pooled interface {
	Pool() *Pool
	SetPool(p *Pool)
}

// BaseAction 所有动作共用的演员与对象池字段
//
// 具体动作通过嵌入 BaseAction 获得 Actor/SetActor/Pool/SetPool，
// 并自行实现 Act、Restart 和 Reset。
type BaseAction struct {
	actor Actor
	pool  *Pool
}

// Actor 返回挂载的演员
func (b *BaseAction) Actor() Actor {
	return b.actor
}

// SetActor 设置挂载的演员
func (b *BaseAction) SetActor(actor Actor) {
	b.actor = actor
}

// Pool 返回动作来源的对象池（非池化动作为 nil）
func (b *BaseAction) Pool() *Pool {
	return b.pool
}

// SetPool 记录动作来源的对象池
func (b *BaseAction) SetPool(p *Pool) {
	b.pool = p
}

func (b *BaseAction) reset() {
	b.actor = nil
	b.pool = nil
}

// applyY 把纵坐标写回演员（演员不支持位置时忽略）
func applyY(actor Actor, y float64) {
	if p, ok := actor.(Positioner); ok {
		p.SetY(y)
	}
}

// Release 把池化的动作归还其对象池
//
// 非池化动作（直接构造的实例）不受影响。组合动作在 Reset 时会对子动作调用 Release。
func Release(a Action) {
	if a == nil {
		return
	}
	if p, ok := a.(pooled); ok && p.Pool() != nil {
		p.Pool().Free(a)
	}
}
