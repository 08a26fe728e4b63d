package action

import "log"

// Scheduler 能在场景时间 delay 秒后执行一次回调的对象（通常是舞台）
type Scheduler interface {
	Schedule(delay float64, fn func())
}

type pendingAction struct {
	action Action
	actor  Actor
}

// ActionList 收集待执行的动作，统一挂载后在全部动作完成时触发一次回调
//
// 用于在一组互不相关的动作都结束之后执行任意代码。
// 同一个 ActionList 可以反复 Add/Process。
type ActionList struct {
	scheduler Scheduler
	pending   []pendingAction
}

// NewActionList 创建绑定到 scheduler 的动作列表
func NewActionList(scheduler Scheduler) *ActionList {
	return &ActionList{
		scheduler: scheduler,
		pending:   make([]pendingAction, 0, 8),
	}
}

// Add 添加一个待执行的动作及其目标演员
func (l *ActionList) Add(a Action, actor Actor) {
	if a == nil || actor == nil {
		log.Printf("[ActionList] Warning: ignoring pending action with nil action or actor")
		return
	}
	l.pending = append(l.pending, pendingAction{action: a, actor: actor})
}

// Count 返回待执行的动作数量
func (l *ActionList) Count() int {
	return len(l.pending)
}

// Get 返回第 i 个待执行的动作
func (l *ActionList) Get(i int) Action {
	return l.pending[i].action
}

// ActorAt 返回第 i 个待执行动作的目标演员
func (l *ActionList) ActorAt(i int) Actor {
	return l.pending[i].actor
}

// Clear 清空列表，不影响已经挂载的动作
func (l *ActionList) Clear() {
	for i := range l.pending {
		l.pending[i] = pendingAction{}
	}
	l.pending = l.pending[:0]
}

// MaxDuration 返回列表中最长的动作时长
func (l *ActionList) MaxDuration() float64 {
	actions := make([]Action, len(l.pending))
	for i, p := range l.pending {
		actions[i] = p.action
	}
	return MaxDuration(actions...)
}

// Process 把所有动作挂载到各自的演员上并清空列表，
// 然后安排 done 在最长动作结束 delay 秒后执行一次
//
// 参数:
//   - done: 全部动作完成后执行的回调（可以为 nil）
//   - delay: 最长动作结束到执行回调之间的额外等待时间
//
// 返回:
//   - float64: 实际安排的回调延迟（最长时长 + delay）
func (l *ActionList) Process(done func(), delay float64) float64 {
	total := l.MaxDuration() + delay
	pending := l.pending
	l.pending = make([]pendingAction, 0, cap(pending))
	for _, p := range pending {
		p.actor.AddAction(p.action)
	}
	if done == nil {
		done = func() {}
	}
	l.scheduler.Schedule(total, done)
	log.Printf("[ActionList] Processed %d actions, callback in %.3fs", len(pending), total)
	return total
}
