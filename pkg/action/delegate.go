package action

// delegateAction 包装单个子动作的公共部分
type delegateAction struct {
	BaseAction
	action Action
}

// Wrapped 返回被包装的动作
func (d *delegateAction) Wrapped() Action {
	return d.action
}

// SetWrapped 设置被包装的动作，并把当前演员传递给它
func (d *delegateAction) SetWrapped(a Action) {
	d.action = a
	if a != nil {
		a.SetActor(d.Actor())
	}
}

// SetActor 同时设置自身与子动作的演员
func (d *delegateAction) SetActor(actor Actor) {
	if d.action != nil {
		d.action.SetActor(actor)
	}
	d.BaseAction.SetActor(actor)
}

func (d *delegateAction) restart() {
	if d.action != nil {
		d.action.Restart()
	}
}

func (d *delegateAction) reset() {
	Release(d.action)
	d.action = nil
	d.BaseAction.reset()
}

// TimeScaleAction 以 scale 倍速驱动子动作
type TimeScaleAction struct {
	delegateAction
	scale float64
}

// Init 设置倍速与子动作
func (t *TimeScaleAction) Init(scale float64, a Action) {
	t.scale = scale
	t.SetWrapped(a)
}

// Scale 返回倍速
func (t *TimeScaleAction) Scale() float64 {
	return t.scale
}

// Act 以缩放后的 delta 驱动子动作
func (t *TimeScaleAction) Act(delta float64) bool {
	if t.action == nil {
		return true
	}
	return t.action.Act(delta * t.scale)
}

func (t *TimeScaleAction) Restart() {
	t.restart()
}

func (t *TimeScaleAction) Reset() {
	t.reset()
	t.scale = 1
}

// RepeatForeverAction 子动作完成后立即重新开始，永不结束
type RepeatForeverAction struct {
	delegateAction
	loops int
}

// Init 设置需要重复的子动作
func (r *RepeatForeverAction) Init(a Action) {
	r.loops = 0
	r.SetWrapped(a)
}

// Loops 返回子动作已完成的次数
func (r *RepeatForeverAction) Loops() int {
	return r.loops
}

// Act 驱动子动作，完成后重新开始；始终返回 false
func (r *RepeatForeverAction) Act(delta float64) bool {
	if r.action == nil {
		return true
	}
	if r.action.Act(delta) {
		r.loops++
		r.action.Restart()
	}
	return false
}

func (r *RepeatForeverAction) Restart() {
	r.loops = 0
	r.restart()
}

func (r *RepeatForeverAction) Reset() {
	r.reset()
	r.loops = 0
}
