package action

// DelayAction 等待 delay 秒后再驱动子动作
//
// 子动作可以为 nil，此时等待结束即完成（常用作纯计时器）。
type DelayAction struct {
	delegateAction
	delay float64
	time  float64
}

// Init 设置等待时长与子动作
func (d *DelayAction) Init(delay float64, a Action) {
	d.delay = delay
	d.time = 0
	d.SetWrapped(a)
}

// Delay 返回等待时长（秒）
func (d *DelayAction) Delay() float64 {
	return d.delay
}

// Time 返回已等待的时间（秒）
func (d *DelayAction) Time() float64 {
	return d.time
}

// Act 先消耗等待时间，等待结束那一帧剩余的时间交给子动作
func (d *DelayAction) Act(delta float64) bool {
	if d.time < d.delay {
		d.time += delta
		if d.time < d.delay {
			return false
		}
		delta = d.time - d.delay
	}
	if d.action == nil {
		return true
	}
	return d.action.Act(delta)
}

// Finish 跳过剩余的等待时间
func (d *DelayAction) Finish() {
	d.time = d.delay
}

func (d *DelayAction) Restart() {
	d.time = 0
	d.restart()
}

func (d *DelayAction) Reset() {
	d.reset()
	d.delay = 0
	d.time = 0
}
