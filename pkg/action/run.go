package action

// RunAction 执行一次回调后立即完成
type RunAction struct {
	BaseAction
	fn  func()
	ran bool
}

// Init 设置回调
func (r *RunAction) Init(fn func()) {
	r.fn = fn
	r.ran = false
}

// Act 首次调用时执行回调，之后的调用不会再次执行
func (r *RunAction) Act(delta float64) bool {
	if !r.ran {
		r.ran = true
		if r.fn != nil {
			r.fn()
		}
	}
	return true
}

func (r *RunAction) Restart() {
	r.ran = false
}

func (r *RunAction) Reset() {
	r.BaseAction.reset()
	r.fn = nil
	r.ran = false
}
