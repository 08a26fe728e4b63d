package action

// compositeAction 持有多个子动作的公共部分
type compositeAction struct {
	BaseAction
	actions []Action
}

// Add 追加子动作，并把当前演员传递给它
func (c *compositeAction) Add(a Action) {
	if a == nil {
		return
	}
	c.actions = append(c.actions, a)
	a.SetActor(c.Actor())
}

// Actions 返回子动作列表（调用方不应修改）
func (c *compositeAction) Actions() []Action {
	return c.actions
}

// SetActor 同时设置自身与所有子动作的演员
func (c *compositeAction) SetActor(actor Actor) {
	for _, a := range c.actions {
		a.SetActor(actor)
	}
	c.BaseAction.SetActor(actor)
}

func (c *compositeAction) restart() {
	for _, a := range c.actions {
		a.Restart()
	}
}

func (c *compositeAction) reset() {
	for i, a := range c.actions {
		Release(a)
		c.actions[i] = nil
	}
	c.actions = c.actions[:0]
	c.BaseAction.reset()
}

// ParallelAction 同时驱动所有子动作，全部完成后才算完成
type ParallelAction struct {
	compositeAction
	complete bool
}

// Act 每帧驱动全部子动作，已完成的子动作会被重复调用，需保证幂等
func (p *ParallelAction) Act(delta float64) bool {
	if p.complete {
		return true
	}
	p.complete = true
	for _, a := range p.actions {
		if !a.Act(delta) {
			p.complete = false
		}
	}
	return p.complete
}

func (p *ParallelAction) Restart() {
	p.complete = false
	p.restart()
}

func (p *ParallelAction) Reset() {
	p.reset()
	p.complete = false
}
