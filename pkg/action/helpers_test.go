package action

// testActor 记录挂载的动作与 Y 坐标
type testActor struct {
	y       float64
	actions []Action
}

func (a *testActor) AddAction(act Action) {
	act.SetActor(a)
	a.actions = append(a.actions, act)
}

func (a *testActor) Y() float64     { return a.y }
func (a *testActor) SetY(y float64) { a.y = y }

// testScheduler 记录 Schedule 调用
type testScheduler struct {
	delays    []float64
	callbacks []func()
}

func (s *testScheduler) Schedule(delay float64, fn func()) {
	s.delays = append(s.delays, delay)
	s.callbacks = append(s.callbacks, fn)
}

// leaf 具有显式时长的测试动作
type leaf struct {
	BaseAction
	duration float64
	elapsed  float64
}

func newLeaf(d float64) *leaf { return &leaf{duration: d} }

func (l *leaf) Duration() float64 { return l.duration }

func (l *leaf) Act(delta float64) bool {
	l.elapsed += delta
	return l.elapsed >= l.duration
}

func (l *leaf) Restart() { l.elapsed = 0 }
func (l *leaf) Reset()   { l.BaseAction.reset(); l.elapsed = 0; l.duration = 0 }

// temporal 只具备固定时长能力的测试动作
type temporal struct {
	BaseAction
	fixed float64
}

func (t *temporal) FixedDuration() float64 { return t.fixed }
func (t *temporal) Act(float64) bool       { return true }
func (t *temporal) Restart()               {}
func (t *temporal) Reset()                 { t.BaseAction.reset() }

// dualDuration 同时具备两种时长能力且两者不一致
type dualDuration struct {
	temporal
	explicit float64
}

func (d *dualDuration) Duration() float64 { return d.explicit }

// opaque 无法识别时长的测试动作
type opaque struct {
	BaseAction
}

func (o *opaque) Act(float64) bool { return false }
func (o *opaque) Restart()         {}
func (o *opaque) Reset()           { o.BaseAction.reset() }
