package action

import "github.com/tanema/gween/ease"

// defaultPools 构造函数使用的全局对象池
//
// 与宿主一样只在主循环中访问，不需要加锁。
var defaultPools = NewPools(DefaultPoolCapacity)

// DefaultPools 返回构造函数使用的全局对象池
func DefaultPools() *Pools {
	return defaultPools
}

// Gravity 从对象池获取并初始化一个重力动作
//
// 参数:
//   - gravity: 重力加速度（必须为正）
//   - fromY: 初始 Y 坐标（不能大于 toY）
//   - toY: 落点 Y 坐标
//   - bounces: 首次落地后的弹跳次数（0 ~ 20）
//   - bounciness: 每次弹跳相对上一次高度的比例（0 ~ 1）
//
// 返回:
//   - *GravityAction: 初始化完成的动作
//   - error: 参数不合法时返回错误，实例会被归还对象池
func Gravity(gravity, fromY, toY float64, bounces int, bounciness float64) (*GravityAction, error) {
	g := Obtain[GravityAction](defaultPools)
	if err := g.Init(gravity, fromY, toY, bounces, bounciness); err != nil {
		Release(g)
		return nil, err
	}
	return g, nil
}

// Delay 等待 delay 秒后执行 a（a 可以为 nil）
func Delay(delay float64, a Action) *DelayAction {
	d := Obtain[DelayAction](defaultPools)
	d.Init(delay, a)
	return d
}

// Sequence 依次执行 actions
func Sequence(actions ...Action) *SequenceAction {
	s := Obtain[SequenceAction](defaultPools)
	for _, a := range actions {
		s.Add(a)
	}
	return s
}

// Parallel 同时执行 actions
func Parallel(actions ...Action) *ParallelAction {
	p := Obtain[ParallelAction](defaultPools)
	for _, a := range actions {
		p.Add(a)
	}
	return p
}

// Run 执行一次 fn
func Run(fn func()) *RunAction {
	r := Obtain[RunAction](defaultPools)
	r.Init(fn)
	return r
}

// TimeScale 以 scale 倍速执行 a
func TimeScale(scale float64, a Action) *TimeScaleAction {
	t := Obtain[TimeScaleAction](defaultPools)
	t.Init(scale, a)
	return t
}

// Forever 无限重复 a
func Forever(a Action) *RepeatForeverAction {
	r := Obtain[RepeatForeverAction](defaultPools)
	r.Init(a)
	return r
}

// Tween 在 duration 秒内把 Y 坐标从 fromY 补间到 toY
func Tween(fromY, toY, duration float64, easing ease.TweenFunc) *TweenAction {
	t := Obtain[TweenAction](defaultPools)
	t.Init(fromY, toY, duration, easing)
	return t
}

// Spring 用弹簧把 Y 坐标拉向 targetY
func Spring(targetY, frequency, damping float64) *SpringAction {
	s := Obtain[SpringAction](defaultPools)
	s.Init(targetY, frequency, damping)
	return s
}
