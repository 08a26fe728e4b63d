package action

import (
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
)

// TweenAction 在固定时长内把演员的 Y 坐标从 fromY 补间到 toY
//
// 时长由调用方指定，因此它实现的是 TemporalAction 而不是 FiniteDurationAction。
type TweenAction struct {
	BaseAction
	tween    *gween.Tween
	fromY    float64
	toY      float64
	duration float64
	easing   ease.TweenFunc
}

// Init 设置补间参数，easing 为 nil 时使用线性缓动
func (t *TweenAction) Init(fromY, toY, duration float64, easing ease.TweenFunc) {
	if easing == nil {
		easing = ease.Linear
	}
	if duration < 0 {
		duration = 0
	}
	t.fromY = fromY
	t.toY = toY
	t.duration = duration
	t.easing = easing
	t.tween = gween.New(float32(fromY), float32(toY), float32(duration), easing)
}

// FixedDuration 返回补间时长（秒）
func (t *TweenAction) FixedDuration() float64 {
	return t.duration
}

// Act 推进补间并把 Y 坐标写回演员
func (t *TweenAction) Act(delta float64) bool {
	if t.tween == nil {
		return true
	}
	if delta < 0 {
		delta = 0
	}
	y, finished := t.tween.Update(float32(delta))
	if finished {
		// 终点使用 float64 原值，避免 float32 精度误差
		applyY(t.Actor(), t.toY)
		return true
	}
	applyY(t.Actor(), float64(y))
	return false
}

func (t *TweenAction) Restart() {
	if t.tween != nil {
		t.tween.Reset()
	}
}

func (t *TweenAction) Reset() {
	t.BaseAction.reset()
	t.tween = nil
	t.fromY = 0
	t.toY = 0
	t.duration = 0
	t.easing = nil
}
