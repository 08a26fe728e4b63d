package action

import (
	"errors"
	"fmt"
	"math"
)

const (
	// MaxBounces 单个重力动作允许的最大弹跳次数
	MaxBounces = 20

	// DefaultGravity 默认重力加速度（像素/秒²）
	DefaultGravity = 3000.0

	// 初始下落 1 段 + 每次弹跳的上升、下落各 1 段
	maxSegments = 1 + 2*MaxBounces
)

// ErrInvalidParameter 重力动作参数不合法
var ErrInvalidParameter = errors.New("invalid gravity parameter")

// GravityAction 在不使用物理引擎的情况下模拟重力，修改演员的 Y 坐标
//
// 坐标系与屏幕一致：Y 向下增长。演员从 fromY 自由下落到 toY，
// 随后弹跳 bounces 次，每次弹跳高度为上一次（或初始高度）乘以 bounciness。
//
// Init 预先计算每一段的时长与参考高度：
//
//	段 0        初始下落 fromY -> toY
//	段 2k-1     第 k 次弹跳的上升段
//	段 2k       第 k 次弹跳的下落段（与上升段时长、高度对称）
//
// 任意时刻的位置都是已用时间的纯函数，不需要保存速度。
type GravityAction struct {
	BaseAction

	elapsed  float64
	started  bool // 至少推进过一次
	gravity  float64
	toY      float64
	segments int
	duration float64

	durations [maxSegments]float64
	totals    [maxSegments]float64
	heights   [maxSegments]float64
}

// NewGravityAction 创建一个处于默认状态的重力动作
//
// 通常应使用 Gravity() 从对象池获取并初始化实例。
func NewGravityAction() *GravityAction {
	g := &GravityAction{}
	g.Reset()
	return g
}

// ValidateGravity 校验重力动作参数
//
// 参数:
//   - gravity: 重力加速度，必须为正
//   - fromY: 初始 Y 坐标，不能大于 toY
//   - toY: 目标 Y 坐标（落点）
//   - bounces: 首次落地后的弹跳次数，0 ~ 20
//   - bounciness: 弹跳高度衰减系数，0 ~ 1
//
// 返回:
//   - error: 参数不合法时返回包装了 ErrInvalidParameter 的错误
func ValidateGravity(gravity, fromY, toY float64, bounces int, bounciness float64) error {
	if !(gravity > 0) {
		return fmt.Errorf("%w: gravity must be positive", ErrInvalidParameter)
	}
	if !(fromY <= toY) {
		return fmt.Errorf("%w: fromY cannot be > toY", ErrInvalidParameter)
	}
	if bounces < 0 || bounces > MaxBounces {
		return fmt.Errorf("%w: bounces should be between 0 and %d", ErrInvalidParameter, MaxBounces)
	}
	if !(bounciness >= 0 && bounciness <= 1) {
		return fmt.Errorf("%w: bounciness should be between 0 and 1", ErrInvalidParameter)
	}
	return nil
}

// Init 设置动作参数并重新计算全部分段数据
//
// 参数校验失败时不修改任何状态。成功时丢弃上一次运行的所有数据，
// 已用时间归零，因此实例可以安全地从对象池复用。
func (g *GravityAction) Init(gravity, fromY, toY float64, bounces int, bounciness float64) error {
	if err := ValidateGravity(gravity, fromY, toY, bounces, bounciness); err != nil {
		return err
	}

	g.gravity = gravity
	g.toY = toY
	g.segments = 1 + 2*bounces
	g.durations = [maxSegments]float64{}
	g.totals = [maxSegments]float64{}
	g.heights = [maxSegments]float64{}

	// 每段的时长与参考高度
	distance := toY - fromY
	g.heights[0] = fromY
	g.durations[0] = FallDuration(distance, gravity)
	for i := 1; i < g.segments; i += 2 {
		distance *= bounciness
		g.heights[i] = toY - distance
		g.heights[i+1] = toY - distance
		g.durations[i] = FallDuration(distance, gravity)
		g.durations[i+1] = g.durations[i]
	}

	// 累计时长
	total := 0.0
	for i := 0; i < g.segments; i++ {
		total += g.durations[i]
		g.totals[i] = total
	}
	g.duration = total

	g.elapsed = 0
	g.started = false
	return nil
}

// Duration 返回动作总时长（秒）
func (g *GravityAction) Duration() float64 {
	return g.duration
}

// Step 推进 delta 秒并返回新的 Y 坐标以及动作是否已完成
//
// 负的 delta 被忽略：时间只会前进。完成之后继续调用会一直返回 toY。
func (g *GravityAction) Step(delta float64) (y float64, finished bool) {
	g.started = true
	if delta > 0 {
		g.elapsed += delta
	}
	return g.Position(g.elapsed), g.elapsed >= g.duration
}

// Act 推进动作并把 Y 坐标写回演员
func (g *GravityAction) Act(delta float64) bool {
	y, finished := g.Step(delta)
	applyY(g.Actor(), y)
	return finished
}

// Position 计算指定已用时间对应的 Y 坐标，不修改动作状态
func (g *GravityAction) Position(elapsed float64) float64 {
	if elapsed >= g.duration {
		return g.toY
	}
	i := g.segmentAt(elapsed)
	var t float64
	switch {
	case i%2 != 0:
		// 弹起：倒数到最高点
		t = g.totals[i] - elapsed
	case i > 0:
		// 弹跳后的下落
		t = elapsed - g.totals[i-1]
	default:
		// 初始下落
		t = elapsed
	}
	return g.heights[i] + FallDistance(t, g.gravity)
}

// segmentAt 返回累计时长大于 elapsed 的最小段下标，找不到时返回最后一段
func (g *GravityAction) segmentAt(elapsed float64) int {
	for i := 0; i < g.segments; i++ {
		if elapsed < g.totals[i] {
			return i
		}
	}
	return g.segments - 1
}

// Landings 返回到目前为止演员触地的次数
//
// 初始下落结束算第一次触地，之后每次弹跳的下落段结束各算一次。
// 动作完成后总是返回 Bounces()+1，包括下落高度为 0、第一帧即完成的情况。
func (g *GravityAction) Landings() int {
	if !g.started {
		return 0
	}
	if g.elapsed >= g.duration {
		return g.Bounces() + 1
	}
	n := 0
	for i := 0; i < g.segments; i += 2 {
		if g.elapsed >= g.totals[i] {
			n++
		}
	}
	return n
}

// Elapsed 返回已用时间（秒）
func (g *GravityAction) Elapsed() float64 {
	return g.elapsed
}

// Gravity 返回重力加速度
func (g *GravityAction) Gravity() float64 {
	return g.gravity
}

// ToY 返回落点 Y 坐标
func (g *GravityAction) ToY() float64 {
	return g.toY
}

// Bounces 返回弹跳次数
func (g *GravityAction) Bounces() int {
	return (g.segments - 1) / 2
}

// Segments 返回分段数量（1 + 2*bounces）
func (g *GravityAction) Segments() int {
	return g.segments
}

// SegmentDuration 返回第 i 段的时长
func (g *GravityAction) SegmentDuration(i int) float64 {
	return g.durations[i]
}

// SegmentHeight 返回第 i 段的参考高度
func (g *GravityAction) SegmentHeight(i int) float64 {
	return g.heights[i]
}

// CumulativeDuration 返回第 0 ~ i 段的累计时长
func (g *GravityAction) CumulativeDuration(i int) float64 {
	return g.totals[i]
}

// Restart 已用时间归零，保留分段数据
func (g *GravityAction) Restart() {
	g.elapsed = 0
	g.started = false
}

// Reset 恢复默认参数（gravity=3000, toY=0, 1 段, 时长 0）并断开演员
func (g *GravityAction) Reset() {
	g.BaseAction.reset()
	g.elapsed = 0
	g.started = false
	g.gravity = DefaultGravity
	g.toY = 0
	g.segments = 1
	g.duration = 0
	g.durations = [maxSegments]float64{}
	g.totals = [maxSegments]float64{}
	g.heights = [maxSegments]float64{}
}

// FallDuration 从静止开始下落 distance 所需的时间：sqrt(2d/g)
func FallDuration(distance, gravity float64) float64 {
	return math.Sqrt(2 * distance / gravity)
}

// FallDistance 从静止开始下落 t 秒经过的距离：g*t²/2
func FallDistance(t, gravity float64) float64 {
	return 0.5 * gravity * t * t
}
