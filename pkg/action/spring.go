package action

import (
	"math"

	"github.com/charmbracelet/harmonica"
)

// springEpsilon 位置与速度都低于该阈值时视为静止
const springEpsilon = 0.01

// SpringAction 用阻尼弹簧把演员的 Y 坐标拉向目标值
//
// 弹簧何时静止取决于初始位置与帧间隔，无法预先得知时长，
// 因此 Duration() 对它返回 0。
type SpringAction struct {
	BaseAction
	spring    harmonica.Spring
	lastDelta float64
	frequency float64
	damping   float64
	targetY   float64
	y         float64
	velocity  float64
	started   bool
	settled   bool
}

// Init 设置目标位置、角频率与阻尼比
func (s *SpringAction) Init(targetY, frequency, damping float64) {
	s.targetY = targetY
	s.frequency = frequency
	s.damping = damping
	s.lastDelta = 0
	s.started = false
	s.settled = false
	s.velocity = 0
}

// Settled 返回弹簧是否已静止
func (s *SpringAction) Settled() bool {
	return s.settled
}

// Act 以 delta 为步长推进弹簧
//
// 第一次调用时从演员当前的 Y 坐标出发；演员不支持位置时从目标位置出发。
func (s *SpringAction) Act(delta float64) bool {
	if s.settled {
		return true
	}
	if !s.started {
		s.started = true
		s.y = s.targetY
		if p, ok := s.Actor().(Positioner); ok {
			s.y = p.Y()
		}
	}
	if delta <= 0 {
		return false
	}
	if delta != s.lastDelta {
		s.spring = harmonica.NewSpring(delta, s.frequency, s.damping)
		s.lastDelta = delta
	}

	s.y, s.velocity = s.spring.Update(s.y, s.velocity, s.targetY)
	if math.Abs(s.y-s.targetY) < springEpsilon && math.Abs(s.velocity) < springEpsilon {
		s.y = s.targetY
		s.velocity = 0
		s.settled = true
	}
	applyY(s.Actor(), s.y)
	return s.settled
}

func (s *SpringAction) Restart() {
	s.started = false
	s.settled = false
	s.velocity = 0
}

func (s *SpringAction) Reset() {
	s.BaseAction.reset()
	s.Init(0, 0, 0)
	s.spring = harmonica.Spring{}
	s.y = 0
}
