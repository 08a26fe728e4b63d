package action

// SequenceAction 依次驱动子动作
//
// 每帧只驱动当前子动作；当前子动作完成后，下一帧开始驱动下一个。
type SequenceAction struct {
	compositeAction
	index int
}

// Index 返回当前正在驱动的子动作下标
func (s *SequenceAction) Index() int {
	return s.index
}

// Act 驱动当前子动作，最后一个子动作完成时返回 true
func (s *SequenceAction) Act(delta float64) bool {
	if s.index >= len(s.actions) {
		return true
	}
	if s.actions[s.index].Act(delta) {
		s.index++
		if s.index >= len(s.actions) {
			return true
		}
	}
	return false
}

func (s *SequenceAction) Restart() {
	s.index = 0
	s.restart()
}

func (s *SequenceAction) Reset() {
	s.reset()
	s.index = 0
}
