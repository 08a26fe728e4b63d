package action

// Duration 递归计算动作的总时长（秒）
//
// 匹配顺序即优先级，越具体的规则越靠前：
//  1. FiniteDurationAction：由参数推导的时长，最权威
//  2. TemporalAction：调用方指定的固定时长
//  3. *DelayAction：等待时长 + 子动作时长
//  4. Delegator：子动作时长
//  5. *SequenceAction：子动作时长之和
//  6. *ParallelAction：子动作时长的最大值，没有子动作时为 0
//  7. 其他（时长未知或无限的动作、nil）：0
//
// 同时具备 1 和 2 两种能力的动作按 1 计算。时长只用于安排延迟回调，
// 无法识别的动作返回 0 而不是报错。
func Duration(a Action) float64 {
	switch a := a.(type) {
	case nil:
		return 0
	case FiniteDurationAction:
		return a.Duration()
	case TemporalAction:
		return a.FixedDuration()
	case *DelayAction:
		return a.Delay() + Duration(a.Wrapped())
	case Delegator:
		return Duration(a.Wrapped())
	case *SequenceAction:
		total := 0.0
		for _, child := range a.Actions() {
			total += Duration(child)
		}
		return total
	case *ParallelAction:
		return MaxDuration(a.Actions()...)
	default:
		return 0
	}
}

// MaxDuration 返回多个动作时长中的最大值，没有动作时返回 0
func MaxDuration(actions ...Action) float64 {
	longest := 0.0
	for _, a := range actions {
		longest = max(longest, Duration(a))
	}
	return longest
}
