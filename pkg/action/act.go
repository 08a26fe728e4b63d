package action

import "slices"

// ActAll 驱动 list 中本帧开始时已存在的动作，并移除完成的动作
//
// 动作在 Act 中追加到 list 的新动作保留到下一帧。
// 完成的动作依次经过 onFinish（可以为 nil）、断开演员、归还对象池。
func ActAll(list *[]Action, delta float64, onFinish func(a Action)) {
	current := slices.Clone(*list)
	for _, a := range current {
		if !a.Act(delta) {
			continue
		}
		if i := slices.Index(*list, a); i >= 0 {
			*list = slices.Delete(*list, i, i+1)
		}
		if onFinish != nil {
			onFinish(a)
		}
		a.SetActor(nil)
		Release(a)
	}
}
