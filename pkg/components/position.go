package components

// PositionComponent 存储实体在世界坐标系中的位置
//
// 坐标系与屏幕一致：原点在左上角，Y 向下增长。
// 重力、补间、弹簧等动作只修改 Y。
type PositionComponent struct {
	X float64
	Y float64
}
