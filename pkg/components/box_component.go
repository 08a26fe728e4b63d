package components

import "image/color"

// BoxComponent 以纯色矩形绘制实体（演示程序使用）
//
// 矩形以 PositionComponent 为左上角。
type BoxComponent struct {
	Width  float64
	Height float64
	Color  color.RGBA
}
