package config

// 布局配置常量
// 本文件定义了演示场景中的窗口尺寸、地面位置和方块布局

const (
	// GameWindowWidth 逻辑屏幕宽度（像素）
	GameWindowWidth = 800

	// GameWindowHeight 逻辑屏幕高度（像素）
	GameWindowHeight = 600

	// GroundY 地面的Y坐标，方块的底边落在这条线上
	GroundY = 520.0

	// BoxSize 下落方块的边长（像素）
	BoxSize = 32.0

	// DropColumns 每个场景同时下落的方块数
	DropColumns = 5

	// ColumnSpacing 相邻方块之间的水平间距（像素）
	ColumnSpacing = 120.0

	// DustLifetime 落地尘土方块的存在时间（秒）
	DustLifetime = 0.3
)

// DropHeightFactors 各列下落高度相对预设高度的比例
// 从左到右依次降低，便于对比不同高度的弹跳节奏
var DropHeightFactors = [DropColumns]float64{1.0, 0.8, 0.6, 0.4, 0.2}

// GetColumnX 返回第 column 列方块的左上角X坐标，所有列整体水平居中
func GetColumnX(column int) float64 {
	totalWidth := float64(DropColumns-1)*ColumnSpacing + BoxSize
	startX := (float64(GameWindowWidth) - totalWidth) / 2
	return startX + float64(column)*ColumnSpacing
}

// GetRestY 返回方块静止在地面上时左上角的Y坐标
func GetRestY() float64 {
	return GroundY - BoxSize
}

// GetDropY 返回第 column 列方块在预设高度 height 下的起始Y坐标
//
// 起始点不会高于屏幕顶部。
func GetDropY(column int, height float64) float64 {
	y := GetRestY() - height*DropHeightFactors[column]
	return max(y, 0)
}
