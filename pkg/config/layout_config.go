package config

import "image/color"

// 布局配置常量
// 本文件定义了窗口尺寸、场地坐标到屏幕坐标的转换以及渲染配色

const (
	// GameWindowWidth 游戏逻辑屏幕宽度，与默认场地宽度一致
	GameWindowWidth = 1000

	// GameWindowHeight 游戏逻辑屏幕高度，与默认场地高度一致
	GameWindowHeight = 500

	// InitialWindowWidth 启动时的窗口宽度（保持场地宽高比）
	InitialWindowWidth = 800

	// InitialWindowHeight 启动时的窗口高度
	InitialWindowHeight = 400
)

// 配色
var (
	// SkyColor 天空背景色 0x87ceeb
	SkyColor = color.RGBA{R: 0x87, G: 0xce, B: 0xeb, A: 0xff}

	// ColumnColor 柱子颜色 0x228b22
	ColumnColor = color.RGBA{R: 0x22, G: 0x8b, B: 0x22, A: 0xff}

	// CubeAliveColor 存活方块颜色 0xb22222
	CubeAliveColor = color.RGBA{R: 0xb2, G: 0x22, B: 0x22, A: 0xff}

	// CubeDeadColor 撞击后方块颜色 0x8b8989
	CubeDeadColor = color.RGBA{R: 0x8b, G: 0x89, B: 0x89, A: 0xff}

	// CubeGameOverColor 落地后等待重开的方块颜色
	CubeGameOverColor = color.RGBA{R: 0x69, G: 0x69, B: 0x69, A: 0xff}

	// HUDTextColor 分数与提示文字颜色
	HUDTextColor = color.RGBA{R: 0xff, G: 0xff, B: 0xff, A: 0xff}
)

// ScreenMapper 将场地坐标映射到屏幕坐标
//
// 场地坐标原点在中心且 Y 向上，屏幕坐标原点在左上角且 Y 向下。
type ScreenMapper struct {
	FieldWidth, FieldHeight   float64
	ScreenWidth, ScreenHeight float64
}

// NewScreenMapper 根据玩法配置和屏幕尺寸创建映射器
func NewScreenMapper(cfg *GameplayConfig, screenWidth, screenHeight float64) ScreenMapper {
	return ScreenMapper{
		FieldWidth:   cfg.Field.Width,
		FieldHeight:  cfg.Field.Height,
		ScreenWidth:  screenWidth,
		ScreenHeight: screenHeight,
	}
}

// ScaleX 水平缩放系数
func (m ScreenMapper) ScaleX() float64 {
	return m.ScreenWidth / m.FieldWidth
}

// ScaleY 垂直缩放系数
func (m ScreenMapper) ScaleY() float64 {
	return m.ScreenHeight / m.FieldHeight
}

// ToScreen 场地坐标 -> 屏幕坐标
//
// 示例（默认 1000x500 场地，1000x500 屏幕）:
//
//	ToScreen(0, 0)      = (500, 250)
//	ToScreen(-500, 250) = (0, 0)
func (m ScreenMapper) ToScreen(x, y float64) (float64, float64) {
	sx := (x + m.FieldWidth/2) * m.ScaleX()
	sy := (m.FieldHeight/2 - y) * m.ScaleY()
	return sx, sy
}

// RectToScreen 将以 (cx, cy) 为中心、w x h 的矩形转换为屏幕左上角坐标和尺寸
func (m ScreenMapper) RectToScreen(cx, cy, w, h float64) (x, y, width, height float64) {
	left, top := m.ToScreen(cx-w/2, cy+h/2)
	return left, top, w * m.ScaleX(), h * m.ScaleY()
}

// ToField 屏幕坐标 -> 场地坐标，ToScreen 的逆变换
func (m ScreenMapper) ToField(sx, sy float64) (float64, float64) {
	x := sx/m.ScaleX() - m.FieldWidth/2
	y := m.FieldHeight/2 - sy/m.ScaleY()
	return x, y
}
