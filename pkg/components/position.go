package components

// PositionComponent 实体在场地坐标系中的位置（原点在场地中心，Y 向上）
// 对方块而言 X、Z 固定，Y 每帧变化；对障碍物而言 X 为水平位置，Y 为间隙中心
type PositionComponent struct {
	X float64
	Y float64
	Z float64
}
