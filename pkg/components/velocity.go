package components

// VelocityComponent 垂直速度组件
// VY 为正表示向下运动（与重力同向），为负表示上升
type VelocityComponent struct {
	VY float64
}
