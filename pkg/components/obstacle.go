package components

// ObstacleComponent 障碍物组件
//
// 一个障碍物由上下两根柱子组成，共享同一个水平位置和间隙中心（PositionComponent.Y）。
// 柱子尺寸来自同一实体上的 CollisionComponent。
type ObstacleComponent struct {
	// Slot 在障碍物池中的位置（回收后不重新排序）
	Slot int
	// Interspace 上下柱子之间的间隙高度
	Interspace float64
}

// GapTop 间隙上边缘（上柱底部）的 Y 坐标
func (o *ObstacleComponent) GapTop(gapCenterY float64) float64 {
	return gapCenterY + o.Interspace/2
}

// GapBottom 间隙下边缘（下柱顶部）的 Y 坐标
func (o *ObstacleComponent) GapBottom(gapCenterY float64) float64 {
	return gapCenterY - o.Interspace/2
}

// UpperColumnCenterY 上柱中心 Y 坐标
func (o *ObstacleComponent) UpperColumnCenterY(gapCenterY, columnHeight float64) float64 {
	return o.GapTop(gapCenterY) + columnHeight/2
}

// LowerColumnCenterY 下柱中心 Y 坐标
func (o *ObstacleComponent) LowerColumnCenterY(gapCenterY, columnHeight float64) float64 {
	return o.GapBottom(gapCenterY) - columnHeight/2
}
