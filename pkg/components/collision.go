package components

// CollisionComponent 定义实体的碰撞检测边界框
// 方块使用 Width x Height 作为自身尺寸；障碍物使用 Width 作为柱子宽度，Height 作为单根柱子高度
type CollisionComponent struct {
	Width  float64 // 碰撞盒宽度（像素）
	Height float64 // 碰撞盒高度（像素）
}
