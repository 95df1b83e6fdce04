package components

// CubeTint 方块颜色状态
type CubeTint int

const (
	// CubeTintAlive 存活（红色）
	CubeTintAlive CubeTint = iota
	// CubeTintDead 撞击后下落中（灰色）
	CubeTintDead
	// CubeTintGameOver 已落地，等待重新开始（深灰色）
	CubeTintGameOver
)

// String 返回颜色状态名称（用于日志）
func (t CubeTint) String() string {
	switch t {
	case CubeTintAlive:
		return "alive"
	case CubeTintDead:
		return "dead"
	case CubeTintGameOver:
		return "game_over"
	default:
		return "unknown"
	}
}

// CubeComponent 玩家方块组件
// 方块在场景创建时生成一次，之后只会被移动和重置，不会被销毁
type CubeComponent struct {
	Tint CubeTint
	// Landed 死亡后已经停止下落（落在地面或柱子顶部）
	Landed bool
}
