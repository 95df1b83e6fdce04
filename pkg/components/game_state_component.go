package components

// GamePhase 游戏阶段
type GamePhase int

const (
	// PhaseWaitingToStart 初始状态，等待第一次按下飞行键
	PhaseWaitingToStart GamePhase = iota
	// PhasePlaying 游戏进行中
	PhasePlaying
	// PhaseDying 撞击后方块继续下落
	PhaseDying
	// PhaseWaitingToRestart 方块已落地，等待按下飞行键重新开始
	PhaseWaitingToRestart
)

// String 返回阶段名称（用于日志）
func (p GamePhase) String() string {
	switch p {
	case PhaseWaitingToStart:
		return "waiting_to_start"
	case PhasePlaying:
		return "playing"
	case PhaseDying:
		return "dying"
	case PhaseWaitingToRestart:
		return "waiting_to_restart"
	default:
		return "unknown"
	}
}

// GameStateComponent 一局游戏的全局状态
//
// 挂在唯一的"游戏实体"上，由 GameFlowSystem 独占修改。
type GameStateComponent struct {
	Phase GamePhase

	// Score 当前得分，重开时归零
	Score int

	// Message 当前显示的状态提示
	Message string

	// MovingSpeed 障碍物当前移动速度，死亡后为 0
	MovingSpeed float64

	// FlapHeld 上一帧飞行键是否按下，用于等待状态下的按键边沿检测
	FlapHeld bool

	// Rounds 已开始的局数
	Rounds int
}
