package systems

import (
	"log"

	"github.com/decker502/flappycube/pkg/components"
	"github.com/decker502/flappycube/pkg/config"
	"github.com/decker502/flappycube/pkg/ecs"
)

// GameFlowSystem 游戏状态机
//
// 每帧根据当前阶段只执行一种行为：
//
//	WaitingToStart   --飞行键按下边沿-->  Playing
//	Playing          --撞柱/触地------->  Dying（触地时直接落地 -> WaitingToRestart）
//	Dying            --落地------------>  WaitingToRestart
//	WaitingToRestart --飞行键按下边沿-->  Playing（重置方块、障碍物、分数）
//
// 飞行键在 Playing 中按电平处理（按住持续覆盖速度），在两个等待阶段按边沿处理。
type GameFlowSystem struct {
	em         *ecs.EntityManager
	cfg        *config.GameplayConfig
	gameEntity ecs.EntityID
	cubeEntity ecs.EntityID

	pool      *ObstaclePoolSystem
	physics   *PhysicsSystem
	collision *CollisionSystem
	hooks     Hooks
}

// NewGameFlowSystem 创建状态机
func NewGameFlowSystem(
	em *ecs.EntityManager,
	cfg *config.GameplayConfig,
	gameEntity, cubeEntity ecs.EntityID,
	pool *ObstaclePoolSystem,
	physics *PhysicsSystem,
	collision *CollisionSystem,
	hooks Hooks,
) *GameFlowSystem {
	return &GameFlowSystem{
		em:         em,
		cfg:        cfg,
		gameEntity: gameEntity,
		cubeEntity: cubeEntity,
		pool:       pool,
		physics:    physics,
		collision:  collision,
		hooks:      hooks,
	}
}

// State 返回游戏状态组件
func (s *GameFlowSystem) State() *components.GameStateComponent {
	return ecs.MustGetComponent[*components.GameStateComponent](s.em, s.gameEntity)
}

func (s *GameFlowSystem) cube() *components.CubeComponent {
	return ecs.MustGetComponent[*components.CubeComponent](s.em, s.cubeEntity)
}

// Update 执行一帧
//
// 参数:
//   - deltaTime: 本帧经过的时间（秒），<=0 时跳过所有运动
//   - flap: 本帧飞行键是否处于按下状态
func (s *GameFlowSystem) Update(deltaTime float64, flap bool) {
	state := s.State()
	pressed := flap && !state.FlapHeld
	state.FlapHeld = flap

	switch state.Phase {
	case components.PhaseWaitingToStart:
		if pressed {
			s.start()
		}
	case components.PhasePlaying:
		s.updatePlaying(deltaTime, flap, pressed)
	case components.PhaseDying:
		s.updateDying(deltaTime)
	case components.PhaseWaitingToRestart:
		if pressed {
			s.Restart()
		}
	}
}

func (s *GameFlowSystem) start() {
	state := s.State()
	state.Phase = components.PhasePlaying
	state.Rounds++
	log.Printf("[GameFlow] 游戏开始 (round %d)", state.Rounds)
}

func (s *GameFlowSystem) updatePlaying(deltaTime float64, flap, pressed bool) {
	if deltaTime <= 0 {
		return
	}
	state := s.State()

	s.collision.AdvanceScoringTimer(deltaTime)
	s.pool.Update(deltaTime)

	result := s.collision.DetectPlaying()
	if result.Scored {
		s.hooks.showScore(state.Score)
		s.hooks.playSound(SoundScore)
		if result.MilestoneChanged {
			s.hooks.showMessage(state.Message)
		}
	}
	if result.Crashed {
		s.enterDying()
		return
	}

	if pressed {
		s.hooks.playSound(SoundFlap)
	}
	if s.physics.Update(deltaTime, flap) {
		// 触地：死亡且已经落地
		s.enterDying()
		s.land()
	}
}

func (s *GameFlowSystem) updateDying(deltaTime float64) {
	if deltaTime <= 0 {
		return
	}
	s.physics.Integrate(deltaTime)
	// 先贴地再检查柱顶：一帧内同时越过柱顶和地面时，方块应停在柱顶
	onFloor := s.physics.ClampFloor()
	onColumn := s.collision.SettleOnObstacles()
	if onFloor || onColumn {
		s.land()
	}
}

// enterDying 撞击：冻结障碍物与方块上升速度，方块变灰，显示 Game Over
func (s *GameFlowSystem) enterDying() {
	state := s.State()
	state.Phase = components.PhaseDying
	state.MovingSpeed = 0
	state.Message = s.cfg.Messages.GameOver
	s.physics.StopVertical()
	s.cube().Tint = components.CubeTintDead

	s.hooks.showMessage(state.Message)
	s.hooks.playSound(SoundCrash)
	log.Printf("[GameFlow] 撞击，得分 %d", state.Score)
}

// land 方块停止下落，进入等待重开阶段
func (s *GameFlowSystem) land() {
	state := s.State()
	cube := s.cube()
	cube.Landed = true
	cube.Tint = components.CubeTintGameOver
	state.Phase = components.PhaseWaitingToRestart
	if prompt := s.cfg.Messages.RestartPrompt; prompt != "" && prompt != state.Message {
		state.Message = prompt
		s.hooks.showMessage(state.Message)
	}

	s.hooks.recordScore(state.Score)
	log.Printf("[GameFlow] 方块落地，等待重新开始")
}

// Restart 重置方块、障碍物、分数、速度与标志，直接进入 Playing
func (s *GameFlowSystem) Restart() {
	state := s.State()
	cube := s.cube()

	s.physics.Reset()
	cube.Tint = components.CubeTintAlive
	cube.Landed = false

	s.pool.Reset()
	s.collision.ResetScoringTimer()

	state.MovingSpeed = s.cfg.Obstacle.MovingSpeed
	state.Score = 0
	state.Message = s.cfg.Messages.Restart
	state.Phase = components.PhasePlaying
	state.Rounds++

	s.hooks.showScore(state.Score)
	s.hooks.showMessage(state.Message)
	log.Printf("[GameFlow] 重新开始 (round %d)", state.Rounds)
}
