package systems

import (
	"fmt"
	"log"
	"math/rand"

	"github.com/decker502/flappycube/pkg/components"
	"github.com/decker502/flappycube/pkg/config"
	"github.com/decker502/flappycube/pkg/ecs"
	"github.com/decker502/flappycube/pkg/entities"
)

// GameLoop 组装实体与系统，每帧由宿主（ebiten、终端）调用一次 Tick
//
// GameLoop 独占所有实体，只在单线程中使用。
type GameLoop struct {
	em  *ecs.EntityManager
	cfg *config.GameplayConfig

	gameEntity ecs.EntityID
	cubeEntity ecs.EntityID

	pool      *ObstaclePoolSystem
	physics   *PhysicsSystem
	collision *CollisionSystem
	flow      *GameFlowSystem
}

// NewGameLoop 创建游戏循环
//
// 参数:
//   - cfg: 玩法配置（会先校验）
//   - rng: 间隙高度随机源
//   - hooks: 显示、音效、成绩记录等外部协作者
func NewGameLoop(cfg *config.GameplayConfig, rng *rand.Rand, hooks Hooks) (*GameLoop, error) {
	if cfg == nil {
		return nil, fmt.Errorf("gameplay config cannot be nil")
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid gameplay config: %w", err)
	}

	em := ecs.NewEntityManager()

	gameEntity, err := entities.NewGameStateEntity(em, cfg)
	if err != nil {
		return nil, err
	}
	cubeEntity, err := entities.NewCubeEntity(em, cfg)
	if err != nil {
		return nil, err
	}
	pool, err := NewObstaclePoolSystem(em, cfg, rng, gameEntity)
	if err != nil {
		return nil, err
	}

	physics := NewPhysicsSystem(em, cfg, cubeEntity)
	collision := NewCollisionSystem(em, cfg, pool, cubeEntity, gameEntity)
	flow := NewGameFlowSystem(em, cfg, gameEntity, cubeEntity, pool, physics, collision, hooks)
	log.Printf("[GameLoop] 初始化完成，实体数量: %d", em.EntityCount())

	loop := &GameLoop{
		em:         em,
		cfg:        cfg,
		gameEntity: gameEntity,
		cubeEntity: cubeEntity,
		pool:       pool,
		physics:    physics,
		collision:  collision,
		flow:       flow,
	}

	state := flow.State()
	hooks.showScore(state.Score)
	hooks.showMessage(state.Message)

	return loop, nil
}

// Tick 推进一帧
//
// 帧间隔由宿主决定且不固定，所有运动都按 deltaTime 缩放。
// deltaTime 超过 MaxDeltaTime 时截断；input 为 nil 视为未按键。
func (l *GameLoop) Tick(deltaTime float64, input InputSource) {
	if deltaTime > l.cfg.Physics.MaxDeltaTime {
		deltaTime = l.cfg.Physics.MaxDeltaTime
	}
	flap := input != nil && input.FlapPressed()
	l.flow.Update(deltaTime, flap)
}

// Config 返回玩法配置
func (l *GameLoop) Config() *config.GameplayConfig {
	return l.cfg
}

// Phase 当前游戏阶段
func (l *GameLoop) Phase() components.GamePhase {
	return l.flow.State().Phase
}

// Score 当前得分
func (l *GameLoop) Score() int {
	return l.flow.State().Score
}

// Message 当前提示文本
func (l *GameLoop) Message() string {
	return l.flow.State().Message
}

// CubeView 渲染用的方块快照
type CubeView struct {
	X, Y, Z float64
	Size    float64
	Tint    components.CubeTint
}

// ObstacleView 渲染用的障碍物快照
type ObstacleView struct {
	X            float64
	GapY         float64
	Width        float64
	ColumnHeight float64
	Interspace   float64
	// UpperColumnY / LowerColumnY 上下柱中心 Y
	UpperColumnY float64
	LowerColumnY float64
}

// Frame 渲染边界：一帧中渲染器需要的全部数据
type Frame struct {
	Phase     components.GamePhase
	Score     int
	Message   string
	Cube      CubeView
	Obstacles []ObstacleView
}

// Snapshot 生成当前帧的只读快照
func (l *GameLoop) Snapshot() Frame {
	state := l.flow.State()
	cubePos := ecs.MustGetComponent[*components.PositionComponent](l.em, l.cubeEntity)
	cubeCol := ecs.MustGetComponent[*components.CollisionComponent](l.em, l.cubeEntity)
	cube := ecs.MustGetComponent[*components.CubeComponent](l.em, l.cubeEntity)

	frame := Frame{
		Phase:   state.Phase,
		Score:   state.Score,
		Message: state.Message,
		Cube: CubeView{
			X:    cubePos.X,
			Y:    cubePos.Y,
			Z:    cubePos.Z,
			Size: cubeCol.Width,
			Tint: cube.Tint,
		},
		Obstacles: make([]ObstacleView, 0, len(l.pool.Obstacles())),
	}

	for _, id := range l.pool.Obstacles() {
		pos := ecs.MustGetComponent[*components.PositionComponent](l.em, id)
		col := ecs.MustGetComponent[*components.CollisionComponent](l.em, id)
		obstacle := ecs.MustGetComponent[*components.ObstacleComponent](l.em, id)
		frame.Obstacles = append(frame.Obstacles, ObstacleView{
			X:            pos.X,
			GapY:         pos.Y,
			Width:        col.Width,
			ColumnHeight: col.Height,
			Interspace:   obstacle.Interspace,
			UpperColumnY: obstacle.UpperColumnCenterY(pos.Y, col.Height),
			LowerColumnY: obstacle.LowerColumnCenterY(pos.Y, col.Height),
		})
	}

	return frame
}
