package systems

import (
	"fmt"
	"log"
	"math"
	"math/rand"
	"sort"

	"github.com/decker502/flappycube/pkg/components"
	"github.com/decker502/flappycube/pkg/config"
	"github.com/decker502/flappycube/pkg/ecs"
	"github.com/decker502/flappycube/pkg/entities"
)

// ObstaclePoolSystem 管理固定数量的障碍物
//
// 障碍物从右向左移动，越过场地左边界后被放回最右侧并重新随机间隙高度，
// 用固定大小的池子形成无限滚动的障碍物场，游戏过程中不再创建实体。
type ObstaclePoolSystem struct {
	em         *ecs.EntityManager
	cfg        *config.GameplayConfig
	rng        *rand.Rand
	gameEntity ecs.EntityID

	// obstacles 按池中位置排列，回收后顺序不变
	obstacles []ecs.EntityID
}

// NewObstaclePoolSystem 创建障碍物池并生成全部障碍物实体
//
// 障碍物按 i*Distance 排列（i 从 0 开始），保证生成时不会水平重叠。
//
// 参数:
//   - em: 实体管理器
//   - cfg: 玩法配置
//   - rng: 间隙高度随机源
//   - gameEntity: 游戏状态实体（读取当前移动速度）
func NewObstaclePoolSystem(
	em *ecs.EntityManager,
	cfg *config.GameplayConfig,
	rng *rand.Rand,
	gameEntity ecs.EntityID,
) (*ObstaclePoolSystem, error) {
	if rng == nil {
		return nil, fmt.Errorf("random source cannot be nil")
	}

	s := &ObstaclePoolSystem{
		em:         em,
		cfg:        cfg,
		rng:        rng,
		gameEntity: gameEntity,
	}

	for i := 0; i < cfg.PoolSize(); i++ {
		if _, err := entities.NewObstacleEntity(em, cfg, i, float64(i)*cfg.Obstacle.Distance, s.SampleGapY()); err != nil {
			return nil, fmt.Errorf("failed to create obstacle %d: %w", i, err)
		}
	}
	// 查询结果按创建顺序返回，即池位置顺序
	s.obstacles = em.GetEntitiesWith(
		ecs.TypeOf[*components.ObstacleComponent](),
		ecs.TypeOf[*components.PositionComponent](),
	)
	if len(s.obstacles) != cfg.PoolSize() {
		return nil, fmt.Errorf("obstacle pool expects %d obstacles, found %d", cfg.PoolSize(), len(s.obstacles))
	}

	log.Printf("[ObstaclePool] 创建 %d 个障碍物，间距 %.0f", len(s.obstacles), cfg.Obstacle.Distance)
	return s, nil
}

// Obstacles 返回池中所有障碍物实体（池位置顺序）
func (s *ObstaclePoolSystem) Obstacles() []ecs.EntityID {
	return s.obstacles
}

// SampleGapY 在 [-limit, +limit] 内均匀采样一个间隙中心高度
// limit = GapRangeFactor * (fieldHeight/2 - interspace/2)
func (s *ObstaclePoolSystem) SampleGapY() float64 {
	return (s.rng.Float64()*2 - 1) * s.cfg.GapCenterLimit()
}

// MaxX 返回当前最靠右的障碍物 X 坐标
func (s *ObstaclePoolSystem) MaxX() float64 {
	maxX := math.Inf(-1)
	for _, id := range s.obstacles {
		pos := ecs.MustGetComponent[*components.PositionComponent](s.em, id)
		if pos.X > maxX {
			maxX = pos.X
		}
	}
	return maxX
}

// Recycle 回收越过左边界的障碍物
//
// 最大 X 在回收前统一计算一次。同一帧回收多个障碍物时按当前 X 从小到大依次放到
// maxX + k*Distance（k 从 1 开始），保持原有间距。
//
// 返回:
//   - int: 本次回收的障碍物数量
func (s *ObstaclePoolSystem) Recycle() int {
	threshold := s.cfg.RecycleThresholdX()
	maxX := s.MaxX()

	var expired []*components.PositionComponent
	for _, id := range s.obstacles {
		pos := ecs.MustGetComponent[*components.PositionComponent](s.em, id)
		if pos.X < threshold {
			expired = append(expired, pos)
		}
	}
	if len(expired) == 0 {
		return 0
	}

	sort.SliceStable(expired, func(i, j int) bool {
		return expired[i].X < expired[j].X
	})
	for k, pos := range expired {
		pos.X = maxX + float64(k+1)*s.cfg.Obstacle.Distance
		pos.Y = s.SampleGapY()
	}

	return len(expired)
}

// Advance 按当前移动速度将所有障碍物向左平移
func (s *ObstaclePoolSystem) Advance(deltaTime float64) {
	state := ecs.MustGetComponent[*components.GameStateComponent](s.em, s.gameEntity)
	translation := state.MovingSpeed * deltaTime
	if translation == 0 {
		return
	}
	for _, id := range s.obstacles {
		pos := ecs.MustGetComponent[*components.PositionComponent](s.em, id)
		pos.X -= translation
	}
}

// Update 先回收再平移，与逐个障碍物"检查回收 -> 平移"的顺序等价
func (s *ObstaclePoolSystem) Update(deltaTime float64) {
	s.Recycle()
	s.Advance(deltaTime)
}

// Reset 重新开局：保持障碍物从左到右的相对顺序，从 X=0 起按 Distance 连续排列，
// 并重新随机所有间隙高度
func (s *ObstaclePoolSystem) Reset() {
	ordered := make([]*components.PositionComponent, 0, len(s.obstacles))
	for _, id := range s.obstacles {
		ordered = append(ordered, ecs.MustGetComponent[*components.PositionComponent](s.em, id))
	}
	sort.SliceStable(ordered, func(i, j int) bool {
		return ordered[i].X < ordered[j].X
	})
	for i, pos := range ordered {
		pos.X = float64(i) * s.cfg.Obstacle.Distance
		pos.Y = s.SampleGapY()
	}
}
