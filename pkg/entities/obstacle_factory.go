package entities

import (
	"fmt"

	"github.com/decker502/flappycube/pkg/components"
	"github.com/decker502/flappycube/pkg/config"
	"github.com/decker502/flappycube/pkg/ecs"
)

// NewObstacleEntity 创建一个障碍物（上下两根柱子）实体
//
// 参数:
//   - em: 实体管理器
//   - cfg: 玩法配置（柱子宽高、间隙高度）
//   - slot: 在障碍物池中的位置
//   - x: 水平位置
//   - gapY: 间隙中心 Y 坐标
func NewObstacleEntity(
	em *ecs.EntityManager,
	cfg *config.GameplayConfig,
	slot int,
	x, gapY float64,
) (ecs.EntityID, error) {
	if em == nil {
		return 0, fmt.Errorf("entity manager cannot be nil")
	}
	if cfg == nil {
		return 0, fmt.Errorf("gameplay config cannot be nil")
	}
	if slot < 0 {
		return 0, fmt.Errorf("invalid obstacle slot %d", slot)
	}

	entityID := em.CreateEntity()

	// 与方块处于同一深度
	em.AddComponent(entityID, &components.PositionComponent{
		X: x,
		Y: gapY,
		Z: cfg.Field.Depth / 2,
	})
	em.AddComponent(entityID, &components.CollisionComponent{
		Width:  cfg.Obstacle.Width,
		Height: cfg.Obstacle.ColumnHeight,
	})
	em.AddComponent(entityID, &components.ObstacleComponent{
		Slot:       slot,
		Interspace: cfg.Obstacle.Interspace,
	})

	return entityID, nil
}
