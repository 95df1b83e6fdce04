package entities

import (
	"fmt"

	"github.com/decker502/flappycube/pkg/components"
	"github.com/decker502/flappycube/pkg/config"
	"github.com/decker502/flappycube/pkg/ecs"
)

// NewCubeEntity 创建玩家方块实体
//
// 方块位于场地左侧 1/3 处（cfg.Cube.X），Y=0，初始下落速度为 InitialFallSpeed。
//
// 参数:
//   - em: 实体管理器
//   - cfg: 玩法配置
//
// 返回:
//   - ecs.EntityID: 方块实体ID
//   - error: 参数无效时返回错误
func NewCubeEntity(em *ecs.EntityManager, cfg *config.GameplayConfig) (ecs.EntityID, error) {
	if em == nil {
		return 0, fmt.Errorf("entity manager cannot be nil")
	}
	if cfg == nil {
		return 0, fmt.Errorf("gameplay config cannot be nil")
	}

	entityID := em.CreateEntity()

	em.AddComponent(entityID, &components.PositionComponent{
		X: cfg.Cube.X,
		Y: 0,
		Z: cfg.Field.Depth / 2,
	})
	em.AddComponent(entityID, &components.VelocityComponent{
		VY: cfg.Physics.InitialFallSpeed,
	})
	em.AddComponent(entityID, &components.CollisionComponent{
		Width:  cfg.Cube.Size,
		Height: cfg.Cube.Size,
	})
	em.AddComponent(entityID, &components.CubeComponent{
		Tint: components.CubeTintAlive,
	})

	return entityID, nil
}
