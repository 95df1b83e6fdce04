package entities

import (
	"fmt"

	"github.com/decker502/flappycube/pkg/components"
	"github.com/decker502/flappycube/pkg/config"
	"github.com/decker502/flappycube/pkg/ecs"
)

// ScoringTimerName 计分冷却计时器名称
const ScoringTimerName = "scoring"

// NewGameStateEntity 创建唯一的游戏状态实体
//
// 实体携带 GameStateComponent 和计分冷却 TimerComponent。
// 计分冷却初始即为完成状态，第一根柱子可以立即计分。
func NewGameStateEntity(em *ecs.EntityManager, cfg *config.GameplayConfig) (ecs.EntityID, error) {
	if em == nil {
		return 0, fmt.Errorf("entity manager cannot be nil")
	}
	if cfg == nil {
		return 0, fmt.Errorf("gameplay config cannot be nil")
	}

	entityID := em.CreateEntity()

	em.AddComponent(entityID, &components.GameStateComponent{
		Phase:       components.PhaseWaitingToStart,
		Message:     cfg.Messages.Start,
		MovingSpeed: cfg.Obstacle.MovingSpeed,
	})

	timer := &components.TimerComponent{
		Name:       ScoringTimerName,
		TargetTime: cfg.ScoringTimeInterval(),
	}
	timer.Fill()
	em.AddComponent(entityID, timer)

	return entityID, nil
}
