package systems

import (
	"github.com/decker502/flappycube/pkg/components"
	"github.com/decker502/flappycube/pkg/config"
	"github.com/decker502/flappycube/pkg/ecs"
)

// CollisionResult 一帧碰撞检测的结果
type CollisionResult struct {
	// Scored 本帧是否得分
	Scored bool
	// MilestoneChanged 得分后提示文本是否变化
	MilestoneChanged bool
	// Crashed 方块是否撞上柱子
	Crashed bool
}

// CollisionSystem 计分与碰撞检测
//
// 游戏进行中逐个障碍物检查：方块是否越过障碍物（计分）、是否撞上柱子（死亡）。
// 死亡后的下落阶段检查方块是否落在下柱顶部。
type CollisionSystem struct {
	em         *ecs.EntityManager
	cfg        *config.GameplayConfig
	pool       *ObstaclePoolSystem
	cubeEntity ecs.EntityID
	gameEntity ecs.EntityID
}

// NewCollisionSystem 创建碰撞系统
func NewCollisionSystem(
	em *ecs.EntityManager,
	cfg *config.GameplayConfig,
	pool *ObstaclePoolSystem,
	cubeEntity, gameEntity ecs.EntityID,
) *CollisionSystem {
	return &CollisionSystem{
		em:         em,
		cfg:        cfg,
		pool:       pool,
		cubeEntity: cubeEntity,
		gameEntity: gameEntity,
	}
}

// AdvanceScoringTimer 推进计分冷却计时器
func (cs *CollisionSystem) AdvanceScoringTimer(deltaTime float64) {
	timer := ecs.MustGetComponent[*components.TimerComponent](cs.em, cs.gameEntity)
	timer.Advance(deltaTime)
}

// ResetScoringTimer 重开时把计分冷却置为完成状态
func (cs *CollisionSystem) ResetScoringTimer() {
	timer := ecs.MustGetComponent[*components.TimerComponent](cs.em, cs.gameEntity)
	timer.TargetTime = cs.cfg.ScoringTimeInterval()
	timer.Fill()
}

// DetectPlaying 游戏进行中的一帧检测（障碍物已经完成本帧平移）
func (cs *CollisionSystem) DetectPlaying() CollisionResult {
	var result CollisionResult
	for _, id := range cs.pool.Obstacles() {
		if cs.checkScore(id) {
			result.Scored = true
			if cs.applyScore() {
				result.MilestoneChanged = true
			}
		}
		if cs.IsCrash(id) {
			result.Crashed = true
			break
		}
	}
	return result
}

// PassesScoringLine 障碍物的计分线是否落在方块水平范围内
//
// scoringPositionX = obstacle.x + obstacleWidth/2 + cubeSize
func (cs *CollisionSystem) PassesScoringLine(obstacleID ecs.EntityID) bool {
	cubePos, cubeCol := cs.cube()
	obPos := ecs.MustGetComponent[*components.PositionComponent](cs.em, obstacleID)
	obCol := ecs.MustGetComponent[*components.CollisionComponent](cs.em, obstacleID)

	scoringX := obPos.X + obCol.Width/2 + cubeCol.Width
	return scoringX >= cubePos.X-cubeCol.Width/2 && scoringX <= cubePos.X+cubeCol.Width/2
}

func (cs *CollisionSystem) checkScore(obstacleID ecs.EntityID) bool {
	if !cs.PassesScoringLine(obstacleID) {
		return false
	}
	// 冷却状态由 AdvanceScoringTimer 在本帧检测前刷新
	timer := ecs.MustGetComponent[*components.TimerComponent](cs.em, cs.gameEntity)
	return timer.IsReady
}

// applyScore 加一分并重置冷却，返回提示文本是否变化
func (cs *CollisionSystem) applyScore() bool {
	timer := ecs.MustGetComponent[*components.TimerComponent](cs.em, cs.gameEntity)
	timer.Reset()

	state := ecs.MustGetComponent[*components.GameStateComponent](cs.em, cs.gameEntity)
	state.Score++

	message, ok := cs.cfg.MilestoneMessage(state.Score)
	if !ok || message == state.Message {
		return false
	}
	state.Message = message
	return true
}

// IsCrash 方块是否与障碍物的柱子重叠
//
// 方块 X 在 [obstacle.x - w/2 - size/2, obstacle.x + w/2 + size/2] 内，
// 且 Y 不在安全带 (gapBottom + size/2, gapTop - size/2) 内。
func (cs *CollisionSystem) IsCrash(obstacleID ecs.EntityID) bool {
	cubePos, cubeCol := cs.cube()
	obPos := ecs.MustGetComponent[*components.PositionComponent](cs.em, obstacleID)
	obCol := ecs.MustGetComponent[*components.CollisionComponent](cs.em, obstacleID)
	obstacle := ecs.MustGetComponent[*components.ObstacleComponent](cs.em, obstacleID)

	reach := obCol.Width/2 + cubeCol.Width/2
	if cubePos.X > obPos.X+reach || cubePos.X < obPos.X-reach {
		return false
	}

	safeTop := obstacle.GapTop(obPos.Y) - cubeCol.Height/2
	safeBottom := obstacle.GapBottom(obPos.Y) + cubeCol.Height/2
	inGap := cubePos.Y < safeTop && cubePos.Y > safeBottom
	return !inGap
}

// SettleOnObstacles 下落阶段：方块落到下柱顶部时停在顶部
//
// 水平方向使用 size/3 作为左右边距，比碰撞检测更窄，视觉上更自然。
//
// 返回:
//   - bool: 方块是否已落在某根柱子上
func (cs *CollisionSystem) SettleOnObstacles() bool {
	cubePos, cubeCol := cs.cube()
	for _, id := range cs.pool.Obstacles() {
		obPos := ecs.MustGetComponent[*components.PositionComponent](cs.em, id)
		obCol := ecs.MustGetComponent[*components.CollisionComponent](cs.em, id)
		obstacle := ecs.MustGetComponent[*components.ObstacleComponent](cs.em, id)

		reach := obCol.Width/2 + cubeCol.Width/3
		if cubePos.X >= obPos.X+reach || cubePos.X <= obPos.X-reach {
			continue
		}

		restY := obstacle.GapBottom(obPos.Y) + cubeCol.Height/2
		if cubePos.Y < restY {
			cubePos.Y = restY
			return true
		}
	}
	return false
}

func (cs *CollisionSystem) cube() (*components.PositionComponent, *components.CollisionComponent) {
	return ecs.MustGetComponent[*components.PositionComponent](cs.em, cs.cubeEntity),
		ecs.MustGetComponent[*components.CollisionComponent](cs.em, cs.cubeEntity)
}
