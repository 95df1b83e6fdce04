package systems

import (
	"math"

	"github.com/decker502/flappycube/pkg/components"
	"github.com/decker502/flappycube/pkg/config"
	"github.com/decker502/flappycube/pkg/ecs"
)

// PhysicsSystem 处理方块的垂直运动
// 负责重力积分、飞行键速度覆盖以及场地上下边界限制
type PhysicsSystem struct {
	em         *ecs.EntityManager
	cfg        *config.GameplayConfig
	cubeEntity ecs.EntityID
}

// NewPhysicsSystem 创建物理系统
//
// 参数:
//   - em: 实体管理器
//   - cfg: 玩法配置（重力、飞行速度、场地尺寸）
//   - cubeEntity: 方块实体ID
func NewPhysicsSystem(em *ecs.EntityManager, cfg *config.GameplayConfig, cubeEntity ecs.EntityID) *PhysicsSystem {
	return &PhysicsSystem{
		em:         em,
		cfg:        cfg,
		cubeEntity: cubeEntity,
	}
}

// ApplyFlap 飞行键按下时直接把速度设为上升速度（覆盖而不是累加）
func (ps *PhysicsSystem) ApplyFlap() {
	vel := ecs.MustGetComponent[*components.VelocityComponent](ps.em, ps.cubeEntity)
	vel.VY = -ps.cfg.Physics.FlySpeed
}

// StopVertical 清零垂直速度
func (ps *PhysicsSystem) StopVertical() {
	vel := ecs.MustGetComponent[*components.VelocityComponent](ps.em, ps.cubeEntity)
	vel.VY = 0
}

// Integrate 在重力作用下推进一帧
//
//	y  -= ceil(vy*dt + g*dt²/2)
//	vy += g*dt
//
// 位移向上取整，使方块按整像素移动，避免亚像素抖动。
func (ps *PhysicsSystem) Integrate(deltaTime float64) {
	if deltaTime <= 0 {
		return
	}
	pos := ecs.MustGetComponent[*components.PositionComponent](ps.em, ps.cubeEntity)
	vel := ecs.MustGetComponent[*components.VelocityComponent](ps.em, ps.cubeEntity)

	g := ps.cfg.Physics.Gravity
	pos.Y -= math.Ceil(vel.VY*deltaTime + g*deltaTime*deltaTime/2)
	vel.VY += g * deltaTime
}

// ClampFloor 方块低于地面时贴地
//
// 返回:
//   - bool: 是否触地
func (ps *PhysicsSystem) ClampFloor() bool {
	pos := ecs.MustGetComponent[*components.PositionComponent](ps.em, ps.cubeEntity)
	floor := ps.cfg.FloorY()
	if pos.Y < floor {
		pos.Y = floor
		return true
	}
	return false
}

// ClampCeiling 方块高于天花板时贴顶并清零速度，不会结束游戏
func (ps *PhysicsSystem) ClampCeiling() bool {
	pos := ecs.MustGetComponent[*components.PositionComponent](ps.em, ps.cubeEntity)
	ceiling := ps.cfg.CeilingY()
	if pos.Y > ceiling {
		pos.Y = ceiling
		ps.StopVertical()
		return true
	}
	return false
}

// Update 游戏进行中的一帧：飞行覆盖 -> 重力积分 -> 边界限制
//
// 返回:
//   - bool: 方块是否触地（触地即死亡）
func (ps *PhysicsSystem) Update(deltaTime float64, flap bool) bool {
	if deltaTime <= 0 {
		return false
	}
	if flap {
		ps.ApplyFlap()
	}
	ps.Integrate(deltaTime)
	hitFloor := ps.ClampFloor()
	ps.ClampCeiling()
	return hitFloor
}

// Reset 重开时把方块放回 Y=0，速度恢复为初始下落速度
func (ps *PhysicsSystem) Reset() {
	pos := ecs.MustGetComponent[*components.PositionComponent](ps.em, ps.cubeEntity)
	vel := ecs.MustGetComponent[*components.VelocityComponent](ps.em, ps.cubeEntity)
	pos.Y = 0
	vel.VY = ps.cfg.Physics.InitialFallSpeed
}
