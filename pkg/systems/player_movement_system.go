package systems

import (
	"errors"
	"log"

	"github.com/decker502/resourcerun/pkg/components"
	"github.com/decker502/resourcerun/pkg/config"
	"github.com/decker502/resourcerun/pkg/ecs"
	"github.com/decker502/resourcerun/pkg/utils"
	"github.com/decker502/resourcerun/pkg/world"
)

const (
	// 体力必须高于 Min + sprintThreshold 才能冲刺
	sprintThreshold = 0.1
	// 坠落动画每步间隔（秒）
	fallStepInterval = 0.01
	// 缩小到该比例时坠落结束
	fallEndScale = 0.25
	// 浮点累计误差容限
	timeEpsilon = 1e-9
	// 玩家碰撞半宽，贴住边界时中心停在边界内这么远
	playerHalfExtent = 0.4
)

// SeasonAdvancer 推进到下一个季节（由 world.Generator 实现）
type SeasonAdvancer interface {
	GenerateNextSeason() error
	SpawnPoint() (x, y float64)
}

// PlayerMovementSystem 玩家移动、体力和坠落
//
// 三种移动方式：普通（WASD）、慢速（Shift）、冲刺（Ctrl，消耗体力）。
// 玩家踩到没有瓦片的格子时冻结并播放缩小动画，动画结束后推进季节；
// 最后一个季节之后再坠落则游戏结束。
type PlayerMovementSystem struct {
	entityManager *ecs.EntityManager
	cfg           config.PlayerConfig
	tiles         world.TileStore
	borders       *world.BorderColliders
	advancer      SeasonAdvancer

	// OnFall 玩家开始坠落时调用
	OnFall func(id ecs.EntityID)
	// OnSeasonAdvanced 坠落后成功进入下一季节时调用
	OnSeasonAdvanced func()
	// OnGameOver 没有下一个季节时调用
	OnGameOver func()
}

// NewPlayerMovementSystem 创建玩家移动系统
func NewPlayerMovementSystem(em *ecs.EntityManager, cfg config.PlayerConfig, tiles world.TileStore, borders *world.BorderColliders, advancer SeasonAdvancer) *PlayerMovementSystem {
	return &PlayerMovementSystem{
		entityManager: em,
		cfg:           cfg,
		tiles:         tiles,
		borders:       borders,
		advancer:      advancer,
	}
}

// Update 更新所有玩家实体
func (s *PlayerMovementSystem) Update(deltaTime float64) {
	entities := ecs.GetEntitiesWith3[
		*components.PlayerComponent,
		*components.PositionComponent,
		*components.StaminaComponent,
	](s.entityManager)

	for _, id := range entities {
		player, _ := ecs.GetComponent[*components.PlayerComponent](s.entityManager, id)
		pos, _ := ecs.GetComponent[*components.PositionComponent](s.entityManager, id)
		stamina, _ := ecs.GetComponent[*components.StaminaComponent](s.entityManager, id)
		vel, ok := ecs.GetComponent[*components.VelocityComponent](s.entityManager, id)
		if !ok {
			continue
		}
		input, ok := ecs.GetComponent[*components.MovementInputComponent](s.entityManager, id)
		if !ok {
			input = &components.MovementInputComponent{}
		}

		if player.Fall == components.FallShrinking {
			vel.VX, vel.VY = 0, 0
			s.updateFall(id, player, pos, deltaTime)
			continue
		}

		s.handleMovement(player, pos, vel, stamina, input, deltaTime)
		s.handleFall(id, player, pos, vel)
	}
}

// handleMovement 根据输入选择速度、结算体力并移动
func (s *PlayerMovementSystem) handleMovement(player *components.PlayerComponent, pos *components.PositionComponent, vel *components.VelocityComponent, stamina *components.StaminaComponent, input *components.MovementInputComponent, dt float64) {
	if player.Frozen {
		vel.VX, vel.VY = 0, 0
		player.Sprinting = false
		return
	}

	sprinted := false
	var speed float64
	switch {
	case input.Slow:
		speed = s.cfg.ShiftSpeed
	case input.Sprint && stamina.Current > stamina.Min+sprintThreshold:
		stamina.Current -= s.cfg.StaminaConsumption * dt
		speed = s.cfg.SprintSpeed
		sprinted = true
	default:
		speed = s.cfg.MovementSpeed
	}

	if !sprinted {
		stamina.Current = utils.Clamp(stamina.Current+s.cfg.StaminaRegeneration*dt, 0, stamina.Max)
	}
	if stamina.Max > 0 {
		stamina.Fill = utils.Clamp(stamina.Current/stamina.Max, 0, 1)
	}
	player.Sprinting = sprinted

	vel.VX = input.Horizontal * speed
	vel.VY = input.Vertical * speed

	if vel.VX > 0 {
		player.Facing = components.FacingRight
	} else if vel.VX < 0 {
		player.Facing = components.FacingLeft
	}

	// 按轴移动，被物体挡住的轴保持不动
	if nx := pos.X + vel.VX*dt; !s.blocked(nx, pos.Y) {
		pos.X = nx
	}
	if ny := pos.Y + vel.VY*dt; !s.blocked(pos.X, ny) {
		pos.Y = ny
	}

	if s.borders != nil {
		pos.X, pos.Y = s.borders.ClampInset(pos.X, pos.Y, playerHalfExtent)
	}
}

// blocked 检查 (x, y) 是否落在某个世界物体的碰撞盒内
func (s *PlayerMovementSystem) blocked(x, y float64) bool {
	obstacles := ecs.GetEntitiesWith3[
		*components.WorldObjectComponent,
		*components.CollisionComponent,
		*components.PositionComponent,
	](s.entityManager)

	for _, id := range obstacles {
		if s.entityManager.IsPendingDestroy(id) {
			continue
		}
		collider, _ := ecs.GetComponent[*components.CollisionComponent](s.entityManager, id)
		pos, _ := ecs.GetComponent[*components.PositionComponent](s.entityManager, id)
		minX, minY, maxX, maxY := collider.Bounds(pos.X, pos.Y)
		if x > minX && x < maxX && y > minY && y < maxY {
			return true
		}
	}
	return false
}

// handleFall 检查脚下是否有瓦片，没有则开始坠落
func (s *PlayerMovementSystem) handleFall(id ecs.EntityID, player *components.PlayerComponent, pos *components.PositionComponent, vel *components.VelocityComponent) {
	if player.Immune {
		return
	}

	gx, gy := utils.WorldToGrid(pos.X, pos.Y)
	if s.tiles.GetTile(gx, gy) != "" {
		return
	}

	log.Printf("[PlayerMovement] Player stepped on a missing tile at x=%d; y=%d", gx, gy)

	player.Frozen = true
	player.Immune = true
	player.Fall = components.FallShrinking
	player.FallTimer = 0
	player.Sprinting = false
	pos.X, pos.Y = utils.GridToWorld(gx, gy)
	vel.VX, vel.VY = 0, 0

	// 先缩小一步再开始计时
	if scale, ok := ecs.GetComponent[*components.ScaleComponent](s.entityManager, id); ok {
		scale.Set(scale.ScaleX - fallStepInterval*s.cfg.FallSpeed)
	}

	if s.OnFall != nil {
		s.OnFall(id)
	}
}

// updateFall 推进坠落缩小动画
func (s *PlayerMovementSystem) updateFall(id ecs.EntityID, player *components.PlayerComponent, pos *components.PositionComponent, dt float64) {
	scale, ok := ecs.GetComponent[*components.ScaleComponent](s.entityManager, id)
	if !ok {
		s.finishFall(player, pos, nil)
		return
	}

	player.FallTimer += dt
	for scale.ScaleX > fallEndScale && player.FallTimer+timeEpsilon >= fallStepInterval {
		player.FallTimer -= fallStepInterval
		scale.Set(scale.ScaleX - fallStepInterval*s.cfg.FallSpeed)
	}

	if scale.ScaleX <= fallEndScale {
		s.finishFall(player, pos, scale)
	}
}

// finishFall 坠落动画结束：推进季节或结束游戏
func (s *PlayerMovementSystem) finishFall(player *components.PlayerComponent, pos *components.PositionComponent, scale *components.ScaleComponent) {
	player.Fall = components.FallNone
	player.FallTimer = 0

	err := s.advancer.GenerateNextSeason()
	if err != nil {
		if errors.Is(err, world.ErrSeasonsExhausted) {
			log.Printf("[PlayerMovement] Fell after the last season, game over")
		} else {
			log.Printf("[PlayerMovement] Failed to generate next season: %v", err)
		}
		if s.OnGameOver != nil {
			s.OnGameOver()
		}
		return
	}

	if scale != nil {
		scale.Set(1)
	}
	pos.X, pos.Y = s.advancer.SpawnPoint()
	player.Frozen = false
	player.Immune = false

	if s.OnSeasonAdvanced != nil {
		s.OnSeasonAdvanced()
	}
}
