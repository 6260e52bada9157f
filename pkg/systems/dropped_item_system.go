package systems

import (
	"log"
	"math"

	"github.com/decker502/resourcerun/pkg/components"
	"github.com/decker502/resourcerun/pkg/ecs"
	"github.com/decker502/resourcerun/pkg/types"
)

const (
	// 浮动动画：每 bobStepInterval 秒缩放 bobStepSize，bobStepsPerHalf 步后反向
	bobStepInterval = 0.05
	bobStepSize     = 0.01
	bobStepsPerHalf = 25
)

// ItemReceiver 接收拾取的物品（由 game.Inventory 实现）
type ItemReceiver interface {
	Insert(stack types.ItemStack) bool
}

// DroppedItemSystem 掉落物浮动动画和拾取
type DroppedItemSystem struct {
	entityManager *ecs.EntityManager
	receiver      ItemReceiver
	pickupRadius  float64

	// OnPickup 物品被拾取时调用
	OnPickup func(stack types.ItemStack)
}

// NewDroppedItemSystem 创建掉落物系统
func NewDroppedItemSystem(em *ecs.EntityManager, receiver ItemReceiver, pickupRadius float64) *DroppedItemSystem {
	return &DroppedItemSystem{
		entityManager: em,
		receiver:      receiver,
		pickupRadius:  pickupRadius,
	}
}

// Update 更新所有掉落物
func (s *DroppedItemSystem) Update(deltaTime float64) {
	playerX, playerY, hasPlayer := s.findPlayer()

	items := ecs.GetEntitiesWith2[*components.DroppedItemComponent, *components.PositionComponent](s.entityManager)
	for _, id := range items {
		if s.entityManager.IsPendingDestroy(id) {
			continue
		}
		item, _ := ecs.GetComponent[*components.DroppedItemComponent](s.entityManager, id)
		pos, _ := ecs.GetComponent[*components.PositionComponent](s.entityManager, id)

		if scale, ok := ecs.GetComponent[*components.ScaleComponent](s.entityManager, id); ok {
			s.updateBob(item, scale, deltaTime)
		}

		if hasPlayer && math.Hypot(pos.X-playerX, pos.Y-playerY) <= s.pickupRadius {
			s.tryPickup(id, item)
		}
	}
}

// findPlayer 返回可拾取物品的玩家位置（冻结中的玩家不能拾取）
func (s *DroppedItemSystem) findPlayer() (x, y float64, ok bool) {
	players := ecs.GetEntitiesWith2[*components.PlayerComponent, *components.PositionComponent](s.entityManager)
	for _, id := range players {
		player, _ := ecs.GetComponent[*components.PlayerComponent](s.entityManager, id)
		if player.Frozen {
			continue
		}
		pos, _ := ecs.GetComponent[*components.PositionComponent](s.entityManager, id)
		return pos.X, pos.Y, true
	}
	return 0, 0, false
}

// updateBob 推进浮动缩放：先缩小 25 步，再放大 25 步，循环
func (s *DroppedItemSystem) updateBob(item *components.DroppedItemComponent, scale *components.ScaleComponent, dt float64) {
	item.BobTimer += dt
	for item.BobTimer+timeEpsilon >= bobStepInterval {
		item.BobTimer -= bobStepInterval

		if item.BobShrinking {
			scale.Set(scale.ScaleX - bobStepSize)
		} else {
			scale.Set(scale.ScaleX + bobStepSize)
		}

		item.BobStep++
		if item.BobStep >= bobStepsPerHalf {
			item.BobStep = 0
			item.BobShrinking = !item.BobShrinking
		}
	}
}

// tryPickup 尝试放入背包，成功则销毁掉落物
func (s *DroppedItemSystem) tryPickup(id ecs.EntityID, item *components.DroppedItemComponent) {
	if s.receiver == nil || !s.receiver.Insert(item.Stack) {
		return
	}
	s.entityManager.DestroyEntity(id)
	log.Printf("[DroppedItem] Picked up %d x %s", item.Stack.Count, item.Stack.Item)
	if s.OnPickup != nil {
		s.OnPickup(item.Stack)
	}
}
