package systems

import (
	"log"
	"math/rand"

	"github.com/decker502/resourcerun/pkg/components"
	"github.com/decker502/resourcerun/pkg/config"
	"github.com/decker502/resourcerun/pkg/ecs"
	"github.com/decker502/resourcerun/pkg/entities"
	"github.com/decker502/resourcerun/pkg/types"
	"github.com/decker502/resourcerun/pkg/utils"
	"github.com/decker502/resourcerun/pkg/world"
)

// GatheringSystem 采集世界物体
//
// 玩家按下交互键时，先检查面前的格子，再检查脚下的格子。
// 可采集物体按掉落表产出掉落物，然后从世界中销毁。
type GatheringSystem struct {
	entityManager *ecs.EntityManager
	registry      *world.WorldRegistry
	loot          *config.LootTableSet
	dropCfg       config.DroppedItemConfig
	rng           *rand.Rand

	// OnGathered 物体被采集后调用
	OnGathered func(group string, drops []types.ItemStack)
}

// NewGatheringSystem 创建采集系统
func NewGatheringSystem(em *ecs.EntityManager, registry *world.WorldRegistry, loot *config.LootTableSet, dropCfg config.DroppedItemConfig, rng *rand.Rand) *GatheringSystem {
	if rng == nil {
		rng = rand.New(rand.NewSource(rand.Int63()))
	}
	return &GatheringSystem{
		entityManager: em,
		registry:      registry,
		loot:          loot,
		dropCfg:       dropCfg,
		rng:           rng,
	}
}

// Update 处理玩家的交互输入
// 交互输入每帧只消费一次
func (s *GatheringSystem) Update(deltaTime float64) {
	players := ecs.GetEntitiesWith3[
		*components.PlayerComponent,
		*components.PositionComponent,
		*components.MovementInputComponent,
	](s.entityManager)

	for _, id := range players {
		input, _ := ecs.GetComponent[*components.MovementInputComponent](s.entityManager, id)
		if !input.Interact {
			continue
		}
		input.Interact = false

		player, _ := ecs.GetComponent[*components.PlayerComponent](s.entityManager, id)
		if player.Frozen {
			continue
		}
		pos, _ := ecs.GetComponent[*components.PositionComponent](s.entityManager, id)

		gx, gy := utils.WorldToGrid(pos.X, pos.Y)
		front := gx + 1
		if player.Facing == components.FacingLeft {
			front = gx - 1
		}

		if _, ok := s.Gather(front, gy); !ok {
			s.Gather(gx, gy)
		}
	}
}

// Gather 采集格子 (x, y) 上的物体
// 返回掉落的物品；格子上没有可采集物体时返回 false
func (s *GatheringSystem) Gather(x, y int) ([]types.ItemStack, bool) {
	id, ok := s.registry.At(x, y)
	if !ok || s.entityManager.IsPendingDestroy(id) {
		return nil, false
	}
	gatherable, ok := ecs.GetComponent[*components.GatherableComponent](s.entityManager, id)
	if !ok {
		return nil, false
	}

	table, found := s.loot.Find(gatherable.LootTable)
	if !found {
		log.Printf("[Gathering] Unknown loot table %s", gatherable.LootTable)
	}
	drops := entities.RollLoot(table, gatherable.LootMultiplier, s.rng)

	// 掉落物散布在物体所在格子附近
	wx, wy := utils.GridToWorld(x, y)
	if pos, ok := ecs.GetComponent[*components.PositionComponent](s.entityManager, id); ok {
		wx, wy = pos.X, pos.Y
	}
	for _, stack := range drops {
		dx := (s.rng.Float64() - 0.5) * 0.6
		dy := (s.rng.Float64() - 0.5) * 0.6
		entities.NewDroppedItemEntity(s.entityManager, stack, wx+dx, wy+dy, s.dropCfg)
	}

	group := ""
	if obj, ok := ecs.GetComponent[*components.WorldObjectComponent](s.entityManager, id); ok {
		group = obj.Group
	}

	s.registry.Destroy(id)
	log.Printf("[Gathering] Gathered %s at (%d,%d): %d drops", group, x, y, len(drops))

	if s.OnGathered != nil {
		s.OnGathered(group, drops)
	}
	return drops, true
}
