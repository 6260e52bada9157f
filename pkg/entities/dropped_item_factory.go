package entities

import (
	"image/color"

	"github.com/decker502/resourcerun/pkg/components"
	"github.com/decker502/resourcerun/pkg/config"
	"github.com/decker502/resourcerun/pkg/ecs"
	"github.com/decker502/resourcerun/pkg/types"
)

var droppedItemColor = color.RGBA{R: 0xe8, G: 0xc1, B: 0x5a, A: 0xff}

// NewDroppedItemEntity 创建一个掉落物实体
// 参数:
//   - em: EntityManager 实例
//   - stack: 掉落的物品堆
//   - x, y: 世界坐标
//   - cfg: 掉落物配置（存在时间）
//
// 返回: 创建的实体ID
func NewDroppedItemEntity(em *ecs.EntityManager, stack types.ItemStack, x, y float64, cfg config.DroppedItemConfig) ecs.EntityID {
	id := em.CreateEntity()

	em.AddComponent(id, &components.PositionComponent{X: x, Y: y})

	em.AddComponent(id, &components.SpriteComponent{
		Name:   stack.Item,
		Color:  droppedItemColor,
		Width:  0.5,
		Height: 0.5,
	})

	em.AddComponent(id, &components.ScaleComponent{ScaleX: 1, ScaleY: 1})

	// 浮动从缩小开始
	em.AddComponent(id, &components.DroppedItemComponent{
		Stack:        stack,
		BobShrinking: true,
	})

	em.AddComponent(id, &components.LifetimeComponent{
		MaxLifetime: cfg.DespawnTime,
	})

	return id
}
