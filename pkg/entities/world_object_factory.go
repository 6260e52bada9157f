package entities

import (
	"image/color"
	"log"

	"github.com/decker502/resourcerun/pkg/components"
	"github.com/decker502/resourcerun/pkg/config"
	"github.com/decker502/resourcerun/pkg/ecs"
	"github.com/decker502/resourcerun/pkg/types"
	"github.com/decker502/resourcerun/pkg/utils"
	"github.com/hajimehoshi/ebiten/v2"
)

// ImageLoader 图像加载接口（由 ResourceManager 实现）
type ImageLoader interface {
	LoadImage(path string) (*ebiten.Image, error)
}

// 未配置颜色时的默认占位颜色
var defaultObjectColor = color.RGBA{R: 0x3b, G: 0x5e, B: 0x2b, A: 0xff}

// WorldObjectFactory 创建世界物体实体（树、石头、灌木）
// 由物体生成步骤在放置时调用
type WorldObjectFactory struct {
	entityManager *ecs.EntityManager
	loader        ImageLoader // 可为 nil，此时只使用占位颜色
	season        string
}

// NewWorldObjectFactory 创建世界物体工厂
func NewWorldObjectFactory(em *ecs.EntityManager, loader ImageLoader) *WorldObjectFactory {
	return &WorldObjectFactory{
		entityManager: em,
		loader:        loader,
	}
}

// SetSeason 设置后续生成物体所属的季节
func (f *WorldObjectFactory) SetSeason(name string) {
	f.season = name
}

// SpawnObject 创建一个世界物体实体
// 参数:
//   - group: 物体组配置
//   - variant: 选中的变体
//   - position: 世界坐标（格中心 + 组偏移）
//   - cells: 物体占用的格子
//
// 返回: 创建的实体ID
func (f *WorldObjectFactory) SpawnObject(group *config.ObjectGroup, variant *config.ObjectVariant, position types.Vec2, cells []types.GridPosition) ecs.EntityID {
	id := f.entityManager.CreateEntity()

	f.entityManager.AddComponent(id, &components.PositionComponent{
		X: position.X,
		Y: position.Y,
	})

	sprite := &components.SpriteComponent{
		Name:   variant.Sprite,
		Color:  utils.ColorOrDefault(variant.Color, defaultObjectColor),
		Width:  1,
		Height: 1,
	}
	if variant.ColliderSize.X > 0 && variant.ColliderSize.Y > 0 {
		sprite.Width = variant.ColliderSize.X
		sprite.Height = variant.ColliderSize.Y
	}
	if f.loader != nil && variant.Sprite != "" {
		img, err := f.loader.LoadImage(variant.Sprite)
		if err != nil {
			log.Printf("[WorldObjectFactory] Failed to load sprite %s: %v", variant.Sprite, err)
		} else {
			sprite.Image = img
		}
	}
	f.entityManager.AddComponent(id, sprite)

	// 碰撞盒阻挡玩家移动
	if variant.ColliderSize.X > 0 && variant.ColliderSize.Y > 0 {
		f.entityManager.AddComponent(id, &components.CollisionComponent{
			Width:  variant.ColliderSize.X,
			Height: variant.ColliderSize.Y,
		})
	}

	f.entityManager.AddComponent(id, &components.WorldObjectComponent{
		Group:   group.Name,
		Prefab:  group.BasePrefab,
		Variant: variant.Sprite,
		Cells:   append([]types.GridPosition(nil), cells...),
		Season:  f.season,
	})

	if variant.LootTable != "" {
		f.entityManager.AddComponent(id, &components.GatherableComponent{
			LootTable:      variant.LootTable,
			LootMultiplier: group.LootMultiplier,
		})
	}

	return id
}
