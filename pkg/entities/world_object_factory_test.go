package entities

import (
	"testing"

	"github.com/decker502/resourcerun/pkg/components"
	"github.com/decker502/resourcerun/pkg/config"
	"github.com/decker502/resourcerun/pkg/ecs"
	"github.com/decker502/resourcerun/pkg/types"
	"github.com/decker502/resourcerun/pkg/world"
)

var _ world.ObjectSpawner = (*WorldObjectFactory)(nil)

func TestWorldObjectFactorySpawnObject(t *testing.T) {
	em := ecs.NewEntityManager()
	factory := NewWorldObjectFactory(em, nil)
	factory.SetSeason("autumn")

	group := &config.ObjectGroup{Name: "trees", BasePrefab: "tree", LootMultiplier: 2}
	variant := &config.ObjectVariant{
		Weight:       1,
		Sprite:       "oak",
		Color:        "#102030",
		ColliderSize: types.Vec2{X: 0.6, Y: 0.6},
		LootTable:    "wood",
	}
	cells := []types.GridPosition{{X: 3, Y: 4}, {X: 3, Y: 5}}

	id := factory.SpawnObject(group, variant, types.Vec2{X: 3.5, Y: 4.5}, cells)

	pos, ok := ecs.GetComponent[*components.PositionComponent](em, id)
	if !ok || pos.X != 3.5 || pos.Y != 4.5 {
		t.Errorf("Unexpected position %+v", pos)
	}

	obj, ok := ecs.GetComponent[*components.WorldObjectComponent](em, id)
	if !ok {
		t.Fatal("WorldObjectComponent missing")
	}
	if obj.Group != "trees" || obj.Prefab != "tree" || obj.Season != "autumn" || len(obj.Cells) != 2 {
		t.Errorf("Unexpected world object %+v", obj)
	}

	// 修改传入切片不影响组件
	cells[0].X = 99
	if obj.Cells[0].X != 3 {
		t.Error("Cells should be copied")
	}

	if !ecs.HasComponent[*components.CollisionComponent](em, id) {
		t.Error("Variant with collider size should get a collision component")
	}

	gatherable, ok := ecs.GetComponent[*components.GatherableComponent](em, id)
	if !ok || gatherable.LootTable != "wood" || gatherable.LootMultiplier != 2 {
		t.Errorf("Unexpected gatherable %+v", gatherable)
	}

	sprite, _ := ecs.GetComponent[*components.SpriteComponent](em, id)
	if sprite.Color.R != 0x10 || sprite.Color.G != 0x20 || sprite.Color.B != 0x30 {
		t.Errorf("Unexpected sprite color %v", sprite.Color)
	}
}

func TestWorldObjectFactoryDecorative(t *testing.T) {
	em := ecs.NewEntityManager()
	factory := NewWorldObjectFactory(em, nil)

	id := factory.SpawnObject(
		&config.ObjectGroup{Name: "flowers"},
		&config.ObjectVariant{Weight: 1, Sprite: "daisy"},
		types.Vec2{X: 1.5, Y: 1.5},
		[]types.GridPosition{{X: 1, Y: 1}},
	)

	if ecs.HasComponent[*components.CollisionComponent](em, id) {
		t.Error("Decorative object should not block movement")
	}
	if ecs.HasComponent[*components.GatherableComponent](em, id) {
		t.Error("Object without loot table should not be gatherable")
	}
	sprite, _ := ecs.GetComponent[*components.SpriteComponent](em, id)
	if sprite.Color != defaultObjectColor {
		t.Errorf("Expected default color, got %v", sprite.Color)
	}
}
