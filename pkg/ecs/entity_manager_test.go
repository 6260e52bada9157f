package ecs

import (
	"reflect"
	"testing"
)

// 测试组件类型定义
type testTransformComponent struct {
	X, Y float64
}

type testColliderComponent struct {
	W, H float64
}

func TestCreateEntity(t *testing.T) {
	em := NewEntityManager()
	id1 := em.CreateEntity()
	id2 := em.CreateEntity()

	// 测试实体ID唯一性
	if id1 == id2 {
		t.Error("Entity IDs should be unique")
	}

	// 测试ID从1开始
	if id1 != 1 {
		t.Errorf("First entity ID should be 1, got %d", id1)
	}

	if id2 != 2 {
		t.Errorf("Second entity ID should be 2, got %d", id2)
	}
}

func TestAddAndGetComponent(t *testing.T) {
	em := NewEntityManager()
	id := em.CreateEntity()

	em.AddComponent(id, &testTransformComponent{X: 3.5, Y: 7.5})

	comp, found := em.GetComponent(id, reflect.TypeOf(&testTransformComponent{}))
	if !found {
		t.Fatal("Component should be found")
	}

	retrieved := comp.(*testTransformComponent)
	if retrieved.X != 3.5 || retrieved.Y != 7.5 {
		t.Errorf("Component data mismatch, expected (3.5, 7.5), got (%f, %f)", retrieved.X, retrieved.Y)
	}
}

func TestGenericGetComponent(t *testing.T) {
	em := NewEntityManager()
	id := em.CreateEntity()
	em.AddComponent(id, &testColliderComponent{W: 1, H: 2})

	collider, ok := GetComponent[*testColliderComponent](em, id)
	if !ok {
		t.Fatal("Generic GetComponent should find collider")
	}
	if collider.W != 1 || collider.H != 2 {
		t.Errorf("Collider mismatch: got (%f, %f)", collider.W, collider.H)
	}

	if _, ok := GetComponent[*testTransformComponent](em, id); ok {
		t.Error("Transform component should not be found")
	}

	if !HasComponent[*testColliderComponent](em, id) {
		t.Error("HasComponent should report collider")
	}
}

func TestDestroyEntity(t *testing.T) {
	em := NewEntityManager()
	id := em.CreateEntity()
	em.AddComponent(id, &testTransformComponent{})

	// 标记删除（重复标记）
	em.DestroyEntity(id)
	em.DestroyEntity(id)

	if !em.IsPendingDestroy(id) {
		t.Error("Entity should be pending destroy")
	}

	// 清理前实体仍存在
	if !em.Exists(id) {
		t.Error("Entity should still exist before cleanup")
	}

	em.RemoveMarkedEntities()
	if em.Exists(id) {
		t.Error("Entity should be removed after cleanup")
	}
	if em.IsPendingDestroy(id) {
		t.Error("Pending list should be empty after cleanup")
	}
}

func TestGetEntitiesWith(t *testing.T) {
	em := NewEntityManager()

	id1 := em.CreateEntity()
	em.AddComponent(id1, &testTransformComponent{})
	em.AddComponent(id1, &testColliderComponent{})

	id2 := em.CreateEntity()
	em.AddComponent(id2, &testTransformComponent{})

	id3 := em.CreateEntity()
	em.AddComponent(id3, &testColliderComponent{})

	both := GetEntitiesWith2[*testTransformComponent, *testColliderComponent](em)
	if len(both) != 1 || both[0] != id1 {
		t.Errorf("Expected only id1 with both components, got %v", both)
	}

	transforms := GetEntitiesWith1[*testTransformComponent](em)
	if len(transforms) != 2 {
		t.Errorf("Expected 2 entities with transform, got %d", len(transforms))
	}

	if em.EntityCount() != 3 {
		t.Errorf("Expected 3 entities, got %d", em.EntityCount())
	}
}
