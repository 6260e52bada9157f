package world

import (
	"log"

	"github.com/decker502/resourcerun/pkg/ecs"
	"github.com/decker502/resourcerun/pkg/types"
)

// WorldRegistry 格子到世界物体实体的映射
//
// 物体的生命周期由 EntityManager 管理，注册表只保存 EntityID。
// 一个物体可以占用多个格子，销毁任意一个格子时整个物体被销毁，
// 其占用的所有格子同时解除注册。
type WorldRegistry struct {
	entityManager *ecs.EntityManager
	cells         map[types.GridPosition]ecs.EntityID
	entityCells   map[ecs.EntityID][]types.GridPosition
}

// NewWorldRegistry 创建世界物体注册表
func NewWorldRegistry(em *ecs.EntityManager) *WorldRegistry {
	return &WorldRegistry{
		entityManager: em,
		cells:         make(map[types.GridPosition]ecs.EntityID),
		entityCells:   make(map[ecs.EntityID][]types.GridPosition),
	}
}

// RegisterAt 将格子 (x, y) 关联到实体
// 若该格子已关联其他实体，旧关联被覆盖
func (r *WorldRegistry) RegisterAt(x, y int, id ecs.EntityID) {
	pos := types.GridPosition{X: x, Y: y}
	if old, ok := r.cells[pos]; ok {
		if old == id {
			return
		}
		r.forgetCell(old, pos)
	}
	r.cells[pos] = id
	r.entityCells[id] = append(r.entityCells[id], pos)
}

// At 返回格子上注册的实体
func (r *WorldRegistry) At(x, y int) (ecs.EntityID, bool) {
	id, ok := r.cells[types.GridPosition{X: x, Y: y}]
	return id, ok
}

// DestroyAt 销毁格子 (x, y) 上的物体
// 返回是否有物体被销毁
func (r *WorldRegistry) DestroyAt(x, y int) bool {
	id, ok := r.At(x, y)
	if !ok {
		return false
	}
	r.Destroy(id)
	return true
}

// Destroy 销毁实体并解除其所有格子的注册
func (r *WorldRegistry) Destroy(id ecs.EntityID) {
	for _, pos := range r.entityCells[id] {
		if r.cells[pos] == id {
			delete(r.cells, pos)
		}
	}
	delete(r.entityCells, id)
	r.entityManager.DestroyEntity(id)
}

// Clear 销毁所有已注册的物体
func (r *WorldRegistry) Clear() {
	count := len(r.entityCells)
	for id := range r.entityCells {
		r.entityManager.DestroyEntity(id)
	}
	clear(r.cells)
	clear(r.entityCells)
	if count > 0 {
		log.Printf("[WorldRegistry] Cleared %d world objects", count)
	}
}

// Len 返回已注册格子数量
func (r *WorldRegistry) Len() int {
	return len(r.cells)
}

// ObjectCount 返回已注册物体数量
func (r *WorldRegistry) ObjectCount() int {
	return len(r.entityCells)
}

// Cells 返回实体占用的格子
func (r *WorldRegistry) Cells(id ecs.EntityID) []types.GridPosition {
	return r.entityCells[id]
}

func (r *WorldRegistry) forgetCell(id ecs.EntityID, pos types.GridPosition) {
	cells := r.entityCells[id]
	for i, c := range cells {
		if c == pos {
			r.entityCells[id] = append(cells[:i], cells[i+1:]...)
			break
		}
	}
	if len(r.entityCells[id]) == 0 {
		delete(r.entityCells, id)
	}
}
