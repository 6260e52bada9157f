package game

import (
	"log"

	"github.com/decker502/resourcerun/pkg/types"
)

// Inventory 玩家背包
//
// 固定数量的格子，相同物品优先合并到已有格子，每格不超过 MaxStack。
type Inventory struct {
	slots    []types.ItemStack
	maxStack int
}

// NewInventory 创建背包
func NewInventory(slots, maxStack int) *Inventory {
	if slots < 1 {
		slots = 1
	}
	if maxStack < 1 {
		maxStack = 1
	}
	return &Inventory{
		slots:    make([]types.ItemStack, slots),
		maxStack: maxStack,
	}
}

// Insert 放入一堆物品
// 只有整堆都能放下时才会修改背包；放不下时返回 false，背包保持不变
func (inv *Inventory) Insert(stack types.ItemStack) bool {
	if stack.IsEmpty() {
		return true
	}
	if inv.capacityFor(stack.Item) < stack.Count {
		return false
	}

	remaining := stack.Count

	// 先填满已有的同类格子
	for i := range inv.slots {
		slot := &inv.slots[i]
		if slot.Item != stack.Item || slot.Count >= inv.maxStack {
			continue
		}
		n := min(inv.maxStack-slot.Count, remaining)
		slot.Count += n
		remaining -= n
		if remaining == 0 {
			break
		}
	}

	// 再占用空格子
	for i := range inv.slots {
		if remaining == 0 {
			break
		}
		slot := &inv.slots[i]
		if !slot.IsEmpty() {
			continue
		}
		n := min(inv.maxStack, remaining)
		*slot = types.ItemStack{Item: stack.Item, Count: n}
		remaining -= n
	}

	log.Printf("[Inventory] Inserted %d x %s", stack.Count, stack.Item)
	return true
}

// capacityFor 返回还能放下多少个指定物品
func (inv *Inventory) capacityFor(item string) int {
	capacity := 0
	for _, slot := range inv.slots {
		switch {
		case slot.IsEmpty():
			capacity += inv.maxStack
		case slot.Item == item:
			capacity += inv.maxStack - slot.Count
		}
	}
	return capacity
}

// Count 返回指定物品的总数量
func (inv *Inventory) Count(item string) int {
	total := 0
	for _, slot := range inv.slots {
		if slot.Item == item {
			total += slot.Count
		}
	}
	return total
}

// Slots 返回所有格子的副本（用于 HUD 显示）
func (inv *Inventory) Slots() []types.ItemStack {
	return append([]types.ItemStack(nil), inv.slots...)
}

// Clear 清空背包
func (inv *Inventory) Clear() {
	clear(inv.slots)
}
