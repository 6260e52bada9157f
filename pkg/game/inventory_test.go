package game

import (
	"testing"

	"github.com/decker502/resourcerun/pkg/types"
)

func TestInventoryInsert(t *testing.T) {
	t.Run("合并到已有格子", func(t *testing.T) {
		inv := NewInventory(2, 10)
		inv.Insert(types.ItemStack{Item: "log", Count: 4})
		inv.Insert(types.ItemStack{Item: "log", Count: 5})

		slots := inv.Slots()
		if slots[0].Count != 9 || !slots[1].IsEmpty() {
			t.Errorf("Expected logs merged into first slot, got %v", slots)
		}
	})

	t.Run("溢出到新格子", func(t *testing.T) {
		inv := NewInventory(3, 10)
		inv.Insert(types.ItemStack{Item: "stone", Count: 8})
		if !inv.Insert(types.ItemStack{Item: "stone", Count: 7}) {
			t.Fatal("Insert should succeed")
		}
		slots := inv.Slots()
		if slots[0].Count != 10 || slots[1].Count != 5 {
			t.Errorf("Expected 10 + 5 stones, got %v", slots)
		}
		if inv.Count("stone") != 15 {
			t.Errorf("Expected 15 stones, got %d", inv.Count("stone"))
		}
	})

	t.Run("放不下时不修改", func(t *testing.T) {
		inv := NewInventory(1, 10)
		inv.Insert(types.ItemStack{Item: "berry", Count: 6})

		if inv.Insert(types.ItemStack{Item: "berry", Count: 5}) {
			t.Error("Insert should fail when the stack does not fit")
		}
		if inv.Insert(types.ItemStack{Item: "log", Count: 1}) {
			t.Error("Insert should fail without a free slot")
		}
		if inv.Count("berry") != 6 {
			t.Errorf("Inventory should be unchanged, got %d berries", inv.Count("berry"))
		}
	})

	t.Run("空物品堆", func(t *testing.T) {
		inv := NewInventory(1, 1)
		if !inv.Insert(types.ItemStack{}) {
			t.Error("Inserting nothing always succeeds")
		}
	})
}

func TestInventoryClear(t *testing.T) {
	inv := NewInventory(2, 5)
	inv.Insert(types.ItemStack{Item: "log", Count: 3})
	inv.Clear()
	if inv.Count("log") != 0 {
		t.Error("Clear should empty all slots")
	}
}
