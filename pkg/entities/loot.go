package entities

import (
	"math"
	"math/rand"

	"github.com/decker502/resourcerun/pkg/config"
	"github.com/decker502/resourcerun/pkg/types"
	"github.com/decker502/resourcerun/pkg/utils"
)

// RollLoot 按掉落表抽取物品
//
// 共抽取 table.Rolls 次，每次按权重选出一个条目，数量在 [Min, Max] 内均匀随机，
// 再乘以物体组的掉落倍率（四舍五入，至少为 1）。相同物品合并为一堆。
// 表为空或没有条目时返回 nil。
func RollLoot(table *config.LootTable, multiplier float64, rng *rand.Rand) []types.ItemStack {
	if table == nil || len(table.Entries) == 0 {
		return nil
	}

	bag := utils.NewWeightedRandomBag[*config.LootEntry](rng)
	for i := range table.Entries {
		bag.AddEntry(&table.Entries[i], table.Entries[i].Weight)
	}
	if bag.TotalWeight() <= 0 {
		return nil
	}

	counts := make(map[string]int)
	order := make([]string, 0, table.Rolls)
	for i := 0; i < table.Rolls; i++ {
		entry := bag.GetRandom()

		count := entry.Min
		if entry.Max > entry.Min {
			count += rng.Intn(entry.Max - entry.Min + 1)
		}
		scaled := int(math.Round(float64(count) * multiplier))
		if scaled < 1 {
			scaled = 1
		}

		if _, seen := counts[entry.Item]; !seen {
			order = append(order, entry.Item)
		}
		counts[entry.Item] += scaled
	}

	stacks := make([]types.ItemStack, 0, len(order))
	for _, item := range order {
		stacks = append(stacks, types.ItemStack{Item: item, Count: counts[item]})
	}
	return stacks
}
