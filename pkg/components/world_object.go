package components

import "github.com/decker502/resourcerun/pkg/types"

// WorldObjectComponent 标记由世界生成放置的物体（树、石头、灌木）
type WorldObjectComponent struct {
	Group   string               // 物体组名称
	Prefab  string               // 基础模板
	Variant string               // 变体资源名
	Cells   []types.GridPosition // 占用的格子
	Season  string               // 生成时所在季节
}

// GatherableComponent 可采集物体：被采集后按掉落表产出物品并被销毁
type GatherableComponent struct {
	LootTable      string  // 掉落表名称
	LootMultiplier float64 // 掉落倍率
}
