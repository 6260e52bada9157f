package components

import "github.com/decker502/resourcerun/pkg/types"

// DroppedItemComponent 地面上的掉落物
//
// 掉落物会上下浮动（缩放动画），玩家进入拾取半径后放入背包。
// 超时销毁由 LifetimeComponent 负责。
type DroppedItemComponent struct {
	Stack types.ItemStack

	BobTimer     float64 // 浮动步进累计时间
	BobStep      int     // 当前半周期内已执行的步数
	BobShrinking bool    // true 时缩小，false 时放大
}
