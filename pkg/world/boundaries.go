package world

import "github.com/decker502/resourcerun/pkg/types"

// Boundaries 当前地面的紧凑包围盒，Max 为开区间
// 每一层消退开始时根据瓦片重新计算，不做增量维护
type Boundaries struct {
	MinX, MinY int
	MaxX, MaxY int
}

// Empty 检查包围盒是否为空
func (b Boundaries) Empty() bool {
	return b.MinX >= b.MaxX || b.MinY >= b.MaxY
}

// Width 返回包围盒宽度
func (b Boundaries) Width() int {
	if b.Empty() {
		return 0
	}
	return b.MaxX - b.MinX
}

// Height 返回包围盒高度
func (b Boundaries) Height() int {
	if b.Empty() {
		return 0
	}
	return b.MaxY - b.MinY
}

// ComputeBoundaries 根据当前瓦片计算世界边界
func ComputeBoundaries(tiles TileStore) Boundaries {
	minX, minY, maxX, maxY, ok := tiles.ComputeBounds()
	if !ok {
		return Boundaries{}
	}
	return Boundaries{MinX: minX, MinY: minY, MaxX: maxX, MaxY: maxY}
}

// EdgeRing 枚举包围盒外圈的所有格子
//
// 左右两列完整枚举，上下两行跳过已由列覆盖的角，保证没有重复。
// 宽或高为 1 时退化为单列或单行。
func EdgeRing(b Boundaries) []types.GridPosition {
	if b.Empty() {
		return nil
	}

	left, right := b.MinX, b.MaxX-1
	bottom, top := b.MinY, b.MaxY-1

	ring := make([]types.GridPosition, 0, 2*(b.Width()+b.Height()))

	for y := bottom; y <= top; y++ {
		ring = append(ring, types.GridPosition{X: left, Y: y})
	}
	if right != left {
		for y := bottom; y <= top; y++ {
			ring = append(ring, types.GridPosition{X: right, Y: y})
		}
	}

	for x := left + 1; x < right; x++ {
		ring = append(ring, types.GridPosition{X: x, Y: bottom})
	}
	if top != bottom {
		for x := left + 1; x < right; x++ {
			ring = append(ring, types.GridPosition{X: x, Y: top})
		}
	}

	return ring
}
