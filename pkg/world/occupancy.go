package world

import "github.com/decker502/resourcerun/pkg/types"

// OccupancyGrid 记录一次生成过程中已被物体占用的格子
//
// 网格外的坐标一律视为已占用，保证物体不会生成在地图之外。
type OccupancyGrid struct {
	width    int
	height   int
	occupied map[types.GridPosition]struct{}
}

// NewOccupancyGrid 创建占用表
func NewOccupancyGrid(width, height int) *OccupancyGrid {
	return &OccupancyGrid{
		width:    width,
		height:   height,
		occupied: make(map[types.GridPosition]struct{}),
	}
}

// Contains 检查坐标是否在网格内
func (g *OccupancyGrid) Contains(p types.GridPosition) bool {
	return p.X >= 0 && p.X < g.width && p.Y >= 0 && p.Y < g.height
}

// Occupy 标记格子为已占用，网格外坐标被忽略
func (g *OccupancyGrid) Occupy(p types.GridPosition) {
	if !g.Contains(p) {
		return
	}
	g.occupied[p] = struct{}{}
}

// OccupyArea 占用以 center 为中心、半径 radius 的方形区域 [c-r, c+r)
// 区域超出网格的部分被裁掉
func (g *OccupancyGrid) OccupyArea(center types.GridPosition, radius int) {
	for x := center.X - radius; x < center.X+radius; x++ {
		for y := center.Y - radius; y < center.Y+radius; y++ {
			g.Occupy(types.GridPosition{X: x, Y: y})
		}
	}
}

// IsOccupied 检查格子是否已被占用
func (g *OccupancyGrid) IsOccupied(p types.GridPosition) bool {
	if !g.Contains(p) {
		return true
	}
	_, ok := g.occupied[p]
	return ok
}

// AnyOccupied 检查 footprint 平移到 origin 后是否与已占用格子重叠
func (g *OccupancyGrid) AnyOccupied(origin types.GridPosition, footprint []types.GridPosition) bool {
	for _, offset := range footprint {
		if g.IsOccupied(origin.Add(offset)) {
			return true
		}
	}
	return false
}

// Clear 清空占用表
func (g *OccupancyGrid) Clear() {
	clear(g.occupied)
}

// Len 返回已占用格子数量
func (g *OccupancyGrid) Len() int {
	return len(g.occupied)
}

// Positions 返回所有已占用格子（无序）
func (g *OccupancyGrid) Positions() []types.GridPosition {
	result := make([]types.GridPosition, 0, len(g.occupied))
	for p := range g.occupied {
		result = append(result, p)
	}
	return result
}
