package world

import (
	"github.com/decker502/resourcerun/pkg/config"
	"github.com/decker502/resourcerun/pkg/types"
)

// ResolveTile 根据格子 (x, y) 四个正交邻居是否为空，选出瓦片变体
//
// 检查顺序：右、上、左、下，第一个为空的方向决定结果。
// 在该方向内再看两个垂直邻居：都为空为孤立，一个为空为角，都不为空为边。
// 四个邻居都不为空时返回 false，调用方保持瓦片不变。
func ResolveTile(isEmpty func(x, y int) bool, x, y int) (types.TileVariant, bool) {
	right := isEmpty(x+1, y)
	top := isEmpty(x, y+1)
	left := isEmpty(x-1, y)
	bottom := isEmpty(x, y-1)

	switch {
	case right:
		switch {
		case bottom && top:
			return types.TileRightAlone, true
		case bottom:
			return types.TileBottomRight, true
		case top:
			return types.TileTopRight, true
		default:
			return types.TileRight, true
		}

	case top:
		switch {
		case left && right:
			return types.TileTopAlone, true
		case left:
			return types.TileTopLeft, true
		case right:
			return types.TileTopRight, true
		default:
			return types.TileTop, true
		}

	case left:
		switch {
		case bottom && top:
			return types.TileLeftAlone, true
		case bottom:
			return types.TileBottomLeft, true
		case top:
			return types.TileTopLeft, true
		default:
			return types.TileLeft, true
		}

	case bottom:
		switch {
		case left && right:
			return types.TileBottomAlone, true
		case left:
			return types.TileBottomLeft, true
		case right:
			return types.TileBottomRight, true
		default:
			return types.TileBottom, true
		}
	}

	return types.TileGround, false
}

// RecomputeTile 重新计算格子 (x, y) 的瓦片外观
// 格子本身为空时什么也不做
func RecomputeTile(tiles TileStore, set config.TileSet, x, y int) {
	if tiles.GetTile(x, y) == "" {
		return
	}

	isEmpty := func(cx, cy int) bool {
		return tiles.GetTile(cx, cy) == ""
	}

	variant, ok := ResolveTile(isEmpty, x, y)
	if !ok {
		return
	}
	// 未配置的资源不能覆盖现有瓦片
	tile := set.Tile(variant)
	if tile == "" {
		return
	}
	tiles.SetTile(x, y, tile)
}

// RecomputeNeighbors 重新计算 (x, y) 四个正交邻居的瓦片外观
func RecomputeNeighbors(tiles TileStore, set config.TileSet, x, y int) {
	RecomputeTile(tiles, set, x+1, y)
	RecomputeTile(tiles, set, x-1, y)
	RecomputeTile(tiles, set, x, y+1)
	RecomputeTile(tiles, set, x, y-1)
}
