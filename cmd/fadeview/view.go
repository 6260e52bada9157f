package main

import (
	"fmt"

	"github.com/decker502/resourcerun/pkg/config"
	"github.com/decker502/resourcerun/pkg/systems"
	"github.com/decker502/resourcerun/pkg/types"
	"github.com/gdamore/tcell/v2"
)

// tileGrid 渲染所需的只读瓦片视图
type tileGrid interface {
	Width() int
	Height() int
	GetTile(x, y int) string
}

// viewCell 终端中的一个世界格子
type viewCell struct {
	glyph rune
	style tcell.Style
}

var (
	groundStyle = tcell.StyleDefault.Foreground(tcell.ColorGreen)
	edgeStyle   = tcell.StyleDefault.Foreground(tcell.ColorOlive)
	objectStyle = tcell.StyleDefault.Foreground(tcell.ColorWhite).Bold(true)
	voidStyle   = tcell.StyleDefault.Foreground(tcell.ColorDarkBlue)
)

// variantGlyphs 每种瓦片变体的字符，空的一侧画在字符形状上
var variantGlyphs = map[types.TileVariant]rune{
	types.TileGround:      '.',
	types.TileRight:       '|',
	types.TileLeft:        '|',
	types.TileTop:         '-',
	types.TileBottom:      '-',
	types.TileTopRight:    '┐',
	types.TileTopLeft:     '┌',
	types.TileBottomRight: '┘',
	types.TileBottomLeft:  '└',
	types.TileRightAlone:  '>',
	types.TileTopAlone:    '^',
	types.TileLeftAlone:   '<',
	types.TileBottomAlone: 'v',
}

// tileVariantOf 反查瓦片资源名对应的变体
// 多个变体共用同一资源时取编号最小的
func tileVariantOf(ts config.TileSet, tile string) (types.TileVariant, bool) {
	for v := types.TileGround; int(v) < types.TileVariantCount; v++ {
		if ts.Tile(v) == tile {
			return v, true
		}
	}
	return types.TileGround, false
}

func tileCell(ts config.TileSet, tile string) viewCell {
	if tile == "" {
		return viewCell{glyph: ' ', style: voidStyle}
	}
	v, ok := tileVariantOf(ts, tile)
	if !ok {
		return viewCell{glyph: '?', style: edgeStyle}
	}
	if v == types.TileGround {
		return viewCell{glyph: variantGlyphs[v], style: groundStyle}
	}
	return viewCell{glyph: variantGlyphs[v], style: edgeStyle}
}

// prefabGlyph 物体模板的字符
func prefabGlyph(prefab string) rune {
	switch prefab {
	case "tree", "dead_tree":
		return 'T'
	case "rock", "boulder", "ice_rock":
		return 'o'
	case "berry_bush", "bush":
		return '*'
	case "mushroom":
		return 'm'
	case "":
		return 0
	}
	return '#'
}

// renderWorld 把瓦片和物体转换成行，第 0 行是世界最上方（y 最大）
func renderWorld(tiles tileGrid, ts config.TileSet, objectAt func(x, y int) rune) [][]viewCell {
	w, h := tiles.Width(), tiles.Height()
	rows := make([][]viewCell, h)
	for row := 0; row < h; row++ {
		y := h - 1 - row
		line := make([]viewCell, w)
		for x := 0; x < w; x++ {
			line[x] = tileCell(ts, tiles.GetTile(x, y))
			if objectAt == nil {
				continue
			}
			if g := objectAt(x, y); g != 0 {
				line[x] = viewCell{glyph: g, style: objectStyle}
			}
		}
		rows[row] = line
	}
	return rows
}

// fadeStatus 状态行需要的消退信息
type fadeStatus interface {
	State() systems.FadeState
	Layer() int
	Removed() int
	RingRemaining() int
}

func statusLine(season string, index, count int, fade fadeStatus, tiles int, message string) string {
	line := fmt.Sprintf(" %s (%d/%d) | %s | layer %d | ring %d | removed %d | tiles %d | space:fade n:next r:regen q:quit",
		season, index+1, count, fade.State(), fade.Layer(), fade.RingRemaining(), fade.Removed(), tiles)
	if message != "" {
		line += " | " + message
	}
	return line
}
