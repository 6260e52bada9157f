// Package world 实现世界生成与地面消退所需的网格数据结构
//
// 包含地面瓦片存储、物体占用表、格子到实体的注册表、四面边界碰撞体、
// 边界计算与边缘环枚举、瓦片自动拼接，以及按季节运行的生成步骤。
package world

// TileStore 地面瓦片存储
// 空字符串表示该格子没有瓦片
type TileStore interface {
	GetTile(x, y int) string
	SetTile(x, y int, tile string)
	// ComputeBounds 返回所有非空瓦片的紧凑包围盒，max 为开区间
	// ok 为 false 表示没有任何瓦片
	ComputeBounds() (minX, minY, maxX, maxY int, ok bool)
}

// GroundTilemap 固定尺寸的内存瓦片地图
// 越界读取视为空，越界写入被忽略
type GroundTilemap struct {
	width  int
	height int
	tiles  []string
	count  int
}

// NewGroundTilemap 创建 width × height 的空瓦片地图
func NewGroundTilemap(width, height int) *GroundTilemap {
	if width < 0 {
		width = 0
	}
	if height < 0 {
		height = 0
	}
	return &GroundTilemap{
		width:  width,
		height: height,
		tiles:  make([]string, width*height),
	}
}

// Width 返回地图宽度
func (m *GroundTilemap) Width() int { return m.width }

// Height 返回地图高度
func (m *GroundTilemap) Height() int { return m.height }

// Count 返回非空瓦片数量
func (m *GroundTilemap) Count() int { return m.count }

func (m *GroundTilemap) inBounds(x, y int) bool {
	return x >= 0 && x < m.width && y >= 0 && y < m.height
}

// GetTile 获取瓦片，越界返回空
func (m *GroundTilemap) GetTile(x, y int) string {
	if !m.inBounds(x, y) {
		return ""
	}
	return m.tiles[y*m.width+x]
}

// SetTile 设置瓦片，空字符串表示清除
func (m *GroundTilemap) SetTile(x, y int, tile string) {
	if !m.inBounds(x, y) {
		return
	}
	idx := y*m.width + x
	old := m.tiles[idx]
	switch {
	case old == "" && tile != "":
		m.count++
	case old != "" && tile == "":
		m.count--
	}
	m.tiles[idx] = tile
}

// IsEmpty 检查格子是否为空（越界视为空）
func (m *GroundTilemap) IsEmpty(x, y int) bool {
	return m.GetTile(x, y) == ""
}

// Fill 用同一种瓦片铺满整个地图
func (m *GroundTilemap) Fill(tile string) {
	for i := range m.tiles {
		m.tiles[i] = tile
	}
	if tile == "" {
		m.count = 0
	} else {
		m.count = len(m.tiles)
	}
}

// Clear 清空所有瓦片
func (m *GroundTilemap) Clear() {
	m.Fill("")
}

// ComputeBounds 计算非空瓦片的紧凑包围盒
func (m *GroundTilemap) ComputeBounds() (minX, minY, maxX, maxY int, ok bool) {
	if m.count == 0 {
		return 0, 0, 0, 0, false
	}

	minX, minY = m.width, m.height
	maxX, maxY = -1, -1
	for y := 0; y < m.height; y++ {
		for x := 0; x < m.width; x++ {
			if m.tiles[y*m.width+x] == "" {
				continue
			}
			if x < minX {
				minX = x
			}
			if y < minY {
				minY = y
			}
			if x > maxX {
				maxX = x
			}
			if y > maxY {
				maxY = y
			}
		}
	}
	return minX, minY, maxX + 1, maxY + 1, true
}
