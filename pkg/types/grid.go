package types

// GridPosition 地图格子坐标，按值比较，可作为 map 键
type GridPosition struct {
	X int `yaml:"x" json:"x"`
	Y int `yaml:"y" json:"y"`
}

// Add 返回平移后的格子坐标
func (p GridPosition) Add(offset GridPosition) GridPosition {
	return GridPosition{X: p.X + offset.X, Y: p.Y + offset.Y}
}

// Vec2 世界空间中的二维向量（单位：格）
type Vec2 struct {
	X float64 `yaml:"x" json:"x"`
	Y float64 `yaml:"y" json:"y"`
}

// Add 向量相加
func (v Vec2) Add(o Vec2) Vec2 {
	return Vec2{X: v.X + o.X, Y: v.Y + o.Y}
}
