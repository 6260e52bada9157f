package components

// CollisionComponent 定义实体的碰撞盒（世界单位，1 = 一格）
// 世界物体用它阻挡玩家移动
type CollisionComponent struct {
	Width   float64 // 碰撞盒宽度
	Height  float64 // 碰撞盒高度
	OffsetX float64 // 碰撞盒中心相对于实体位置的X偏移
	OffsetY float64 // 碰撞盒中心相对于实体位置的Y偏移
}

// Bounds 返回实体位于 (x, y) 时碰撞盒的边界
func (c *CollisionComponent) Bounds(x, y float64) (minX, minY, maxX, maxY float64) {
	cx, cy := x+c.OffsetX, y+c.OffsetY
	return cx - c.Width/2, cy - c.Height/2, cx + c.Width/2, cy + c.Height/2
}
