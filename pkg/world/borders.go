package world

import "github.com/decker502/resourcerun/pkg/types"

// BorderCollider 一面矩形边界碰撞体
// Offset 为矩形中心，Size 为宽高
type BorderCollider struct {
	Offset types.Vec2
	Size   types.Vec2
}

// MinX 返回矩形左边界
func (c *BorderCollider) MinX() float64 { return c.Offset.X - c.Size.X/2 }

// MaxX 返回矩形右边界
func (c *BorderCollider) MaxX() float64 { return c.Offset.X + c.Size.X/2 }

// MinY 返回矩形下边界
func (c *BorderCollider) MinY() float64 { return c.Offset.Y - c.Size.Y/2 }

// MaxY 返回矩形上边界
func (c *BorderCollider) MaxY() float64 { return c.Offset.Y + c.Size.Y/2 }

// shrink 平移并缩小碰撞体，尺寸不会小于 0
func (c *BorderCollider) shrink(dx, dy, dw, dh float64) {
	c.Offset.X += dx
	c.Offset.Y += dy
	c.Size.X -= dw
	c.Size.Y -= dh
	if c.Size.X < 0 {
		c.Size.X = 0
	}
	if c.Size.Y < 0 {
		c.Size.Y = 0
	}
}

// BorderColliders 世界四周的边界碰撞体
//
// 在整个会话中只创建一次，每消退完一圈边缘就原地向内收缩一格。
type BorderColliders struct {
	Top    BorderCollider
	Bottom BorderCollider
	Left   BorderCollider
	Right  BorderCollider
}

// NewBorderColliders 创建紧贴 width × height 世界外侧的四面边界
func NewBorderColliders(width, height int) *BorderColliders {
	b := &BorderColliders{}
	b.Reset(width, height)
	return b
}

// Reset 将四面边界恢复到紧贴 width × height 世界外侧的位置
func (b *BorderColliders) Reset(width, height int) {
	w, h := float64(width), float64(height)
	b.Top = BorderCollider{Offset: types.Vec2{X: w / 2, Y: h + 0.5}, Size: types.Vec2{X: w, Y: 1}}
	b.Bottom = BorderCollider{Offset: types.Vec2{X: w / 2, Y: -0.5}, Size: types.Vec2{X: w, Y: 1}}
	b.Right = BorderCollider{Offset: types.Vec2{X: w + 0.5, Y: h / 2}, Size: types.Vec2{X: 1, Y: h}}
	b.Left = BorderCollider{Offset: types.Vec2{X: -0.5, Y: h / 2}, Size: types.Vec2{X: 1, Y: h}}
}

// Shrink 四面边界各向内移动一格
// 上下边界沿 Y 移动并缩短 2 格宽度，左右边界沿 X 移动并缩短 2 格高度。
// 每次调用都会累积收缩。
func (b *BorderColliders) Shrink() {
	b.Top.shrink(0, -1, 2, 0)
	b.Bottom.shrink(0, 1, 2, 0)
	b.Right.shrink(-1, 0, 0, 2)
	b.Left.shrink(1, 0, 0, 2)
}

// Inner 返回四面边界围成的可活动矩形
func (b *BorderColliders) Inner() (minX, minY, maxX, maxY float64) {
	return b.Left.MaxX(), b.Bottom.MaxY(), b.Right.MinX(), b.Top.MinY()
}

// Clamp 将世界坐标限制在可活动矩形内
// 矩形退化时收敛到其中点
func (b *BorderColliders) Clamp(x, y float64) (float64, float64) {
	return b.ClampInset(x, y, 0)
}

// ClampInset 将半宽为 inset 的物体中心限制在可活动矩形内
// 物体贴住边界时中心停在边界内 inset 处，永远不会落到边界外的格子里
func (b *BorderColliders) ClampInset(x, y, inset float64) (float64, float64) {
	minX, minY, maxX, maxY := b.Inner()
	minX, minY = minX+inset, minY+inset
	maxX, maxY = maxX-inset, maxY-inset
	if minX > maxX {
		mid := (minX + maxX) / 2
		minX, maxX = mid, mid
	}
	if minY > maxY {
		mid := (minY + maxY) / 2
		minY, maxY = mid, mid
	}
	if x < minX {
		x = minX
	} else if x > maxX {
		x = maxX
	}
	if y < minY {
		y = minY
	} else if y > maxY {
		y = maxY
	}
	return x, y
}
