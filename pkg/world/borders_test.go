package world

import (
	"math"
	"testing"
)

func assertInner(t *testing.T, b *BorderColliders, wantMinX, wantMinY, wantMaxX, wantMaxY float64) {
	t.Helper()
	minX, minY, maxX, maxY := b.Inner()
	if minX != wantMinX || minY != wantMinY || maxX != wantMaxX || maxY != wantMaxY {
		t.Errorf("Inner() = (%v,%v,%v,%v), want (%v,%v,%v,%v)",
			minX, minY, maxX, maxY, wantMinX, wantMinY, wantMaxX, wantMaxY)
	}
}

func TestBorderCollidersInitial(t *testing.T) {
	b := NewBorderColliders(10, 8)
	assertInner(t, b, 0, 0, 10, 8)

	if b.Top.Size.X != 10 || b.Left.Size.Y != 8 {
		t.Errorf("Unexpected collider sizes: top=%v left=%v", b.Top.Size, b.Left.Size)
	}
}

// TestBorderCollidersShrinkAccumulates 收缩是单向累积的，连续调用不是幂等的
func TestBorderCollidersShrinkAccumulates(t *testing.T) {
	b := NewBorderColliders(10, 8)

	b.Shrink()
	assertInner(t, b, 1, 1, 9, 7)
	if b.Top.Offset.Y != 7.5 || b.Top.Size.X != 8 {
		t.Errorf("Top collider after one shrink: offset=%v size=%v", b.Top.Offset, b.Top.Size)
	}
	if b.Right.Offset.X != 9.5 || b.Right.Size.Y != 6 {
		t.Errorf("Right collider after one shrink: offset=%v size=%v", b.Right.Offset, b.Right.Size)
	}

	b.Shrink()
	assertInner(t, b, 2, 2, 8, 6)
}

func TestBorderCollidersSizeNeverNegative(t *testing.T) {
	b := NewBorderColliders(2, 2)
	for i := 0; i < 5; i++ {
		b.Shrink()
	}
	if b.Top.Size.X < 0 || b.Left.Size.Y < 0 {
		t.Errorf("Sizes went negative: top=%v left=%v", b.Top.Size, b.Left.Size)
	}
}

func TestBorderCollidersClamp(t *testing.T) {
	b := NewBorderColliders(10, 10)
	b.Shrink()

	tests := []struct {
		x, y         float64
		wantX, wantY float64
	}{
		{5, 5, 5, 5},
		{0.2, 5, 1, 5},
		{12, -3, 9, 1},
		{5, 9.8, 5, 9},
	}
	for _, tt := range tests {
		x, y := b.Clamp(tt.x, tt.y)
		if x != tt.wantX || y != tt.wantY {
			t.Errorf("Clamp(%v,%v) = (%v,%v), want (%v,%v)", tt.x, tt.y, x, y, tt.wantX, tt.wantY)
		}
	}

	// 带半宽的限制停在边界内
	x, y := b.ClampInset(12, 12, 0.4)
	if math.Abs(x-8.6) > 1e-9 || math.Abs(y-8.6) > 1e-9 {
		t.Errorf("ClampInset(12,12,0.4) = (%v,%v), want (8.6,8.6)", x, y)
	}
	if gx, gy := int(x), int(y); gx != 8 || gy != 8 {
		t.Errorf("Inset clamp should stay in the last inner cell, got (%d,%d)", gx, gy)
	}

	// 退化为空矩形时收敛到中点
	b.Reset(2, 2)
	b.Shrink()
	b.Shrink()
	x, y = b.Clamp(0, 0)
	if x != 1 || y != 1 {
		t.Errorf("Degenerate clamp = (%v,%v), want (1,1)", x, y)
	}
}
