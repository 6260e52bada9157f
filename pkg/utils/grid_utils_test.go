package utils

import "testing"

// TestWorldToGrid 测试世界坐标到格子坐标的转换
func TestWorldToGrid(t *testing.T) {
	tests := []struct {
		name   string
		wx, wy float64
		wantX  int
		wantY  int
	}{
		{"格子中心", 3.5, 4.5, 3, 4},
		{"格子左下角", 2.0, 2.0, 2, 2},
		{"接近右上边界", 2.999, 5.999, 2, 5},
		{"负坐标向下取整", -0.25, -1.5, -1, -2},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			x, y := WorldToGrid(tt.wx, tt.wy)
			if x != tt.wantX || y != tt.wantY {
				t.Errorf("WorldToGrid(%f, %f) = (%d, %d), want (%d, %d)", tt.wx, tt.wy, x, y, tt.wantX, tt.wantY)
			}
		})
	}
}

// TestGridToWorldRoundTrip 格子中心转换回来应得到同一格子
func TestGridToWorldRoundTrip(t *testing.T) {
	for x := -3; x < 5; x++ {
		for y := -3; y < 5; y++ {
			wx, wy := GridToWorld(x, y)
			gx, gy := WorldToGrid(wx, wy)
			if gx != x || gy != y {
				t.Errorf("Round trip (%d, %d) -> (%f, %f) -> (%d, %d)", x, y, wx, wy, gx, gy)
			}
		}
	}
}

// TestWorldToScreen 世界 y 轴向上，屏幕 y 轴向下
func TestWorldToScreen(t *testing.T) {
	sx, sy := WorldToScreen(0, 0, 10, 8, 4)
	if sx != 8 || sy != 4+10*TileSizePx {
		t.Errorf("Bottom-left corner mapped to (%f, %f)", sx, sy)
	}

	sx, sy = WorldToScreen(10, 10, 10, 8, 4)
	if sx != 8+10*TileSizePx || sy != 4 {
		t.Errorf("Top-right corner mapped to (%f, %f)", sx, sy)
	}
}

func TestClamp(t *testing.T) {
	if Clamp(-1, 0, 1) != 0 || Clamp(2, 0, 1) != 1 || Clamp(0.5, 0, 1) != 0.5 {
		t.Error("Clamp returned unexpected value")
	}
}
