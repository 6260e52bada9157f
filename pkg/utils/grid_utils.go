package utils

import "math"

// 世界坐标与屏幕坐标参数
// 世界坐标单位是"格"：格子 (x, y) 覆盖 [x, x+1) × [y, y+1)，y 轴向上
const (
	TileSizePx = 16.0 // 每格像素尺寸
)

// GridToWorld 将格子坐标转换为格子中心的世界坐标
// 参数:
//   - x, y: 格子坐标
//
// 返回:
//   - wx, wy: 格子中心的世界坐标
func GridToWorld(x, y int) (wx, wy float64) {
	return float64(x) + 0.5, float64(y) + 0.5
}

// WorldToGrid 将世界坐标转换为所在格子坐标（向下取整，负坐标同样正确）
func WorldToGrid(wx, wy float64) (x, y int) {
	return int(math.Floor(wx)), int(math.Floor(wy))
}

// WorldToScreen 将世界坐标转换为屏幕像素坐标
// 世界 y 轴向上，屏幕 y 轴向下，因此需要 worldHeight 翻转
// 参数:
//   - wx, wy: 世界坐标
//   - worldHeight: 世界高度（格）
//   - originX, originY: 世界左上角在屏幕上的像素位置
func WorldToScreen(wx, wy float64, worldHeight int, originX, originY float64) (sx, sy float64) {
	sx = originX + wx*TileSizePx
	sy = originY + (float64(worldHeight)-wy)*TileSizePx
	return sx, sy
}

// Clamp 将数值限制在 [min, max] 范围内
func Clamp(v, min, max float64) float64 {
	if v < min {
		return min
	}
	if v > max {
		return max
	}
	return v
}
