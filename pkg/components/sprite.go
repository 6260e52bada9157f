package components

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
)

// SpriteComponent 存储实体的视觉表现
// Image 为空时渲染系统使用 Color 绘制占位矩形
type SpriteComponent struct {
	Name   string        // 资源名称，如 "oak_tree"
	Image  *ebiten.Image // 已加载的图像，可为 nil
	Color  color.RGBA    // 占位颜色
	Width  float64       // 绘制宽度（格）
	Height float64       // 绘制高度（格）
}
