package systems

import (
	"image/color"
	"sort"

	"github.com/decker502/resourcerun/pkg/components"
	"github.com/decker502/resourcerun/pkg/ecs"
	"github.com/decker502/resourcerun/pkg/entities"
	"github.com/decker502/resourcerun/pkg/utils"
	"github.com/decker502/resourcerun/pkg/world"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

var (
	voidColor         = color.RGBA{R: 0x10, G: 0x12, B: 0x1c, A: 0xff}
	defaultGroundTint = color.RGBA{R: 0x5a, G: 0x9e, B: 0x3a, A: 0xff}
	defaultEdgeTint   = color.RGBA{R: 0x7a, G: 0x5c, B: 0x3a, A: 0xff}
)

// RenderSystem 绘制地面瓦片和所有带精灵的实体
//
// 渲染顺序（从底到顶）：虚空背景 → 地面瓦片 → 实体（按 Y 从高到低，离镜头远的先画）。
// 瓦片和精灵优先使用图像，图像缺失时使用季节配置中的颜色绘制占位矩形。
type RenderSystem struct {
	entityManager *ecs.EntityManager
	tiles         *world.GroundTilemap
	seasons       SeasonSource
	loader        entities.ImageLoader // 可为 nil
	screenWidth   int
	screenHeight  int

	// 当前季节的瓦片颜色缓存
	paletteFor  string
	groundColor color.RGBA
	edgeColor   color.RGBA
}

// NewRenderSystem 创建渲染系统
func NewRenderSystem(em *ecs.EntityManager, tiles *world.GroundTilemap, seasons SeasonSource, loader entities.ImageLoader, screenWidth, screenHeight int) *RenderSystem {
	return &RenderSystem{
		entityManager: em,
		tiles:         tiles,
		seasons:       seasons,
		loader:        loader,
		screenWidth:   screenWidth,
		screenHeight:  screenHeight,
	}
}

// ScreenPosition 将世界坐标转换为屏幕坐标，镜头位于屏幕中心
func (s *RenderSystem) ScreenPosition(wx, wy, cameraX, cameraY float64) (sx, sy float64) {
	height := s.tiles.Height()
	originX := float64(s.screenWidth)/2 - cameraX*utils.TileSizePx
	originY := float64(s.screenHeight)/2 - (float64(height)-cameraY)*utils.TileSizePx
	return utils.WorldToScreen(wx, wy, height, originX, originY)
}

// Draw 绘制整个世界
func (s *RenderSystem) Draw(screen *ebiten.Image, cameraX, cameraY float64) {
	screen.Fill(voidColor)
	s.drawTiles(screen, cameraX, cameraY)
	for _, id := range s.drawOrder() {
		s.drawEntity(screen, id, cameraX, cameraY)
	}
}

// refreshPalette 季节变化时重新解析瓦片颜色
func (s *RenderSystem) refreshPalette() {
	season := s.seasons.Season()
	if season == nil || season.Name == s.paletteFor {
		return
	}
	s.paletteFor = season.Name
	s.groundColor = utils.ColorOrDefault(season.GroundColor, defaultGroundTint)
	s.edgeColor = utils.ColorOrDefault(season.EdgeColor, defaultEdgeTint)
}

// drawTiles 绘制屏幕范围内的非空瓦片
func (s *RenderSystem) drawTiles(screen *ebiten.Image, cameraX, cameraY float64) {
	s.refreshPalette()
	season := s.seasons.Season()

	for y := 0; y < s.tiles.Height(); y++ {
		for x := 0; x < s.tiles.Width(); x++ {
			tile := s.tiles.GetTile(x, y)
			if tile == "" {
				continue
			}

			// 格子 (x, y) 的左上角是世界坐标 (x, y+1)
			sx, sy := s.ScreenPosition(float64(x), float64(y+1), cameraX, cameraY)
			if !s.visible(sx, sy, utils.TileSizePx, utils.TileSizePx) {
				continue
			}

			if img := s.image(tile); img != nil {
				s.drawImage(screen, img, sx, sy, utils.TileSizePx, utils.TileSizePx, false)
				continue
			}

			tint := s.edgeColor
			if season != nil && tile == season.Tiles.Ground {
				tint = s.groundColor
			}
			vector.FillRect(screen, float32(sx), float32(sy), float32(utils.TileSizePx), float32(utils.TileSizePx), tint, false)
		}
	}
}

// drawOrder 返回需要绘制的实体，Y 较大的（屏幕上方）先绘制
func (s *RenderSystem) drawOrder() []ecs.EntityID {
	ids := ecs.GetEntitiesWith2[*components.PositionComponent, *components.SpriteComponent](s.entityManager)
	sort.Slice(ids, func(i, j int) bool {
		pi, _ := ecs.GetComponent[*components.PositionComponent](s.entityManager, ids[i])
		pj, _ := ecs.GetComponent[*components.PositionComponent](s.entityManager, ids[j])
		if pi.Y != pj.Y {
			return pi.Y > pj.Y
		}
		return ids[i] < ids[j]
	})
	return ids
}

// drawEntity 以位置为中心绘制单个实体
func (s *RenderSystem) drawEntity(screen *ebiten.Image, id ecs.EntityID, cameraX, cameraY float64) {
	pos, _ := ecs.GetComponent[*components.PositionComponent](s.entityManager, id)
	sprite, _ := ecs.GetComponent[*components.SpriteComponent](s.entityManager, id)

	w, h := sprite.Width, sprite.Height
	if w <= 0 {
		w = 1
	}
	if h <= 0 {
		h = 1
	}
	if scale, ok := ecs.GetComponent[*components.ScaleComponent](s.entityManager, id); ok {
		w *= scale.ScaleX
		h *= scale.ScaleY
	}
	if w <= 0 || h <= 0 {
		return
	}

	cx, cy := s.ScreenPosition(pos.X, pos.Y, cameraX, cameraY)
	pw, ph := w*utils.TileSizePx, h*utils.TileSizePx
	left, top := cx-pw/2, cy-ph/2
	if !s.visible(left, top, pw, ph) {
		return
	}

	if sprite.Image != nil {
		flip := false
		if player, ok := ecs.GetComponent[*components.PlayerComponent](s.entityManager, id); ok {
			flip = player.Facing == components.FacingLeft
		}
		s.drawImage(screen, sprite.Image, left, top, pw, ph, flip)
		return
	}

	vector.FillRect(screen, float32(left), float32(top), float32(pw), float32(ph), sprite.Color, false)
}

// drawImage 把图像缩放到 (w, h) 像素绘制在 (x, y)
func (s *RenderSystem) drawImage(screen, img *ebiten.Image, x, y, w, h float64, flip bool) {
	bounds := img.Bounds()
	if bounds.Dx() == 0 || bounds.Dy() == 0 {
		return
	}

	op := &ebiten.DrawImageOptions{}
	sx, sy := w/float64(bounds.Dx()), h/float64(bounds.Dy())
	if flip {
		op.GeoM.Scale(-sx, sy)
		op.GeoM.Translate(x+w, y)
	} else {
		op.GeoM.Scale(sx, sy)
		op.GeoM.Translate(x, y)
	}
	screen.DrawImage(img, op)
}

// image 加载瓦片图像，加载失败返回 nil
func (s *RenderSystem) image(name string) *ebiten.Image {
	if s.loader == nil {
		return nil
	}
	img, err := s.loader.LoadImage(name)
	if err != nil {
		return nil
	}
	return img
}

// visible 矩形是否与屏幕相交
func (s *RenderSystem) visible(x, y, w, h float64) bool {
	return x+w >= 0 && y+h >= 0 && x <= float64(s.screenWidth) && y <= float64(s.screenHeight)
}
