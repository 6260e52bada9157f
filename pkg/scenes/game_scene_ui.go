package scenes

import (
	"fmt"
	"image/color"
	"strings"

	"github.com/decker502/resourcerun/pkg/components"
	"github.com/decker502/resourcerun/pkg/ecs"
	"github.com/decker502/resourcerun/pkg/utils"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// HUD 布局
const (
	staminaBarX      = 12
	staminaBarY      = 12
	staminaBarWidth  = 160
	staminaBarHeight = 10

	hudTextX      = 12
	hudTextY      = 28
	inventoryLine = 16 // DebugPrint 行高
)

var (
	staminaBackColor = color.RGBA{R: 0x20, G: 0x20, B: 0x20, A: 0xc0}
	staminaFillColor = color.RGBA{R: 0xe8, G: 0xc8, B: 0x3a, A: 0xff}
	staminaLowColor  = color.RGBA{R: 0xd0, G: 0x4a, B: 0x3a, A: 0xff}
	overlayColor     = color.RGBA{A: 0xb0}
)

// Draw 绘制世界和 HUD
func (s *GameScene) Draw(screen *ebiten.Image) {
	camX, camY := s.cameraSystem.Position()
	s.renderSystem.Draw(screen, camX, camY)

	s.drawFallOverlay(screen)
	s.drawStaminaBar(screen)
	s.drawStatus(screen)
	s.drawInventory(screen)
	s.drawBanner(screen)

	switch {
	case s.state.IsGameOver:
		s.drawCenteredPanel(screen, s.gameOverText())
	case s.state.IsPaused:
		s.drawCenteredPanel(screen, "PAUSED\n\nEsc to resume")
	}
}

// drawFallOverlay 坠落时逐渐变暗
func (s *GameScene) drawFallOverlay(screen *ebiten.Image) {
	player, ok := ecs.GetComponent[*components.PlayerComponent](s.entityManager, s.playerID)
	if !ok || player.Fall != components.FallShrinking {
		return
	}
	scale, ok := ecs.GetComponent[*components.ScaleComponent](s.entityManager, s.playerID)
	if !ok {
		return
	}

	// 缩放从 1 到 0.25 对应进度 0 到 1
	progress := utils.Clamp((1-scale.ScaleX)/0.75, 0, 1)
	alpha := uint8(utils.EaseInQuad(progress) * 200)
	w, h := screen.Bounds().Dx(), screen.Bounds().Dy()
	vector.FillRect(screen, 0, 0, float32(w), float32(h), color.RGBA{A: alpha}, false)
}

// drawStaminaBar 绘制体力条
func (s *GameScene) drawStaminaBar(screen *ebiten.Image) {
	stamina, ok := ecs.GetComponent[*components.StaminaComponent](s.entityManager, s.playerID)
	if !ok {
		return
	}

	vector.FillRect(screen, staminaBarX, staminaBarY, staminaBarWidth, staminaBarHeight, staminaBackColor, false)

	fill := staminaFillColor
	if stamina.Current <= stamina.Min+0.1 {
		fill = staminaLowColor
	}
	width := float32(staminaBarWidth * utils.Clamp(stamina.Fill, 0, 1))
	vector.FillRect(screen, staminaBarX, staminaBarY, width, staminaBarHeight, fill, false)
}

// drawStatus 季节、消退层数、时间
func (s *GameScene) drawStatus(screen *ebiten.Image) {
	gen := s.generator
	status := fmt.Sprintf("%s (%d/%d)  fade: %s layer %d  time: %.0fs",
		gen.Season().Name, gen.SeasonIndex()+1, gen.SeasonCount(),
		s.fadeSystem.State(), s.fadeSystem.Layer(), s.state.Elapsed)
	ebitenutil.DebugPrintAt(screen, status, hudTextX, hudTextY)
}

// drawInventory 在右上角列出背包内容
func (s *GameScene) drawInventory(screen *ebiten.Image) {
	x := screen.Bounds().Dx() - 150
	y := staminaBarY
	ebitenutil.DebugPrintAt(screen, "Inventory", x, y)

	for _, stack := range s.inventory.Slots() {
		if stack.IsEmpty() {
			continue
		}
		y += inventoryLine
		ebitenutil.DebugPrintAt(screen, fmt.Sprintf("%-10s x%d", stack.Item, stack.Count), x, y)
	}
}

// drawBanner 新季节横幅
func (s *GameScene) drawBanner(screen *ebiten.Image) {
	if s.bannerTimer <= 0 || s.banner == "" {
		return
	}
	w := screen.Bounds().Dx()
	x := w/2 - len(s.banner)*3
	ebitenutil.DebugPrintAt(screen, s.banner, x, 48)
}

// drawCenteredPanel 半透明遮罩 + 居中多行文字
func (s *GameScene) drawCenteredPanel(screen *ebiten.Image, msg string) {
	w, h := screen.Bounds().Dx(), screen.Bounds().Dy()
	vector.FillRect(screen, 0, 0, float32(w), float32(h), overlayColor, false)

	lines := strings.Split(msg, "\n")
	y := h/2 - len(lines)*inventoryLine/2
	for _, line := range lines {
		// DebugPrint 字符宽 6 像素
		ebitenutil.DebugPrintAt(screen, line, w/2-len(line)*3, y)
		y += inventoryLine
	}
}

// gameOverText 结算文字
func (s *GameScene) gameOverText() string {
	return fmt.Sprintf("THE WORLD IS GONE\n\nseasons survived: %d\nobjects gathered: %d\nitems picked up: %d\ntiles lost: %d\n\nR to start a new run",
		s.generator.SeasonCount(), s.state.ObjectsGathered, s.state.ItemsPicked, s.state.TilesRemoved)
}
