package world

import "github.com/decker502/resourcerun/pkg/config"

// GenerationStep 世界生成的一个步骤
// 按注册顺序在每次生成时执行一次
type GenerationStep interface {
	Name() string
	Generate(season *config.SeasonConfig) error
}

// GroundGenerationStep 铺满地面并为最外圈瓦片计算边缘外观
type GroundGenerationStep struct {
	tiles *GroundTilemap
}

// NewGroundGenerationStep 创建地面生成步骤
func NewGroundGenerationStep(tiles *GroundTilemap) *GroundGenerationStep {
	return &GroundGenerationStep{tiles: tiles}
}

// Name 返回步骤名称
func (s *GroundGenerationStep) Name() string { return "ground" }

// Generate 铺满地面
func (s *GroundGenerationStep) Generate(season *config.SeasonConfig) error {
	s.tiles.Fill(season.Tiles.Ground)

	// 只有最外圈需要边缘外观
	w, h := s.tiles.Width(), s.tiles.Height()
	for _, pos := range EdgeRing(Boundaries{MaxX: w, MaxY: h}) {
		RecomputeTile(s.tiles, season.Tiles, pos.X, pos.Y)
	}
	return nil
}
