package world

import (
	"errors"
	"fmt"
	"log"
	"math/rand"

	"github.com/decker502/resourcerun/pkg/config"
	"github.com/decker502/resourcerun/pkg/ecs"
	"github.com/decker502/resourcerun/pkg/utils"
)

// ErrSeasonsExhausted 最后一个季节结束后再推进季节时返回，表示本局结束
var ErrSeasonsExhausted = errors.New("no more seasons")

// Generator 世界生成器
//
// 持有地面瓦片、物体注册表、四面边界和季节列表。
// 每次生成都会清空上一季节的世界，再按顺序执行生成步骤。
type Generator struct {
	cfg         config.WorldConfig
	seasons     []*config.SeasonConfig
	seasonIndex int

	tiles    *GroundTilemap
	registry *WorldRegistry
	borders  *BorderColliders

	objectStep *ObjectGenerationStep
	steps      []GenerationStep
}

// NewGenerator 创建世界生成器
// 参数:
//   - cfg: 世界配置
//   - seasons: 季节列表，顺序即推进顺序，至少一个
//   - em: EntityManager，世界物体实体的所有者
//   - spawner: 物体实体工厂
//   - rng: 随机数源，nil 时使用随机种子
func NewGenerator(cfg config.WorldConfig, seasons []*config.SeasonConfig, em *ecs.EntityManager, spawner ObjectSpawner, rng *rand.Rand) (*Generator, error) {
	if len(seasons) == 0 {
		return nil, fmt.Errorf("at least one season is required")
	}
	if cfg.Width < 1 || cfg.Height < 1 {
		return nil, fmt.Errorf("invalid world size %dx%d", cfg.Width, cfg.Height)
	}

	tiles := NewGroundTilemap(cfg.Width, cfg.Height)
	registry := NewWorldRegistry(em)
	objectStep := NewObjectGenerationStep(cfg, registry, spawner, rng)

	return &Generator{
		cfg:        cfg,
		seasons:    seasons,
		tiles:      tiles,
		registry:   registry,
		borders:    NewBorderColliders(cfg.Width, cfg.Height),
		objectStep: objectStep,
		steps: []GenerationStep{
			NewGroundGenerationStep(tiles),
			objectStep,
		},
	}, nil
}

// Config 返回世界配置
func (g *Generator) Config() config.WorldConfig { return g.cfg }

// Tiles 返回地面瓦片
func (g *Generator) Tiles() *GroundTilemap { return g.tiles }

// Registry 返回世界物体注册表
func (g *Generator) Registry() *WorldRegistry { return g.registry }

// Borders 返回四面边界碰撞体
func (g *Generator) Borders() *BorderColliders { return g.borders }

// ObjectStep 返回物体生成步骤
func (g *Generator) ObjectStep() *ObjectGenerationStep { return g.objectStep }

// Season 返回当前季节配置
func (g *Generator) Season() *config.SeasonConfig { return g.seasons[g.seasonIndex] }

// SeasonIndex 返回当前季节序号（从 0 开始）
func (g *Generator) SeasonIndex() int { return g.seasonIndex }

// SeasonCount 返回季节总数
func (g *Generator) SeasonCount() int { return len(g.seasons) }

// IsLastSeason 检查当前是否为最后一个季节
func (g *Generator) IsLastSeason() bool { return g.seasonIndex == len(g.seasons)-1 }

// SetSeason 切换到指定季节（不会重新生成）
func (g *Generator) SetSeason(index int) error {
	if index < 0 || index >= len(g.seasons) {
		return fmt.Errorf("season index %d out of range [0, %d)", index, len(g.seasons))
	}
	g.seasonIndex = index
	return nil
}

// SpawnPoint 返回出生点（世界中心格子的中心）
func (g *Generator) SpawnPoint() (x, y float64) {
	return utils.GridToWorld(g.cfg.Width/2, g.cfg.Height/2)
}

// Generate 为当前季节重新生成世界
func (g *Generator) Generate() error {
	season := g.Season()
	log.Printf("[WorldGenerator] Generating season %d/%d: %s (%dx%d)",
		g.seasonIndex+1, len(g.seasons), season.Name, g.cfg.Width, g.cfg.Height)

	g.registry.Clear()
	g.tiles.Clear()
	g.borders.Reset(g.cfg.Width, g.cfg.Height)

	for _, step := range g.steps {
		if err := step.Generate(season); err != nil {
			return fmt.Errorf("generation step %s failed: %w", step.Name(), err)
		}
	}
	return nil
}

// GenerateNextSeason 推进到下一个季节并重新生成世界
// 已经是最后一个季节时返回 ErrSeasonsExhausted，世界保持不变
func (g *Generator) GenerateNextSeason() error {
	if g.IsLastSeason() {
		return ErrSeasonsExhausted
	}
	g.seasonIndex++
	return g.Generate()
}

// DestroyPositionalObject 销毁格子上的世界物体
func (g *Generator) DestroyPositionalObject(x, y int) {
	g.registry.DestroyAt(x, y)
}
