package world

import (
	"log"
	"math/rand"

	"github.com/decker502/resourcerun/pkg/config"
	"github.com/decker502/resourcerun/pkg/ecs"
	"github.com/decker502/resourcerun/pkg/types"
	"github.com/decker502/resourcerun/pkg/utils"
)

// ObjectSpawner 根据物体组和变体创建世界物体实体
type ObjectSpawner interface {
	SpawnObject(group *config.ObjectGroup, variant *config.ObjectVariant, position types.Vec2, cells []types.GridPosition) ecs.EntityID
}

// seasonAware 可选接口：生成开始前通知工厂当前季节
type seasonAware interface {
	SetSeason(name string)
}

// PlacementReport 一次物体生成的统计
type PlacementReport struct {
	Placed map[string]int // 物体组名 -> 放置数量
}

// Total 返回放置的物体总数
func (r PlacementReport) Total() int {
	total := 0
	for _, n := range r.Placed {
		total += n
	}
	return total
}

// ObjectGenerationStep 按物体组放置世界物体
//
// 对每个物体组按行扫描（x 外层、y 内层）候选格子，先检查占用，
// 再用千分比频率决定是否生成，生成后登记占用格子并注册到世界注册表。
// 组的顺序决定冲突时谁先占用格子。
type ObjectGenerationStep struct {
	width            int
	height           int
	spawnArea        int
	excludedEdgeArea int

	occupied *OccupancyGrid
	registry *WorldRegistry
	spawner  ObjectSpawner
	rng      *rand.Rand

	report PlacementReport
}

// NewObjectGenerationStep 创建物体生成步骤
func NewObjectGenerationStep(cfg config.WorldConfig, registry *WorldRegistry, spawner ObjectSpawner, rng *rand.Rand) *ObjectGenerationStep {
	if rng == nil {
		rng = rand.New(rand.NewSource(rand.Int63()))
	}
	return &ObjectGenerationStep{
		width:            cfg.Width,
		height:           cfg.Height,
		spawnArea:        cfg.SpawnArea,
		excludedEdgeArea: cfg.ExcludedEdgeArea,
		occupied:         NewOccupancyGrid(cfg.Width, cfg.Height),
		registry:         registry,
		spawner:          spawner,
		rng:              rng,
	}
}

// Name 返回步骤名称
func (s *ObjectGenerationStep) Name() string { return "objects" }

// Occupancy 返回本次生成的占用表
func (s *ObjectGenerationStep) Occupancy() *OccupancyGrid { return s.occupied }

// Report 返回最近一次生成的统计
func (s *ObjectGenerationStep) Report() PlacementReport { return s.report }

// Generate 放置当前季节的所有物体组
func (s *ObjectGenerationStep) Generate(season *config.SeasonConfig) error {
	s.occupied.Clear()
	s.occupySpawnArea()
	s.report = PlacementReport{Placed: make(map[string]int)}
	if aware, ok := s.spawner.(seasonAware); ok {
		aware.SetSeason(season.Name)
	}

	for i := range season.ObjectGroups {
		group := &season.ObjectGroups[i]
		if len(group.Variants) == 0 {
			continue
		}
		s.report.Placed[group.Name] = s.generateGroup(group)
	}

	log.Printf("[ObjectGeneration] Season %s: placed %d objects in %d groups",
		season.Name, s.report.Total(), len(s.report.Placed))
	return nil
}

// occupySpawnArea 占用世界中心的出生区域
func (s *ObjectGenerationStep) occupySpawnArea() {
	center := types.GridPosition{X: s.width / 2, Y: s.height / 2}
	s.occupied.OccupyArea(center, s.spawnArea)
}

// generateGroup 放置一个物体组，返回放置数量
func (s *ObjectGenerationStep) generateGroup(group *config.ObjectGroup) int {
	bag := utils.NewWeightedRandomBag[*config.ObjectVariant](s.rng)
	for i := range group.Variants {
		bag.AddEntry(&group.Variants[i], group.Variants[i].Weight)
	}
	if bag.TotalWeight() <= 0 {
		log.Printf("[ObjectGeneration] Group %s has no positive variant weight, skipped", group.Name)
		return 0
	}

	footprint := group.Footprint
	if len(footprint) == 0 {
		footprint = []types.GridPosition{{X: 0, Y: 0}}
	}

	placed := 0
	for x := s.excludedEdgeArea; x < s.width-s.excludedEdgeArea; x++ {
		for y := s.excludedEdgeArea; y < s.height-s.excludedEdgeArea; y++ {
			origin := types.GridPosition{X: x, Y: y}

			if s.occupied.AnyOccupied(origin, footprint) {
				continue
			}

			if s.rng.Intn(1001) > group.Frequency {
				continue
			}

			wx, wy := utils.GridToWorld(x, y)
			position := types.Vec2{X: wx, Y: wy}.Add(group.Offset)

			variant := bag.GetRandom()

			cells := make([]types.GridPosition, 0, len(footprint))
			for _, offset := range footprint {
				cells = append(cells, origin.Add(offset))
			}

			id := s.spawner.SpawnObject(group, variant, position, cells)

			for _, cell := range cells {
				s.occupied.Occupy(cell)
				s.registry.RegisterAt(cell.X, cell.Y, id)
			}
			placed++
		}
	}
	return placed
}
