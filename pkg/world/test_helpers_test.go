package world

import (
	"github.com/decker502/resourcerun/pkg/config"
	"github.com/decker502/resourcerun/pkg/ecs"
	"github.com/decker502/resourcerun/pkg/types"
)

// spawnRecord 记录一次物体生成调用
type spawnRecord struct {
	id       ecs.EntityID
	group    string
	variant  string
	position types.Vec2
	cells    []types.GridPosition
}

// recordingSpawner 测试用物体工厂，创建空实体并记录调用
type recordingSpawner struct {
	em      *ecs.EntityManager
	records []spawnRecord
	seasons []string
}

func newRecordingSpawner(em *ecs.EntityManager) *recordingSpawner {
	return &recordingSpawner{em: em}
}

func (s *recordingSpawner) SetSeason(name string) {
	s.seasons = append(s.seasons, name)
}

func (s *recordingSpawner) SpawnObject(group *config.ObjectGroup, variant *config.ObjectVariant, position types.Vec2, cells []types.GridPosition) ecs.EntityID {
	id := s.em.CreateEntity()
	s.records = append(s.records, spawnRecord{
		id:       id,
		group:    group.Name,
		variant:  variant.Sprite,
		position: position,
		cells:    append([]types.GridPosition(nil), cells...),
	})
	return id
}

// testTileSet 每个变体使用不同资源名，便于断言
func testTileSet() config.TileSet {
	return config.TileSet{
		Ground:      "ground",
		Right:       "right",
		Top:         "top",
		Left:        "left",
		Bottom:      "bottom",
		TopRight:    "top_right",
		TopLeft:     "top_left",
		BottomRight: "bottom_right",
		BottomLeft:  "bottom_left",
		RightAlone:  "right_alone",
		TopAlone:    "top_alone",
		LeftAlone:   "left_alone",
		BottomAlone: "bottom_alone",
	}
}

// filledTilemap 创建铺满地面的瓦片地图
func filledTilemap(w, h int) *GroundTilemap {
	m := NewGroundTilemap(w, h)
	m.Fill("ground")
	return m
}
