package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/decker502/resourcerun/pkg/types"
	"gopkg.in/yaml.v3"
)

// SeasonConfig 季节配置（data/seasons/<name>.yaml）
// 一个季节包含地面瓦片集和物体组，两次生成之间整体替换
type SeasonConfig struct {
	Name         string        `yaml:"name" json:"name" jsonschema:"required"`
	GroundColor  string        `yaml:"groundColor" json:"groundColor,omitempty"` // 地面渲染颜色，如 "#5a9e3a"
	EdgeColor    string        `yaml:"edgeColor" json:"edgeColor,omitempty"`     // 边缘瓦片渲染颜色
	Tiles        TileSet       `yaml:"tiles" json:"tiles" jsonschema:"required"`
	ObjectGroups []ObjectGroup `yaml:"objectGroups" json:"objectGroups"`
}

// TileSet 地面瓦片资源集合：普通地面 + 12 个方向变体
type TileSet struct {
	Ground      string `yaml:"ground" json:"ground" jsonschema:"required"`
	Right       string `yaml:"right" json:"right"`
	Top         string `yaml:"top" json:"top"`
	Left        string `yaml:"left" json:"left"`
	Bottom      string `yaml:"bottom" json:"bottom"`
	TopRight    string `yaml:"topRight" json:"topRight"`
	TopLeft     string `yaml:"topLeft" json:"topLeft"`
	BottomRight string `yaml:"bottomRight" json:"bottomRight"`
	BottomLeft  string `yaml:"bottomLeft" json:"bottomLeft"`
	RightAlone  string `yaml:"rightAlone" json:"rightAlone"`
	TopAlone    string `yaml:"topAlone" json:"topAlone"`
	LeftAlone   string `yaml:"leftAlone" json:"leftAlone"`
	BottomAlone string `yaml:"bottomAlone" json:"bottomAlone"`
}

// ObjectGroup 物体组：描述放置什么、多密集、在哪些变体中选择
type ObjectGroup struct {
	Name           string               `yaml:"name" json:"name" jsonschema:"required"`
	BasePrefab     string               `yaml:"basePrefab" json:"basePrefab"`                                        // 基础模板，如 "tree"、"rock"
	Variants       []ObjectVariant      `yaml:"variants" json:"variants"`                                            // 为空时整个组被跳过
	Frequency      int                  `yaml:"frequency" json:"frequency" jsonschema:"minimum=0,maximum=1000"`      // 每格生成概率（千分比）
	Footprint      []types.GridPosition `yaml:"footprint" json:"footprint,omitempty"`                                // 相对放置原点占用的格子，默认 [(0,0)]
	Offset         types.Vec2           `yaml:"offset" json:"offset,omitempty"`                                      // 世界空间渲染偏移
	LootMultiplier float64              `yaml:"lootMultiplier" json:"lootMultiplier,omitempty" jsonschema:"minimum=0"` // 掉落倍率，默认 1
}

// ObjectVariant 物体组内的一个外观/行为变体
type ObjectVariant struct {
	Weight       float64    `yaml:"weight" json:"weight" jsonschema:"minimum=0"`
	Sprite       string     `yaml:"sprite" json:"sprite"`
	Color        string     `yaml:"color" json:"color,omitempty"` // 调试渲染颜色
	ColliderSize types.Vec2 `yaml:"colliderSize" json:"colliderSize,omitempty"`
	LootTable    string     `yaml:"lootTable" json:"lootTable,omitempty"` // 掉落表名称，可为空
}

// Tile 返回指定变体对应的瓦片资源
// 变体资源未配置时回退到普通地面
func (ts TileSet) Tile(v types.TileVariant) string {
	var tile string
	switch v {
	case types.TileRight:
		tile = ts.Right
	case types.TileTop:
		tile = ts.Top
	case types.TileLeft:
		tile = ts.Left
	case types.TileBottom:
		tile = ts.Bottom
	case types.TileTopRight:
		tile = ts.TopRight
	case types.TileTopLeft:
		tile = ts.TopLeft
	case types.TileBottomRight:
		tile = ts.BottomRight
	case types.TileBottomLeft:
		tile = ts.BottomLeft
	case types.TileRightAlone:
		tile = ts.RightAlone
	case types.TileTopAlone:
		tile = ts.TopAlone
	case types.TileLeftAlone:
		tile = ts.LeftAlone
	case types.TileBottomAlone:
		tile = ts.BottomAlone
	}
	if tile == "" {
		return ts.Ground
	}
	return tile
}

// LoadSeasonConfig 从YAML文件加载季节配置
func LoadSeasonConfig(filePath string) (*SeasonConfig, error) {
	data, err := os.ReadFile(filePath)
	if err != nil {
		return nil, fmt.Errorf("failed to read season config file %s: %w", filePath, err)
	}

	season, err := ParseSeasonConfig(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", filePath, err)
	}
	return season, nil
}

// LoadSeasons 按顺序加载 dir 目录下的多个季节配置
// 参数:
//   - dir: 季节配置目录，如 "data/seasons"
//   - names: 季节名称（不含扩展名），顺序即季节推进顺序
func LoadSeasons(dir string, names []string) ([]*SeasonConfig, error) {
	seasons := make([]*SeasonConfig, 0, len(names))
	for _, name := range names {
		season, err := LoadSeasonConfig(filepath.Join(dir, name+".yaml"))
		if err != nil {
			return nil, err
		}
		seasons = append(seasons, season)
	}
	return seasons, nil
}

// ParseSeasonConfig 解析YAML数据为季节配置
func ParseSeasonConfig(data []byte) (*SeasonConfig, error) {
	var season SeasonConfig
	if err := yaml.Unmarshal(data, &season); err != nil {
		return nil, fmt.Errorf("failed to parse season config YAML: %w", err)
	}

	applySeasonDefaults(&season)

	if err := validateSeasonConfig(&season); err != nil {
		return nil, fmt.Errorf("invalid season config: %w", err)
	}

	return &season, nil
}

// applySeasonDefaults 为缺失的可选字段设置默认值
func applySeasonDefaults(season *SeasonConfig) {
	for i := range season.ObjectGroups {
		group := &season.ObjectGroups[i]
		// 未配置占用格子时只占用放置原点
		if len(group.Footprint) == 0 {
			group.Footprint = []types.GridPosition{{X: 0, Y: 0}}
		}
		if group.LootMultiplier == 0 {
			group.LootMultiplier = 1
		}
		if group.BasePrefab == "" {
			group.BasePrefab = group.Name
		}
	}
}

// validateSeasonConfig 验证季节配置
func validateSeasonConfig(season *SeasonConfig) error {
	if season.Name == "" {
		return fmt.Errorf("season name is required")
	}
	if season.Tiles.Ground == "" {
		return fmt.Errorf("tiles.ground is required")
	}

	for i, group := range season.ObjectGroups {
		if group.Name == "" {
			return fmt.Errorf("objectGroups[%d]: name is required", i)
		}
		if group.Frequency < 0 || group.Frequency > 1000 {
			return fmt.Errorf("objectGroups[%d] (%s): frequency must be between 0 and 1000, got %d", i, group.Name, group.Frequency)
		}
		if group.LootMultiplier < 0 {
			return fmt.Errorf("objectGroups[%d] (%s): lootMultiplier must be >= 0, got %f", i, group.Name, group.LootMultiplier)
		}
		for j, variant := range group.Variants {
			if variant.Weight < 0 {
				return fmt.Errorf("objectGroups[%d] (%s): variants[%d] weight must be >= 0, got %f", i, group.Name, j, variant.Weight)
			}
		}
		// 变体为空是允许的：该组在生成时被跳过
	}

	return nil
}
