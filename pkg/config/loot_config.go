package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// LootTableSet 掉落表集合（data/loot_tables.yaml）
type LootTableSet struct {
	Tables []LootTable `yaml:"tables" json:"tables"`
}

// LootTable 一张掉落表：抽取 Rolls 次，每次按权重选出一个条目
type LootTable struct {
	Name    string      `yaml:"name" json:"name"`
	Rolls   int         `yaml:"rolls" json:"rolls"`
	Entries []LootEntry `yaml:"entries" json:"entries"`
}

// LootEntry 掉落表条目
type LootEntry struct {
	Item   string  `yaml:"item" json:"item"`
	Weight float64 `yaml:"weight" json:"weight"`
	Min    int     `yaml:"min" json:"min"`
	Max    int     `yaml:"max" json:"max"`
}

// Find 按名称查找掉落表
func (s *LootTableSet) Find(name string) (*LootTable, bool) {
	if s == nil {
		return nil, false
	}
	for i := range s.Tables {
		if s.Tables[i].Name == name {
			return &s.Tables[i], true
		}
	}
	return nil, false
}

// LoadLootTables 从YAML文件加载掉落表
func LoadLootTables(filePath string) (*LootTableSet, error) {
	data, err := os.ReadFile(filePath)
	if err != nil {
		return nil, fmt.Errorf("failed to read loot tables file %s: %w", filePath, err)
	}

	set, err := ParseLootTables(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", filePath, err)
	}
	return set, nil
}

// ParseLootTables 解析YAML数据为掉落表集合
func ParseLootTables(data []byte) (*LootTableSet, error) {
	var set LootTableSet
	if err := yaml.Unmarshal(data, &set); err != nil {
		return nil, fmt.Errorf("failed to parse loot tables YAML: %w", err)
	}

	for i := range set.Tables {
		table := &set.Tables[i]
		if table.Rolls == 0 {
			table.Rolls = 1
		}
		for j := range table.Entries {
			entry := &table.Entries[j]
			if entry.Min == 0 {
				entry.Min = 1
			}
			if entry.Max < entry.Min {
				entry.Max = entry.Min
			}
		}
	}

	if err := validateLootTables(&set); err != nil {
		return nil, fmt.Errorf("invalid loot tables: %w", err)
	}

	return &set, nil
}

// validateLootTables 验证掉落表
func validateLootTables(set *LootTableSet) error {
	seen := make(map[string]bool)
	for i, table := range set.Tables {
		if table.Name == "" {
			return fmt.Errorf("tables[%d]: name is required", i)
		}
		if seen[table.Name] {
			return fmt.Errorf("duplicate loot table name: %s", table.Name)
		}
		seen[table.Name] = true

		if table.Rolls < 0 {
			return fmt.Errorf("table %s: rolls must be >= 0, got %d", table.Name, table.Rolls)
		}

		total := 0.0
		for j, entry := range table.Entries {
			if entry.Item == "" {
				return fmt.Errorf("table %s: entries[%d] item is required", table.Name, j)
			}
			if entry.Weight < 0 {
				return fmt.Errorf("table %s: entries[%d] weight must be >= 0", table.Name, j)
			}
			total += entry.Weight
		}
		if len(table.Entries) > 0 && total <= 0 {
			return fmt.Errorf("table %s: at least one entry must have positive weight", table.Name)
		}
	}
	return nil
}

// ValidateLootReferences 检查季节配置中引用的掉落表是否都存在
func ValidateLootReferences(seasons []*SeasonConfig, loot *LootTableSet) error {
	for _, season := range seasons {
		for _, group := range season.ObjectGroups {
			for _, variant := range group.Variants {
				if variant.LootTable == "" {
					continue
				}
				if _, ok := loot.Find(variant.LootTable); !ok {
					return fmt.Errorf("season %s group %s references unknown loot table %q",
						season.Name, group.Name, variant.LootTable)
				}
			}
		}
	}
	return nil
}
