package config

import (
	"errors"
	"fmt"
	"io/fs"
	"log"
	"path"
)

// GameData 一局游戏需要的全部配置
type GameData struct {
	Game    *GameConfig
	Seasons []*SeasonConfig
	Loot    *LootTableSet
}

// LoadGameData 从文件系统加载全部游戏配置
//
// 目录结构:
//
//	<root>/world.yaml           可选，缺失时使用默认配置
//	<root>/seasons/<name>.yaml  按 world.seasons 的顺序加载
//	<root>/loot_tables.yaml     可选
//
// fsys 可以是嵌入资源（embedded.FS()）或 os.DirFS。
func LoadGameData(fsys fs.FS, root string) (*GameData, error) {
	data := &GameData{}

	worldPath := path.Join(root, "world.yaml")
	raw, err := fs.ReadFile(fsys, worldPath)
	switch {
	case errors.Is(err, fs.ErrNotExist):
		log.Printf("[Config] %s not found, using defaults", worldPath)
		data.Game = DefaultGameConfig()
	case err != nil:
		return nil, fmt.Errorf("failed to read %s: %w", worldPath, err)
	default:
		if data.Game, err = ParseGameConfig(raw); err != nil {
			return nil, fmt.Errorf("%s: %w", worldPath, err)
		}
	}

	for _, name := range data.Game.World.Seasons {
		seasonPath := path.Join(root, "seasons", name+".yaml")
		raw, err := fs.ReadFile(fsys, seasonPath)
		if err != nil {
			return nil, fmt.Errorf("failed to read season %s: %w", name, err)
		}
		season, err := ParseSeasonConfig(raw)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", seasonPath, err)
		}
		data.Seasons = append(data.Seasons, season)
	}

	lootPath := path.Join(root, "loot_tables.yaml")
	raw, err = fs.ReadFile(fsys, lootPath)
	switch {
	case errors.Is(err, fs.ErrNotExist):
		data.Loot = &LootTableSet{}
	case err != nil:
		return nil, fmt.Errorf("failed to read %s: %w", lootPath, err)
	default:
		if data.Loot, err = ParseLootTables(raw); err != nil {
			return nil, fmt.Errorf("%s: %w", lootPath, err)
		}
	}

	if err := ValidateLootReferences(data.Seasons, data.Loot); err != nil {
		return nil, err
	}

	log.Printf("[Config] Loaded %d seasons, %d loot tables", len(data.Seasons), len(data.Loot.Tables))
	return data, nil
}
