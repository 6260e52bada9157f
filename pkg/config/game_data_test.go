package config

import (
	"os"
	"strings"
	"testing"
	"testing/fstest"
)

const testSpringYAML = `
name: spring
tiles:
  ground: grass
objectGroups:
  - name: trees
    frequency: 40
    variants:
      - weight: 1
        sprite: oak
        lootTable: wood
`

const testWinterYAML = `
name: winter
tiles:
  ground: snow
`

const testLootYAML = `
tables:
  - name: wood
    entries:
      - item: log
        weight: 1
`

func TestLoadGameData(t *testing.T) {
	fsys := fstest.MapFS{
		"data/world.yaml":          {Data: []byte("world:\n  width: 20\n  height: 16\n  seasons: [spring, winter]\n")},
		"data/seasons/spring.yaml": {Data: []byte(testSpringYAML)},
		"data/seasons/winter.yaml": {Data: []byte(testWinterYAML)},
		"data/loot_tables.yaml":    {Data: []byte(testLootYAML)},
	}

	data, err := LoadGameData(fsys, "data")
	if err != nil {
		t.Fatalf("LoadGameData() error: %v", err)
	}
	if data.Game.World.Width != 20 || data.Game.World.Height != 16 {
		t.Errorf("Unexpected world size %dx%d", data.Game.World.Width, data.Game.World.Height)
	}
	if len(data.Seasons) != 2 || data.Seasons[0].Name != "spring" || data.Seasons[1].Name != "winter" {
		t.Errorf("Seasons should load in configured order, got %d", len(data.Seasons))
	}
	if _, ok := data.Loot.Find("wood"); !ok {
		t.Error("Loot table wood should be loaded")
	}
}

func TestLoadGameDataErrors(t *testing.T) {
	t.Run("缺少季节文件", func(t *testing.T) {
		fsys := fstest.MapFS{
			"data/world.yaml": {Data: []byte("world:\n  seasons: [spring]\n")},
		}
		_, err := LoadGameData(fsys, "data")
		if err == nil || !strings.Contains(err.Error(), "spring") {
			t.Errorf("Expected missing season error, got %v", err)
		}
	})

	t.Run("引用不存在的掉落表", func(t *testing.T) {
		fsys := fstest.MapFS{
			"data/world.yaml":          {Data: []byte("world:\n  seasons: [spring]\n")},
			"data/seasons/spring.yaml": {Data: []byte(testSpringYAML)},
		}
		_, err := LoadGameData(fsys, "data")
		if err == nil || !strings.Contains(err.Error(), "wood") {
			t.Errorf("Expected unknown loot table error, got %v", err)
		}
	})

	t.Run("缺少 world.yaml 使用默认配置", func(t *testing.T) {
		fsys := fstest.MapFS{}
		for _, name := range DefaultGameConfig().World.Seasons {
			fsys["data/seasons/"+name+".yaml"] = &fstest.MapFile{Data: []byte("name: " + name + "\ntiles:\n  ground: g\n")}
		}
		data, err := LoadGameData(fsys, "data")
		if err != nil {
			t.Fatalf("LoadGameData() error: %v", err)
		}
		if data.Game.World.Width != 48 || len(data.Seasons) != 4 {
			t.Errorf("Expected defaults, got width %d and %d seasons", data.Game.World.Width, len(data.Seasons))
		}
	})
}

// TestLoadShippedGameData 仓库自带的 data/ 目录必须能通过校验
func TestLoadShippedGameData(t *testing.T) {
	data, err := LoadGameData(os.DirFS("../.."), "data")
	if err != nil {
		t.Fatalf("LoadGameData(data) error: %v", err)
	}

	want := []string{"spring", "summer", "autumn", "winter"}
	if len(data.Seasons) != len(want) {
		t.Fatalf("Expected %d seasons, got %d", len(want), len(data.Seasons))
	}
	for i, name := range want {
		if data.Seasons[i].Name != name {
			t.Errorf("seasons[%d]: expected %s, got %s", i, name, data.Seasons[i].Name)
		}
	}
	if data.Game.World.SpawnArea < 1 {
		t.Error("Shipped world should keep a spawn safe zone")
	}
}
