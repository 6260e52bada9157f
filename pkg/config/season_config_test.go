package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/decker502/resourcerun/pkg/types"
)

const testSeasonYAML = `name: spring
groundColor: "#5a9e3a"
tiles:
  ground: spring_ground
  right: spring_right
  top: spring_top
  topRight: spring_top_right
objectGroups:
  - name: trees
    frequency: 40
    footprint: [{x: 0, y: 0}, {x: 0, y: 1}]
    offset: {x: 0, y: 0.5}
    lootMultiplier: 2
    variants:
      - weight: 3
        sprite: oak
        colliderSize: {x: 0.6, y: 0.4}
        lootTable: wood
      - weight: 1
        sprite: birch
  - name: empty
    frequency: 1000
`

// TestLoadSeasonConfig 测试季节配置加载
func TestLoadSeasonConfig(t *testing.T) {
	tempDir := t.TempDir()
	testFile := filepath.Join(tempDir, "spring.yaml")
	if err := os.WriteFile(testFile, []byte(testSeasonYAML), 0644); err != nil {
		t.Fatalf("Failed to create test file: %v", err)
	}

	season, err := LoadSeasonConfig(testFile)
	if err != nil {
		t.Fatalf("LoadSeasonConfig() failed: %v", err)
	}

	if season.Name != "spring" {
		t.Errorf("Expected name spring, got %s", season.Name)
	}
	if len(season.ObjectGroups) != 2 {
		t.Fatalf("Expected 2 groups, got %d", len(season.ObjectGroups))
	}

	trees := season.ObjectGroups[0]
	if trees.Frequency != 40 || trees.LootMultiplier != 2 {
		t.Errorf("Unexpected trees group: %+v", trees)
	}
	if len(trees.Footprint) != 2 || trees.Footprint[1] != (types.GridPosition{X: 0, Y: 1}) {
		t.Errorf("Unexpected footprint: %v", trees.Footprint)
	}
	if trees.BasePrefab != "trees" {
		t.Errorf("BasePrefab should default to group name, got %q", trees.BasePrefab)
	}
	if len(trees.Variants) != 2 || trees.Variants[0].LootTable != "wood" {
		t.Errorf("Unexpected variants: %+v", trees.Variants)
	}
	if trees.Variants[0].ColliderSize.X != 0.6 {
		t.Errorf("Unexpected collider size: %+v", trees.Variants[0].ColliderSize)
	}

	empty := season.ObjectGroups[1]
	if len(empty.Footprint) != 1 || empty.Footprint[0] != (types.GridPosition{}) {
		t.Errorf("Default footprint should be origin only, got %v", empty.Footprint)
	}
	if empty.LootMultiplier != 1 {
		t.Errorf("Default loot multiplier should be 1, got %f", empty.LootMultiplier)
	}

	t.Run("load by names", func(t *testing.T) {
		seasons, err := LoadSeasons(tempDir, []string{"spring"})
		if err != nil {
			t.Fatalf("LoadSeasons() failed: %v", err)
		}
		if len(seasons) != 1 || seasons[0].Name != "spring" {
			t.Errorf("Unexpected seasons: %v", seasons)
		}

		if _, err := LoadSeasons(tempDir, []string{"spring", "summer"}); err == nil {
			t.Error("Expected error for missing summer.yaml")
		}
	})
}

// TestTileSetFallback 未配置的变体回退到普通地面
func TestTileSetFallback(t *testing.T) {
	ts := TileSet{Ground: "g", Right: "r", TopRight: "tr"}

	tests := []struct {
		variant types.TileVariant
		want    string
	}{
		{types.TileGround, "g"},
		{types.TileRight, "r"},
		{types.TileTopRight, "tr"},
		{types.TileLeftAlone, "g"},
	}
	for _, tt := range tests {
		if got := ts.Tile(tt.variant); got != tt.want {
			t.Errorf("Tile(%s) = %q, want %q", tt.variant, got, tt.want)
		}
	}
}

// TestParseSeasonConfigValidation 测试非法季节配置
func TestParseSeasonConfigValidation(t *testing.T) {
	tests := []struct {
		name    string
		yaml    string
		wantErr string
	}{
		{"missing name", "tiles: {ground: g}", "name is required"},
		{"missing ground", "name: s", "tiles.ground"},
		{"frequency too high", "name: s\ntiles: {ground: g}\nobjectGroups: [{name: a, frequency: 1001}]", "frequency"},
		{"negative weight", "name: s\ntiles: {ground: g}\nobjectGroups: [{name: a, variants: [{weight: -1}]}]", "weight"},
		{"unnamed group", "name: s\ntiles: {ground: g}\nobjectGroups: [{frequency: 5}]", "name is required"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseSeasonConfig([]byte(tt.yaml))
			if err == nil {
				t.Fatal("Expected error, got nil")
			}
			if !strings.Contains(err.Error(), tt.wantErr) {
				t.Errorf("Expected error containing %q, got %v", tt.wantErr, err)
			}
		})
	}
}
