package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

// TestLoadGameConfig 测试游戏全局配置加载
func TestLoadGameConfig(t *testing.T) {
	t.Run("valid config", func(t *testing.T) {
		tempDir := t.TempDir()
		testFile := filepath.Join(tempDir, "world.yaml")

		validYAML := `world:
  width: 32
  height: 24
  spawnArea: 3
  excludedEdgeArea: 2
  fadeDelay: 0.25
  seasons: [spring, winter]
player:
  movementSpeed: 5
  shiftSpeed: 2.5
  sprintSpeed: 9
  maxStamina: 50
  minStamina: 5
  staminaConsumption: 20
  staminaRegeneration: 8
  fallSpeed: 0.5
droppedItem:
  despawnTime: 12
inventory:
  slots: 6
`
		if err := os.WriteFile(testFile, []byte(validYAML), 0644); err != nil {
			t.Fatalf("Failed to create test file: %v", err)
		}

		cfg, err := LoadGameConfig(testFile)
		if err != nil {
			t.Fatalf("LoadGameConfig() failed: %v", err)
		}

		if cfg.World.Width != 32 || cfg.World.Height != 24 {
			t.Errorf("Expected world 32x24, got %dx%d", cfg.World.Width, cfg.World.Height)
		}
		if cfg.World.SpawnArea != 3 || cfg.World.ExcludedEdgeArea != 2 {
			t.Errorf("Unexpected spawn/edge area: %d/%d", cfg.World.SpawnArea, cfg.World.ExcludedEdgeArea)
		}
		if len(cfg.World.Seasons) != 2 || cfg.World.Seasons[1] != "winter" {
			t.Errorf("Unexpected seasons: %v", cfg.World.Seasons)
		}
		if cfg.Player.MinStamina != 5 || cfg.Player.FallSpeed != 0.5 {
			t.Errorf("Unexpected player config: %+v", cfg.Player)
		}
		if cfg.DroppedItem.DespawnTime != 12 {
			t.Errorf("Expected despawnTime 12, got %f", cfg.DroppedItem.DespawnTime)
		}
		// 未配置字段应使用默认值
		if cfg.DroppedItem.PickupRadius != 0.75 {
			t.Errorf("Expected default pickupRadius 0.75, got %f", cfg.DroppedItem.PickupRadius)
		}
		if cfg.Inventory.Slots != 6 || cfg.Inventory.MaxStack != 64 {
			t.Errorf("Unexpected inventory config: %+v", cfg.Inventory)
		}
	})

	t.Run("missing file", func(t *testing.T) {
		if _, err := LoadGameConfig(filepath.Join(t.TempDir(), "nope.yaml")); err == nil {
			t.Error("Expected error for missing file")
		}
	})
}

// TestDefaultGameConfig 默认配置必须能通过验证
func TestDefaultGameConfig(t *testing.T) {
	cfg := DefaultGameConfig()
	if err := validateGameConfig(cfg); err != nil {
		t.Fatalf("Default config is invalid: %v", err)
	}
	if len(cfg.World.Seasons) != 4 {
		t.Errorf("Expected 4 default seasons, got %d", len(cfg.World.Seasons))
	}
}

// TestParseGameConfigValidation 测试非法配置
func TestParseGameConfigValidation(t *testing.T) {
	tests := []struct {
		name    string
		yaml    string
		wantErr string
	}{
		{"negative size", "world: {width: -1}", "world size"},
		{"negative spawn area", "world: {spawnArea: -2}", "spawnArea"},
		{"min stamina above max", "player: {maxStamina: 10, minStamina: 10}", "minStamina"},
		{"fall speed too high", "player: {fallSpeed: 2}", "fallSpeed"},
		{"empty season name", "world: {seasons: [spring, \"\"]}", "seasons[1]"},
		{"broken yaml", "world: [", "parse"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseGameConfig([]byte(tt.yaml))
			if err == nil {
				t.Fatal("Expected error, got nil")
			}
			if !strings.Contains(err.Error(), tt.wantErr) {
				t.Errorf("Expected error containing %q, got %v", tt.wantErr, err)
			}
		})
	}
}
