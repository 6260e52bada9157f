package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// GameConfig 游戏全局配置（data/world.yaml）
// 包含世界尺寸、消退参数、玩家移动参数、掉落物与背包参数
type GameConfig struct {
	World       WorldConfig       `yaml:"world" json:"world"`
	Player      PlayerConfig      `yaml:"player" json:"player"`
	DroppedItem DroppedItemConfig `yaml:"droppedItem" json:"droppedItem"`
	Inventory   InventoryConfig   `yaml:"inventory" json:"inventory"`
}

// WorldConfig 世界生成与消退配置
type WorldConfig struct {
	Width            int      `yaml:"width" json:"width"`                       // 世界宽度（格）
	Height           int      `yaml:"height" json:"height"`                     // 世界高度（格）
	SpawnArea        int      `yaml:"spawnArea" json:"spawnArea"`               // 出生点周围禁止生成物体的半径
	ExcludedEdgeArea int      `yaml:"excludedEdgeArea" json:"excludedEdgeArea"` // 世界四周禁止生成物体的宽度
	FadeDelay        float64  `yaml:"fadeDelay" json:"fadeDelay"`               // 每移除一块边缘瓦片的间隔（秒）
	FadeStartDelay   float64  `yaml:"fadeStartDelay" json:"fadeStartDelay"`     // 生成完成后开始消退前的等待（秒）
	Seasons          []string `yaml:"seasons" json:"seasons"`                   // 季节配置文件顺序，如 ["spring", "summer"]
}

// PlayerConfig 玩家移动与体力配置
type PlayerConfig struct {
	MovementSpeed       float64 `yaml:"movementSpeed" json:"movementSpeed"`             // 普通移动速度（WASD）
	ShiftSpeed          float64 `yaml:"shiftSpeed" json:"shiftSpeed"`                   // 慢速移动速度（Shift + WASD）
	SprintSpeed         float64 `yaml:"sprintSpeed" json:"sprintSpeed"`                 // 冲刺速度（Ctrl + WASD），消耗体力
	MaxStamina          float64 `yaml:"maxStamina" json:"maxStamina"`                   // 体力上限
	MinStamina          float64 `yaml:"minStamina" json:"minStamina"`                   // 体力下限（低于 min+0.1 不能冲刺）
	StaminaConsumption  float64 `yaml:"staminaConsumption" json:"staminaConsumption"`   // 冲刺每秒消耗
	StaminaRegeneration float64 `yaml:"staminaRegeneration" json:"staminaRegeneration"` // 非冲刺每秒恢复
	FallSpeed           float64 `yaml:"fallSpeed" json:"fallSpeed"`                     // 坠落动画速度 (0.1 ~ 1.0)
}

// DroppedItemConfig 掉落物配置
type DroppedItemConfig struct {
	DespawnTime  float64 `yaml:"despawnTime" json:"despawnTime"`   // 掉落物存在时间（秒）
	PickupRadius float64 `yaml:"pickupRadius" json:"pickupRadius"` // 拾取半径（格）
}

// InventoryConfig 背包配置
type InventoryConfig struct {
	Slots    int `yaml:"slots" json:"slots"`       // 格子数量
	MaxStack int `yaml:"maxStack" json:"maxStack"` // 单格最大堆叠数量
}

// LoadGameConfig 从YAML文件加载游戏全局配置
func LoadGameConfig(filePath string) (*GameConfig, error) {
	data, err := os.ReadFile(filePath)
	if err != nil {
		return nil, fmt.Errorf("failed to read game config file %s: %w", filePath, err)
	}

	cfg, err := ParseGameConfig(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", filePath, err)
	}
	return cfg, nil
}

// ParseGameConfig 解析YAML数据为游戏全局配置（用于嵌入资源）
func ParseGameConfig(data []byte) (*GameConfig, error) {
	var cfg GameConfig
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse game config YAML: %w", err)
	}

	applyGameDefaults(&cfg)

	if err := validateGameConfig(&cfg); err != nil {
		return nil, fmt.Errorf("invalid game config: %w", err)
	}

	return &cfg, nil
}

// DefaultGameConfig 返回默认配置（未提供 world.yaml 时使用）
func DefaultGameConfig() *GameConfig {
	cfg := &GameConfig{}
	applyGameDefaults(cfg)
	return cfg
}

// applyGameDefaults 为缺失的可选字段设置默认值
func applyGameDefaults(cfg *GameConfig) {
	w := &cfg.World
	if w.Width == 0 {
		w.Width = 48
	}
	if w.Height == 0 {
		w.Height = 48
	}
	if w.FadeDelay == 0 {
		w.FadeDelay = 0.5
	}
	if len(w.Seasons) == 0 {
		w.Seasons = []string{"spring", "summer", "autumn", "winter"}
	}
	// SpawnArea、ExcludedEdgeArea、FadeStartDelay 默认为 0，无需处理

	p := &cfg.Player
	if p.MovementSpeed == 0 {
		p.MovementSpeed = 4
	}
	if p.ShiftSpeed == 0 {
		p.ShiftSpeed = 2
	}
	if p.SprintSpeed == 0 {
		p.SprintSpeed = 7
	}
	if p.MaxStamina == 0 {
		p.MaxStamina = 100
	}
	if p.StaminaConsumption == 0 {
		p.StaminaConsumption = 25
	}
	if p.StaminaRegeneration == 0 {
		p.StaminaRegeneration = 10
	}
	if p.FallSpeed == 0 {
		p.FallSpeed = 0.25
	}

	if cfg.DroppedItem.DespawnTime == 0 {
		cfg.DroppedItem.DespawnTime = 30
	}
	if cfg.DroppedItem.PickupRadius == 0 {
		cfg.DroppedItem.PickupRadius = 0.75
	}

	if cfg.Inventory.Slots == 0 {
		cfg.Inventory.Slots = 12
	}
	if cfg.Inventory.MaxStack == 0 {
		cfg.Inventory.MaxStack = 64
	}
}

// validateGameConfig 验证配置的合法性
func validateGameConfig(cfg *GameConfig) error {
	w := cfg.World
	if w.Width < 1 || w.Height < 1 {
		return fmt.Errorf("world size must be positive, got %dx%d", w.Width, w.Height)
	}
	if w.SpawnArea < 0 {
		return fmt.Errorf("world.spawnArea must be >= 0, got %d", w.SpawnArea)
	}
	if w.ExcludedEdgeArea < 0 {
		return fmt.Errorf("world.excludedEdgeArea must be >= 0, got %d", w.ExcludedEdgeArea)
	}
	if w.FadeDelay < 0 {
		return fmt.Errorf("world.fadeDelay must be >= 0, got %f", w.FadeDelay)
	}
	if w.FadeStartDelay < 0 {
		return fmt.Errorf("world.fadeStartDelay must be >= 0, got %f", w.FadeStartDelay)
	}
	for i, name := range w.Seasons {
		if name == "" {
			return fmt.Errorf("world.seasons[%d] cannot be empty", i)
		}
	}

	p := cfg.Player
	if p.MinStamina < 0 || p.MinStamina >= p.MaxStamina {
		return fmt.Errorf("player.minStamina must be in [0, maxStamina), got %f (max %f)", p.MinStamina, p.MaxStamina)
	}
	if p.FallSpeed < 0.1 || p.FallSpeed > 1 {
		return fmt.Errorf("player.fallSpeed must be between 0.1 and 1, got %f", p.FallSpeed)
	}
	if p.MovementSpeed < 0 || p.ShiftSpeed < 0 || p.SprintSpeed < 0 {
		return fmt.Errorf("player speeds must be >= 0")
	}

	if cfg.DroppedItem.DespawnTime < 0 {
		return fmt.Errorf("droppedItem.despawnTime must be >= 0, got %f", cfg.DroppedItem.DespawnTime)
	}

	if cfg.Inventory.Slots < 1 || cfg.Inventory.MaxStack < 1 {
		return fmt.Errorf("inventory slots and maxStack must be positive")
	}

	return nil
}
