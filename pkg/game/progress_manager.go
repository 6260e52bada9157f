package game

import (
	"fmt"
	"log"

	"github.com/decker502/resourcerun/pkg/types"
	"github.com/quasilyte/gdata/v2"
	"gopkg.in/yaml.v3"
)

// PlayerProgress 跨局保存的玩家进度
// 只记录统计数据，不保存世界状态
type PlayerProgress struct {
	RunsPlayed      int            `yaml:"runsPlayed"`      // 开始过的局数
	RunsFinished    int            `yaml:"runsFinished"`    // 走完所有季节的局数
	BestSeasonIndex int            `yaml:"bestSeasonIndex"` // 到达过的最远季节（从 0 开始），-1 表示无记录
	BestSeasonName  string         `yaml:"bestSeasonName"`
	ItemsGathered   map[string]int `yaml:"itemsGathered"` // 物品名 -> 累计拾取数量
	LastSeed        int64          `yaml:"lastSeed"`      // 最近一局的随机种子
}

// DefaultProgress 返回空进度
func DefaultProgress() *PlayerProgress {
	return &PlayerProgress{
		BestSeasonIndex: -1,
		ItemsGathered:   make(map[string]int),
	}
}

// ProgressManager 进度管理器
// 负责玩家进度的加载、保存和内存管理
type ProgressManager struct {
	gdataManager *gdata.Manager // gdata 跨平台存储管理器，可为 nil（降级模式）
	progress     *PlayerProgress
}

// 存储路径常量
const (
	progressObject   = "progress"
	progressProperty = "player"
)

// NewProgressManager 创建新的进度管理器实例
//
// 参数：
//   - gdataManager: gdata 跨平台存储管理器，可为 nil（降级模式，仅内存进度）
func NewProgressManager(gdataManager *gdata.Manager) *ProgressManager {
	pm := &ProgressManager{
		gdataManager: gdataManager,
		progress:     DefaultProgress(),
	}

	if err := pm.Load(); err != nil {
		// 加载失败不是致命错误，从空进度开始
		log.Printf("[ProgressManager] Warning: Failed to load progress: %v (starting fresh)", err)
	}

	return pm
}

// Load 从 gdata 加载进度
func (pm *ProgressManager) Load() error {
	if pm.gdataManager == nil {
		pm.progress = DefaultProgress()
		return nil
	}

	if !pm.gdataManager.ObjectPropExists(progressObject, progressProperty) {
		pm.progress = DefaultProgress()
		return nil
	}

	data, err := pm.gdataManager.LoadObjectProp(progressObject, progressProperty)
	if err != nil {
		pm.progress = DefaultProgress()
		return fmt.Errorf("failed to load progress: %w", err)
	}

	loaded := DefaultProgress()
	if err := yaml.Unmarshal(data, loaded); err != nil {
		pm.progress = DefaultProgress()
		return fmt.Errorf("failed to unmarshal progress: %w", err)
	}
	if loaded.ItemsGathered == nil {
		loaded.ItemsGathered = make(map[string]int)
	}

	pm.progress = loaded
	log.Printf("[ProgressManager] Progress loaded: %d runs, best season %q", loaded.RunsPlayed, loaded.BestSeasonName)
	return nil
}

// Save 保存进度到 gdata
// gdataManager 为 nil 时什么也不做
func (pm *ProgressManager) Save() error {
	if pm.gdataManager == nil {
		return nil
	}

	data, err := yaml.Marshal(pm.progress)
	if err != nil {
		return fmt.Errorf("failed to marshal progress: %w", err)
	}

	if err := pm.gdataManager.SaveObjectProp(progressObject, progressProperty, data); err != nil {
		return fmt.Errorf("failed to save progress: %w", err)
	}

	log.Printf("[ProgressManager] Progress saved")
	return nil
}

// GetProgress 获取当前进度
func (pm *ProgressManager) GetProgress() *PlayerProgress {
	return pm.progress
}

// RecordRunStart 记录开始新的一局
func (pm *ProgressManager) RecordRunStart(seed int64) {
	pm.progress.RunsPlayed++
	pm.progress.LastSeed = seed
}

// RecordRunFinished 记录走完所有季节
func (pm *ProgressManager) RecordRunFinished() {
	pm.progress.RunsFinished++
}

// RecordSeasonReached 记录到达的季节
// 返回 true 表示刷新了最远记录
func (pm *ProgressManager) RecordSeasonReached(index int, name string) bool {
	if index <= pm.progress.BestSeasonIndex {
		return false
	}
	pm.progress.BestSeasonIndex = index
	pm.progress.BestSeasonName = name
	return true
}

// RecordItems 累计拾取的物品
func (pm *ProgressManager) RecordItems(stack types.ItemStack) {
	if stack.IsEmpty() {
		return
	}
	pm.progress.ItemsGathered[stack.Item] += stack.Count
}
