package game

// GameState 一局游戏的运行状态
// 由局内场景持有，各系统的回调通过它累计统计数据
type GameState struct {
	Seed    int64   // 本局随机种子
	Elapsed float64 // 本局进行时间（秒），暂停和结束后不再累计

	IsPaused   bool
	IsGameOver bool

	TilesRemoved    int // 消退删除的瓦片数
	ObjectsGathered int // 采集的物体数
	ItemsPicked     int // 拾取的物品总数
}

// NewGameState 创建一局新的游戏状态
func NewGameState(seed int64) *GameState {
	return &GameState{Seed: seed}
}

// IsRunning 游戏是否在进行中（未暂停且未结束）
func (gs *GameState) IsRunning() bool {
	return !gs.IsPaused && !gs.IsGameOver
}

// Tick 累计游戏时间
func (gs *GameState) Tick(deltaTime float64) {
	if gs.IsRunning() {
		gs.Elapsed += deltaTime
	}
}

// TogglePause 切换暂停状态，游戏结束后不能暂停
func (gs *GameState) TogglePause() {
	if gs.IsGameOver {
		return
	}
	gs.IsPaused = !gs.IsPaused
}

// EndRun 结束本局
func (gs *GameState) EndRun() {
	gs.IsGameOver = true
	gs.IsPaused = false
}

// RecordTileRemoved 记录一块瓦片被删除
func (gs *GameState) RecordTileRemoved() {
	gs.TilesRemoved++
}

// RecordGathered 记录一次采集
func (gs *GameState) RecordGathered() {
	gs.ObjectsGathered++
}

// RecordPickup 记录拾取的物品数量
func (gs *GameState) RecordPickup(count int) {
	gs.ItemsPicked += count
}
