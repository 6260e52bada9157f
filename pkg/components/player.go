package components

// Facing 玩家朝向
type Facing int

const (
	FacingRight Facing = iota
	FacingLeft
)

// FallState 坠落动画状态
type FallState int

const (
	FallNone      FallState = iota // 未坠落
	FallShrinking                  // 正在缩小
)

// PlayerComponent 玩家状态
type PlayerComponent struct {
	Facing Facing
	// Frozen 为 true 时忽略输入且速度清零（坠落、季节切换期间）
	Frozen bool
	// Immune 为 true 时不会坠落（季节切换后的保护）
	Immune bool

	Fall      FallState
	FallTimer float64 // 坠落步进累计时间
	Sprinting bool
}

// StaminaComponent 体力
type StaminaComponent struct {
	Current float64
	Max     float64
	Min     float64
	// Fill 用于 HUD 体力条，范围 [0, 1]
	Fill float64
}

// MovementInputComponent 本帧的移动输入
// Horizontal/Vertical 取值 -1、0、1
type MovementInputComponent struct {
	Horizontal float64
	Vertical   float64
	Slow       bool // Shift
	Sprint     bool // Ctrl
	Interact   bool // E：采集面前的物体
}
