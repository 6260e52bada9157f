package config

// 窗口与逻辑屏幕尺寸
// 逻辑尺寸独立于实际窗口大小，Ebitengine 负责缩放
const (
	GameWindowWidth  = 960
	GameWindowHeight = 720
	GameWindowTitle  = "Resource Run"
)
