package components

// TimerComponent 通用计时器组件
// 用于处理需要时间延迟的行为（如坠落动画步进、掉落物浮动步进）
type TimerComponent struct {
	Name        string  // 计时器名称，如 "fall_step"
	TargetTime  float64 // 目标时间（秒）
	CurrentTime float64 // 当前已过时间（秒）
	IsReady     bool    // 计时器是否已完成
}

// Tick 推进计时器，返回本次推进中完成的周期数
// 完成后 CurrentTime 保留余量，适合固定步长动画
func (t *TimerComponent) Tick(deltaTime float64) int {
	if t.TargetTime <= 0 {
		t.IsReady = true
		return 1
	}
	t.CurrentTime += deltaTime
	steps := 0
	for t.CurrentTime >= t.TargetTime {
		t.CurrentTime -= t.TargetTime
		steps++
	}
	t.IsReady = steps > 0
	return steps
}

// Reset 重置计时器
func (t *TimerComponent) Reset() {
	t.CurrentTime = 0
	t.IsReady = false
}
