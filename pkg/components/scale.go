package components

// ScaleComponent 存储实体级别的缩放因子
// 用于坠落时的缩小动画和掉落物的浮动缩放
type ScaleComponent struct {
	// ScaleX X轴缩放因子（1.0 = 原始大小）
	ScaleX float64

	// ScaleY Y轴缩放因子（1.0 = 原始大小）
	ScaleY float64
}

// Set 等比设置缩放
func (s *ScaleComponent) Set(v float64) {
	s.ScaleX = v
	s.ScaleY = v
}
