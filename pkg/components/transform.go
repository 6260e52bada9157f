package components

// PositionComponent 实体在世界空间中的位置（格坐标，y 轴向上）
type PositionComponent struct {
	X float64
	Y float64
}

// VelocityComponent 实体速度（格/秒）
type VelocityComponent struct {
	VX float64
	VY float64
}
