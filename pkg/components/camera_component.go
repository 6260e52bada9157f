package components

// CameraComponent 镜头位置（世界坐标，视口中心）
// 镜头跟随玩家，按 FollowSpeed 平滑靠近目标
type CameraComponent struct {
	X, Y float64

	// TargetX/TargetY 本帧的跟随目标（世界坐标）
	TargetX, TargetY float64

	// FollowSpeed 每秒靠近目标的比例，<= 0 时直接对齐
	FollowSpeed float64
}
