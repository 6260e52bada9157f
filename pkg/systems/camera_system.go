package systems

import (
	"github.com/decker502/resourcerun/pkg/components"
	"github.com/decker502/resourcerun/pkg/ecs"
	"github.com/decker502/resourcerun/pkg/utils"
)

const (
	// 默认跟随速度（每秒）
	defaultCameraFollowSpeed = 6.0
)

// CameraSystem 管理镜头跟随玩家
type CameraSystem struct {
	entityManager *ecs.EntityManager
	cameraEntity  ecs.EntityID // 镜头实体ID
}

// NewCameraSystem 创建镜头系统，镜头初始位于 (x, y)
func NewCameraSystem(em *ecs.EntityManager, x, y float64) *CameraSystem {
	cs := &CameraSystem{entityManager: em}

	cs.cameraEntity = em.CreateEntity()
	ecs.AddComponent(em, cs.cameraEntity, &components.CameraComponent{
		X:           x,
		Y:           y,
		TargetX:     x,
		TargetY:     y,
		FollowSpeed: defaultCameraFollowSpeed,
	})

	return cs
}

// Update 把镜头目标设为玩家位置，并平滑靠近
func (cs *CameraSystem) Update(dt float64) {
	camera, ok := ecs.GetComponent[*components.CameraComponent](cs.entityManager, cs.cameraEntity)
	if !ok {
		return
	}

	for _, id := range ecs.GetEntitiesWith2[*components.PlayerComponent, *components.PositionComponent](cs.entityManager) {
		pos, _ := ecs.GetComponent[*components.PositionComponent](cs.entityManager, id)
		camera.TargetX, camera.TargetY = pos.X, pos.Y
		break
	}

	if camera.FollowSpeed <= 0 {
		camera.X, camera.Y = camera.TargetX, camera.TargetY
		return
	}

	t := utils.Clamp(camera.FollowSpeed*dt, 0, 1)
	camera.X = utils.Lerp(camera.X, camera.TargetX, t)
	camera.Y = utils.Lerp(camera.Y, camera.TargetY, t)
}

// SnapTo 立即把镜头移动到 (x, y)（季节切换、传送后使用）
func (cs *CameraSystem) SnapTo(x, y float64) {
	camera, ok := ecs.GetComponent[*components.CameraComponent](cs.entityManager, cs.cameraEntity)
	if !ok {
		return
	}
	camera.X, camera.Y = x, y
	camera.TargetX, camera.TargetY = x, y
}

// Position 返回镜头当前位置
func (cs *CameraSystem) Position() (x, y float64) {
	camera, ok := ecs.GetComponent[*components.CameraComponent](cs.entityManager, cs.cameraEntity)
	if !ok {
		return 0, 0
	}
	return camera.X, camera.Y
}
