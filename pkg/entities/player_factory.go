package entities

import (
	"image/color"

	"github.com/decker502/resourcerun/pkg/components"
	"github.com/decker502/resourcerun/pkg/config"
	"github.com/decker502/resourcerun/pkg/ecs"
)

var playerColor = color.RGBA{R: 0xd9, G: 0x4f, B: 0x3d, A: 0xff}

// NewPlayerEntity 创建玩家实体
// 玩家出生时体力为满
func NewPlayerEntity(em *ecs.EntityManager, x, y float64, cfg config.PlayerConfig) ecs.EntityID {
	id := em.CreateEntity()

	em.AddComponent(id, &components.PositionComponent{X: x, Y: y})
	em.AddComponent(id, &components.VelocityComponent{})
	em.AddComponent(id, &components.ScaleComponent{ScaleX: 1, ScaleY: 1})
	em.AddComponent(id, &components.SpriteComponent{
		Name:   "player",
		Color:  playerColor,
		Width:  0.8,
		Height: 0.8,
	})
	em.AddComponent(id, &components.PlayerComponent{Facing: components.FacingRight})
	em.AddComponent(id, &components.StaminaComponent{
		Current: cfg.MaxStamina,
		Max:     cfg.MaxStamina,
		Min:     cfg.MinStamina,
		Fill:    1,
	})
	em.AddComponent(id, &components.MovementInputComponent{})

	return id
}
