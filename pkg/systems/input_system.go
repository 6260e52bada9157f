package systems

import (
	"github.com/decker502/resourcerun/pkg/components"
	"github.com/decker502/resourcerun/pkg/ecs"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// KeyReader 键盘状态来源
// 游戏中使用 EbitenKeys，测试中可替换为假实现
type KeyReader interface {
	IsKeyPressed(key ebiten.Key) bool
	IsKeyJustPressed(key ebiten.Key) bool
}

// EbitenKeys 从 ebiten 读取键盘状态
type EbitenKeys struct{}

// IsKeyPressed 按键是否处于按下状态
func (EbitenKeys) IsKeyPressed(key ebiten.Key) bool { return ebiten.IsKeyPressed(key) }

// IsKeyJustPressed 按键是否在本帧刚按下
func (EbitenKeys) IsKeyJustPressed(key ebiten.Key) bool { return inpututil.IsKeyJustPressed(key) }

// InputSystem 把键盘状态写入玩家的 MovementInputComponent
//
// 按键映射：
//   - WASD / 方向键: 移动
//   - Shift: 慢走
//   - Ctrl: 冲刺
//   - E: 采集面前的物体
type InputSystem struct {
	entityManager *ecs.EntityManager
	keys          KeyReader
}

// NewInputSystem 创建输入系统，keys 为 nil 时读取 ebiten 键盘
func NewInputSystem(em *ecs.EntityManager, keys KeyReader) *InputSystem {
	if keys == nil {
		keys = EbitenKeys{}
	}
	return &InputSystem{
		entityManager: em,
		keys:          keys,
	}
}

// Update 读取本帧输入
func (s *InputSystem) Update(deltaTime float64) {
	entities := ecs.GetEntitiesWith1[*components.MovementInputComponent](s.entityManager)
	if len(entities) == 0 {
		return
	}

	horizontal := s.axis(ebiten.KeyD, ebiten.KeyArrowRight) - s.axis(ebiten.KeyA, ebiten.KeyArrowLeft)
	vertical := s.axis(ebiten.KeyW, ebiten.KeyArrowUp) - s.axis(ebiten.KeyS, ebiten.KeyArrowDown)
	slow := s.keys.IsKeyPressed(ebiten.KeyShiftLeft) || s.keys.IsKeyPressed(ebiten.KeyShiftRight)
	sprint := s.keys.IsKeyPressed(ebiten.KeyControlLeft) || s.keys.IsKeyPressed(ebiten.KeyControlRight)
	interact := s.keys.IsKeyJustPressed(ebiten.KeyE)

	for _, id := range entities {
		input, _ := ecs.GetComponent[*components.MovementInputComponent](s.entityManager, id)
		input.Horizontal = horizontal
		input.Vertical = vertical
		input.Slow = slow
		input.Sprint = sprint
		// 交互输入由采集系统消费，这里只置位
		if interact {
			input.Interact = true
		}
	}
}

// axis 任一按键按下时返回 1
func (s *InputSystem) axis(keys ...ebiten.Key) float64 {
	for _, key := range keys {
		if s.keys.IsKeyPressed(key) {
			return 1
		}
	}
	return 0
}
