package systems

import (
	"testing"

	"github.com/decker502/resourcerun/pkg/components"
	"github.com/decker502/resourcerun/pkg/ecs"
	"github.com/hajimehoshi/ebiten/v2"
)

// fakeKeys 测试用键盘状态
type fakeKeys struct {
	pressed     map[ebiten.Key]bool
	justPressed map[ebiten.Key]bool
}

func newFakeKeys(pressed ...ebiten.Key) *fakeKeys {
	k := &fakeKeys{pressed: map[ebiten.Key]bool{}, justPressed: map[ebiten.Key]bool{}}
	for _, key := range pressed {
		k.pressed[key] = true
	}
	return k
}

func (k *fakeKeys) IsKeyPressed(key ebiten.Key) bool     { return k.pressed[key] }
func (k *fakeKeys) IsKeyJustPressed(key ebiten.Key) bool { return k.justPressed[key] }

// TestInputSystemMapping 测试按键到移动输入的映射
func TestInputSystemMapping(t *testing.T) {
	tests := []struct {
		name       string
		keys       []ebiten.Key
		horizontal float64
		vertical   float64
		slow       bool
		sprint     bool
	}{
		{"无输入", nil, 0, 0, false, false},
		{"向右", []ebiten.Key{ebiten.KeyD}, 1, 0, false, false},
		{"方向键向左上", []ebiten.Key{ebiten.KeyArrowLeft, ebiten.KeyArrowUp}, -1, 1, false, false},
		{"左右同时按下抵消", []ebiten.Key{ebiten.KeyA, ebiten.KeyD}, 0, 0, false, false},
		{"慢走向下", []ebiten.Key{ebiten.KeyS, ebiten.KeyShiftLeft}, 0, -1, true, false},
		{"冲刺", []ebiten.Key{ebiten.KeyW, ebiten.KeyControlRight}, 0, 1, false, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			em := ecs.NewEntityManager()
			id := em.CreateEntity()
			input := &components.MovementInputComponent{}
			em.AddComponent(id, input)

			NewInputSystem(em, newFakeKeys(tt.keys...)).Update(0.016)

			if input.Horizontal != tt.horizontal || input.Vertical != tt.vertical {
				t.Errorf("Expected axis (%v, %v), got (%v, %v)", tt.horizontal, tt.vertical, input.Horizontal, input.Vertical)
			}
			if input.Slow != tt.slow || input.Sprint != tt.sprint {
				t.Errorf("Expected slow=%v sprint=%v, got slow=%v sprint=%v", tt.slow, tt.sprint, input.Slow, input.Sprint)
			}
		})
	}
}

// TestInputSystemInteractLatches 测试交互键只置位，不被下一帧清除
func TestInputSystemInteractLatches(t *testing.T) {
	em := ecs.NewEntityManager()
	id := em.CreateEntity()
	input := &components.MovementInputComponent{}
	em.AddComponent(id, input)

	keys := newFakeKeys()
	keys.justPressed[ebiten.KeyE] = true
	system := NewInputSystem(em, keys)

	system.Update(0.016)
	if !input.Interact {
		t.Fatal("Interact should be set when E is just pressed")
	}

	keys.justPressed[ebiten.KeyE] = false
	system.Update(0.016)
	if !input.Interact {
		t.Error("Interact should stay set until consumed")
	}
}
