package game

import (
	"testing"

	"github.com/hajimehoshi/ebiten/v2"
)

// MockScene 记录调用的测试场景
type MockScene struct {
	updateCalled bool
	drawCalled   bool
	deltaTime    float64
	seed         int64
}

func (m *MockScene) Update(deltaTime float64) {
	m.updateCalled = true
	m.deltaTime = deltaTime
}

func (m *MockScene) Draw(screen *ebiten.Image) {
	m.drawCalled = true
}

func TestNewSceneManager(t *testing.T) {
	sm := NewSceneManager()
	if sm.GetCurrentScene() != nil {
		t.Error("Expected no active scene initially")
	}
	// 没有场景时 Update 不会 panic
	sm.Update(0.016)
}

func TestSceneManagerUpdate(t *testing.T) {
	sm := NewSceneManager()
	mockScene := &MockScene{}
	sm.SwitchTo(mockScene)

	deltaTime := 0.016 // ~60 FPS
	sm.Update(deltaTime)

	if !mockScene.updateCalled {
		t.Error("Scene's Update method was not called")
	}
	if mockScene.deltaTime != deltaTime {
		t.Errorf("Expected deltaTime %.3f, got %.3f", deltaTime, mockScene.deltaTime)
	}
}

func TestSceneManagerSwitchBetweenScenes(t *testing.T) {
	sm := NewSceneManager()
	scene1 := &MockScene{}
	scene2 := &MockScene{}

	sm.SwitchTo(scene1)
	sm.Update(0.016)
	if !scene1.updateCalled || scene2.updateCalled {
		t.Error("Only scene1 should be updated")
	}

	sm.SwitchTo(scene2)
	sm.Update(0.016)
	if !scene2.updateCalled {
		t.Error("Scene2's Update was not called after switching")
	}
}

func TestSceneManagerStartRun(t *testing.T) {
	sm := NewSceneManager()

	if sm.StartRun(1) {
		t.Error("StartRun without factory should fail")
	}

	sm.SetSceneFactory(func(seed int64) Scene {
		if seed < 0 {
			return nil
		}
		return &MockScene{seed: seed}
	})

	if !sm.StartRun(99) {
		t.Fatal("StartRun should succeed")
	}
	scene, ok := sm.GetCurrentScene().(*MockScene)
	if !ok || scene.seed != 99 {
		t.Errorf("Expected run scene with seed 99, got %v", sm.GetCurrentScene())
	}

	if sm.StartRun(-1) {
		t.Error("StartRun should fail when the factory returns nil")
	}
	if sm.GetCurrentScene() != scene {
		t.Error("Failed StartRun must keep the current scene")
	}
}
