package game

import "testing"

// TestGameStateTick 测试只在进行中累计时间
func TestGameStateTick(t *testing.T) {
	gs := NewGameState(42)
	if gs.Seed != 42 {
		t.Errorf("Expected seed 42, got %d", gs.Seed)
	}

	gs.Tick(0.5)
	gs.TogglePause()
	gs.Tick(10)
	gs.TogglePause()
	gs.Tick(0.25)

	if gs.Elapsed != 0.75 {
		t.Errorf("Expected elapsed 0.75, got %f", gs.Elapsed)
	}

	gs.EndRun()
	gs.Tick(1)
	if gs.Elapsed != 0.75 {
		t.Errorf("Elapsed should stop after game over, got %f", gs.Elapsed)
	}
}

// TestGameStatePauseAfterGameOver 测试游戏结束后不能暂停
func TestGameStatePauseAfterGameOver(t *testing.T) {
	gs := NewGameState(1)
	gs.TogglePause()
	gs.EndRun()

	if gs.IsPaused {
		t.Error("EndRun should clear pause")
	}
	gs.TogglePause()
	if gs.IsPaused || gs.IsRunning() {
		t.Error("Game over state should not be pausable or running")
	}
}

// TestGameStateCounters 测试统计计数
func TestGameStateCounters(t *testing.T) {
	gs := NewGameState(1)

	gs.RecordTileRemoved()
	gs.RecordTileRemoved()
	gs.RecordGathered()
	gs.RecordPickup(3)
	gs.RecordPickup(2)

	if gs.TilesRemoved != 2 || gs.ObjectsGathered != 1 || gs.ItemsPicked != 5 {
		t.Errorf("Unexpected counters: tiles=%d gathered=%d picked=%d",
			gs.TilesRemoved, gs.ObjectsGathered, gs.ItemsPicked)
	}
}
