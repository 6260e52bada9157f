package world

import "testing"

func TestGroundTilemapSetGet(t *testing.T) {
	m := NewGroundTilemap(4, 3)

	if !m.IsEmpty(0, 0) {
		t.Error("New tilemap should be empty")
	}

	m.SetTile(1, 2, "grass")
	if got := m.GetTile(1, 2); got != "grass" {
		t.Errorf("Expected grass at (1,2), got %q", got)
	}
	if m.Count() != 1 {
		t.Errorf("Expected count 1, got %d", m.Count())
	}

	// 覆盖写入不改变数量
	m.SetTile(1, 2, "grass_edge")
	if m.Count() != 1 {
		t.Errorf("Overwrite should keep count 1, got %d", m.Count())
	}

	m.SetTile(1, 2, "")
	if m.Count() != 0 || !m.IsEmpty(1, 2) {
		t.Error("Clearing a tile should make it empty")
	}
}

func TestGroundTilemapOutOfRange(t *testing.T) {
	m := filledTilemap(3, 3)

	for _, p := range [][2]int{{-1, 0}, {0, -1}, {3, 0}, {0, 3}, {100, 100}} {
		if !m.IsEmpty(p[0], p[1]) {
			t.Errorf("Out-of-range (%d,%d) should read as empty", p[0], p[1])
		}
		m.SetTile(p[0], p[1], "x")
	}
	if m.Count() != 9 {
		t.Errorf("Out-of-range writes should be ignored, count=%d", m.Count())
	}
}

func TestGroundTilemapComputeBounds(t *testing.T) {
	m := NewGroundTilemap(10, 10)

	if _, _, _, _, ok := m.ComputeBounds(); ok {
		t.Error("Empty tilemap should have no bounds")
	}

	m.SetTile(2, 3, "g")
	m.SetTile(6, 8, "g")

	minX, minY, maxX, maxY, ok := m.ComputeBounds()
	if !ok {
		t.Fatal("Expected bounds")
	}
	if minX != 2 || minY != 3 || maxX != 7 || maxY != 9 {
		t.Errorf("Expected bounds (2,3,7,9), got (%d,%d,%d,%d)", minX, minY, maxX, maxY)
	}
}
