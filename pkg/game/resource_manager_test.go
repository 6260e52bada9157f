package game

import (
	"errors"
	"io/fs"
	"testing"
	"testing/fstest"
)

func TestResourceManagerMissingSprite(t *testing.T) {
	rm := NewResourceManager(fstest.MapFS{}, "data/sprites")

	_, err := rm.LoadImage("oak")
	if err == nil {
		t.Fatal("Expected error for missing sprite")
	}
	if !errors.Is(err, fs.ErrNotExist) {
		t.Errorf("Expected fs.ErrNotExist, got %v", err)
	}

	// 第二次直接返回缓存的错误
	_, err2 := rm.LoadImage("oak")
	if err2 != err {
		t.Error("Missing sprite error should be cached")
	}
	if rm.MissingCount() != 1 {
		t.Errorf("Expected 1 missing sprite, got %d", rm.MissingCount())
	}
	if rm.GetImage("oak") != nil {
		t.Error("GetImage should return nil for a missing sprite")
	}
}

func TestResourceManagerCorruptSprite(t *testing.T) {
	rm := NewResourceManager(fstest.MapFS{
		"data/sprites/rock.png": {Data: []byte("not a png")},
	}, "data/sprites")

	if _, err := rm.LoadImage("rock"); err == nil {
		t.Error("Expected decode error")
	}
}

func TestResourceManagerNilFS(t *testing.T) {
	rm := NewResourceManager(nil, "data/sprites")
	if _, err := rm.LoadImage("player"); err == nil {
		t.Error("Expected error without a file system")
	}
}
