package utils

import (
	"math"
	"testing"
)

func TestEasing(t *testing.T) {
	tests := []struct {
		name     string
		fn       func(float64) float64
		input    float64
		expected float64
	}{
		{"EaseOutCubic 起点", EaseOutCubic, 0, 0},
		{"EaseOutCubic 中点", EaseOutCubic, 0.5, 0.875},
		{"EaseOutCubic 终点", EaseOutCubic, 1, 1},
		{"EaseInQuad 中点", EaseInQuad, 0.5, 0.25},
		{"EaseInQuad 终点", EaseInQuad, 1, 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := tt.fn(tt.input)
			if math.Abs(result-tt.expected) > 0.001 {
				t.Errorf("f(%v) = %v, 期望 %v", tt.input, result, tt.expected)
			}
		})
	}
}

func TestLerp(t *testing.T) {
	if got := Lerp(2, 6, 0.25); got != 3 {
		t.Errorf("Lerp(2, 6, 0.25) = %v, 期望 3", got)
	}
	if got := Lerp(2, 6, 1); got != 6 {
		t.Errorf("Lerp(2, 6, 1) = %v, 期望 6", got)
	}
}
