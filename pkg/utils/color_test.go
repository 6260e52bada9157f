package utils

import (
	"image/color"
	"testing"
)

func TestParseHexColor(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    color.RGBA
		wantErr bool
	}{
		{"六位", "#5a9e3a", color.RGBA{R: 0x5a, G: 0x9e, B: 0x3a, A: 0xff}, false},
		{"八位", "#10203040", color.RGBA{R: 0x10, G: 0x20, B: 0x30, A: 0x40}, false},
		{"无井号", "ffffff", color.RGBA{R: 0xff, G: 0xff, B: 0xff, A: 0xff}, false},
		{"长度错误", "#fff", color.RGBA{}, true},
		{"非法字符", "#zzzzzz", color.RGBA{}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseHexColor(tt.input)
			if (err != nil) != tt.wantErr {
				t.Fatalf("ParseHexColor(%q) error = %v, wantErr %v", tt.input, err, tt.wantErr)
			}
			if !tt.wantErr && got != tt.want {
				t.Errorf("ParseHexColor(%q) = %v, 期望 %v", tt.input, got, tt.want)
			}
		})
	}
}

func TestColorOrDefault(t *testing.T) {
	fallback := color.RGBA{R: 1, G: 2, B: 3, A: 4}
	if got := ColorOrDefault("", fallback); got != fallback {
		t.Errorf("空字符串应返回默认颜色, got %v", got)
	}
	if got := ColorOrDefault("bad", fallback); got != fallback {
		t.Errorf("非法颜色应返回默认颜色, got %v", got)
	}
}
