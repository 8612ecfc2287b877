package core

import (
	"image"
	"image/color"
	"math"
	"testing"
)

func TestColor_Saturates(t *testing.T) {
	tests := []struct {
		name     string
		got      Color
		expected Color
	}{
		{"add overflow", Color{200, 100, 0}.Add(Color{100, 100, 0}), Color{255, 200, 0}},
		{"scale overflow", Color{200, 10, 0}.Scale(2), Color{255, 20, 0}},
		{"scale truncates", Color{3, 5, 7}.Scale(0.5), Color{1, 2, 3}},
		{"negative scale floors", Color{100, 100, 100}.Scale(-1), Color{0, 0, 0}},
		{"NaN scale floors", Color{100, 100, 100}.Scale(math.NaN()), Color{0, 0, 0}},
		{"mul by white", Color{10, 20, 30}.Mul(White), Color{10, 20, 30}},
		{"mul by black", Color{10, 20, 30}.Mul(Black), Color{0, 0, 0}},
		{"clamped constructor", NewColor(300, -5, 42), Color{255, 0, 42}},
		{"hex", Hex(0x2A1600), Color{0x2A, 0x16, 0x00}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.got != tt.expected {
				t.Errorf("Expected %v, got %v", tt.expected, tt.got)
			}
		})
	}
}

func TestColor_Mean(t *testing.T) {
	if White.Mean() != 1 {
		t.Errorf("Expected white mean 1, got %f", White.Mean())
	}
	if Black.Mean() != 0 {
		t.Errorf("Expected black mean 0, got %f", Black.Mean())
	}
}

func TestNewBitmap(t *testing.T) {
	img := image.NewRGBA(image.Rect(0, 0, 2, 2))
	img.Set(1, 0, color.RGBA{R: 10, G: 20, B: 30, A: 255})
	img.Set(0, 1, color.RGBA{R: 255, A: 255})

	bitmap := NewBitmap(img)
	if bitmap.Width != 2 || bitmap.Height != 2 {
		t.Fatalf("Expected 2x2 bitmap, got %dx%d", bitmap.Width, bitmap.Height)
	}
	if bitmap.At(1, 0) != (Color{10, 20, 30}) {
		t.Errorf("Expected (10,20,30) at (1,0), got %v", bitmap.At(1, 0))
	}
	if bitmap.At(0, 1) != Red {
		t.Errorf("Expected red at (0,1), got %v", bitmap.At(0, 1))
	}
}
