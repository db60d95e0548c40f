package core

import "testing"

func TestViewportWorldSize(t *testing.T) {
	v := NewViewport(80, 24, 1, 16, 32)

	size := v.WorldSize()
	if size.Width != 1280 || size.Height != 736 {
		t.Errorf("WorldSize() = %+v, expected 1280x736", size)
	}
}

func TestViewportCellRect(t *testing.T) {
	v := NewViewport(80, 24, 1, 16, 32)

	tests := []struct {
		name     string
		box      Box
		expected Rect
	}{
		{
			name:     "paddle centered",
			box:      NewBox(V2(0, -300), V2(200, 50)),
			expected: NewRect(34, 21, 12, 2),
		},
		{
			name:     "top-left cell",
			box:      NewBox(V2(-632, 352), V2(16, 32)),
			expected: NewRect(0, 1, 1, 1),
		},
		{
			name:     "tiny box still one cell",
			box:      NewBox(V2(8, -32), V2(0.5, 0.5)),
			expected: NewRect(40, 13, 1, 1),
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := v.CellRect(tc.box); got != tc.expected {
				t.Errorf("CellRect() = %+v, expected %+v", got, tc.expected)
			}
		})
	}
}

func TestViewportCellAt(t *testing.T) {
	v := NewViewport(80, 24, 1, 16, 32)

	tests := []struct {
		p     Vec2
		wantX int
		wantY int
	}{
		{V2(0, 0), 40, 12},
		{V2(-640, 368), 0, 1},
		{V2(-150, 0), 30, 12},
		{V2(639, -367), 79, 23},
	}

	for _, tc := range tests {
		x, y := v.CellAt(tc.p)
		if x != tc.wantX || y != tc.wantY {
			t.Errorf("CellAt(%v) = (%d, %d), expected (%d, %d)", tc.p, x, y, tc.wantX, tc.wantY)
		}
	}
}

func TestPixelRect(t *testing.T) {
	tests := []struct {
		name       string
		box        Box
		x, y, w, h float64
	}{
		{"centered", NewBox(V2(0, 0), V2(100, 50)), 590, 335, 100, 50},
		{"top left corner", NewBox(V2(-630, 350), V2(20, 20)), 0, 0, 20, 20},
		{"paddle", NewBox(V2(0, -300), V2(200, 50)), 540, 635, 200, 50},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			x, y, w, h := PixelRect(tc.box, 1280, 720)
			if x != tc.x || y != tc.y || w != tc.w || h != tc.h {
				t.Errorf("PixelRect() = (%g, %g, %g, %g), expected (%g, %g, %g, %g)", x, y, w, h, tc.x, tc.y, tc.w, tc.h)
			}
		})
	}
}
