package core

import (
	"image/color"
	"testing"
)

func TestColorRGBA(t *testing.T) {
	tests := []struct {
		c    Color
		want color.RGBA
	}{
		{ColorBlack, color.RGBA{0, 0, 0, 255}},
		{ColorBrightWhite, color.RGBA{255, 255, 255, 255}},
		{ColorLime, color.RGBA{175, 255, 0, 255}},
		{Color(200), palette[ColorDefault]},
	}

	for _, tc := range tests {
		if got := tc.c.RGBA(); got != tc.want {
			t.Errorf("Color(%d).RGBA() = %v, expected %v", tc.c, got, tc.want)
		}
	}
}
