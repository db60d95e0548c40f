package core

import "image/color"

// Color represents a foreground color for a screen cell or sprite.
// Values map to ANSI 256-color codes in the terminal and to RGBA in the window.
type Color uint8

// Predefined colors for game elements.
const (
	ColorDefault Color = iota
	ColorRed
	ColorGreen
	ColorYellow
	ColorBlue
	ColorMagenta
	ColorCyan
	ColorWhite
	ColorBlack
	ColorBrightRed
	ColorBrightGreen
	ColorBrightYellow
	ColorBrightCyan
	ColorBrightWhite
	ColorOrange
	ColorGray
	ColorLime
)

// palette holds the window colors, indexed by Color.
var palette = [...]color.RGBA{
	ColorDefault:      {220, 220, 220, 255},
	ColorRed:          {205, 49, 49, 255},
	ColorGreen:        {13, 188, 121, 255},
	ColorYellow:       {229, 229, 16, 255},
	ColorBlue:         {36, 114, 200, 255},
	ColorMagenta:      {188, 63, 188, 255},
	ColorCyan:         {17, 168, 205, 255},
	ColorWhite:        {229, 229, 229, 255},
	ColorBlack:        {0, 0, 0, 255},
	ColorBrightRed:    {241, 76, 76, 255},
	ColorBrightGreen:  {35, 209, 139, 255},
	ColorBrightYellow: {245, 245, 67, 255},
	ColorBrightCyan:   {41, 184, 219, 255},
	ColorBrightWhite:  {255, 255, 255, 255},
	ColorOrange:       {255, 135, 0, 255},
	ColorGray:         {138, 138, 138, 255},
	ColorLime:         {175, 255, 0, 255},
}

// RGBA returns the window color for c. Unknown values fall back to the default.
func (c Color) RGBA() color.RGBA {
	if int(c) >= len(palette) {
		return palette[ColorDefault]
	}
	return palette[c]
}
