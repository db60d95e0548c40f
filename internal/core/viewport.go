package core

import "math"

// Viewport maps world units onto a grid of terminal cells.
// The world origin sits at the center of the play area; Top rows above the
// play area are reserved for the text HUD.
type Viewport struct {
	Cols  int     // Play area width in cells
	Rows  int     // Play area height in cells
	Top   int     // First screen row of the play area
	CellW float64 // World units per cell horizontally
	CellH float64 // World units per cell vertically
}

// NewViewport builds a viewport for a screen of cols x rows cells, reserving
// hudRows at the top.
func NewViewport(cols, rows, hudRows int, cellW, cellH float64) Viewport {
	return Viewport{
		Cols:  Max(cols, 1),
		Rows:  Max(rows-hudRows, 1),
		Top:   hudRows,
		CellW: cellW,
		CellH: cellH,
	}
}

// WorldSize returns the play area size in world units.
func (v Viewport) WorldSize() Resize {
	return Resize{
		Width:  float64(v.Cols) * v.CellW,
		Height: float64(v.Rows) * v.CellH,
	}
}

// CellRect returns the screen cells covered by a world box. Edges snap to the
// nearest cell boundary; any box covers at least one cell so small objects
// stay visible.
func (v Viewport) CellRect(b Box) Rect {
	size := v.WorldSize()
	halfW, halfH := size.Width/2, size.Height/2

	x0 := int(math.Round((b.Left() + halfW) / v.CellW))
	x1 := int(math.Round((b.Right() + halfW) / v.CellW))
	y0 := int(math.Round((halfH - b.Top()) / v.CellH))
	y1 := int(math.Round((halfH - b.Bottom()) / v.CellH))

	if x1 <= x0 {
		x1 = x0 + 1
	}
	if y1 <= y0 {
		y1 = y0 + 1
	}
	return NewRect(x0, y0+v.Top, x1-x0, y1-y0)
}

// CellAt returns the screen cell containing a world point.
func (v Viewport) CellAt(p Vec2) (int, int) {
	size := v.WorldSize()
	x := int(math.Floor((p.X + size.Width/2) / v.CellW))
	y := int(math.Floor((size.Height/2 - p.Y) / v.CellH))
	return x, y + v.Top
}

// PixelRect projects a world box onto a pixel surface of the given size with
// +y down, one world unit per pixel. It returns the top-left corner and size.
func PixelRect(b Box, width, height float64) (x, y, w, h float64) {
	return b.Left() + width/2, height/2 - b.Top(), b.Size.X, b.Size.Y
}
