/*
 * Copyright (C) 2023 by Jason Figge
 */

package render

import "mazer/internal/maze"

const (
	WindowWidth  = 457
	WindowHeight = 457
	Padding      = 20
	// BorderWidth is one pixel of wall per grid line: Cols+1.
	BorderWidth = 17
)

// Geometry maps maze grid coordinates onto window pixels. Grid column 0 (and
// marker y 0) is the bottom row on screen.
type Geometry struct {
	Width   int32
	Height  int32
	Padding int32
	Border  int32
	Rows    int32
	Cols    int32
}

func DefaultGeometry() Geometry {
	return Geometry{
		Width:   WindowWidth,
		Height:  WindowHeight,
		Padding: Padding,
		Border:  BorderWidth,
		Rows:    maze.Rows,
		Cols:    maze.Cols,
	}
}

// CellSize is the inner pixel size of one cell, excluding its wall lines.
func (g Geometry) CellSize() int32 {
	return (g.Width - 2*g.Padding - g.Border) / g.Cols
}

// CellOrigin returns the top-left pixel of the cell at (row, col). Row grows
// rightward and col grows upward.
func (g Geometry) CellOrigin(row, col int) (int32, int32) {
	step := g.CellSize() + 1
	x := g.Padding + int32(row)*step
	y := (g.Height - g.Padding - 1) - int32(col+1)*step
	return x, y
}

func (g Geometry) contains(x, y int) bool {
	return x >= 0 && y >= 0 && x < int(g.Cols) && y < int(g.Rows)
}
