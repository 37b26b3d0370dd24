/*
 * Copyright (C) 2023 by Jason Figge
 */

package terminal

import (
	"github.com/gdamore/tcell/v2"

	"mazer/internal/render"
)

const (
	runeHorizontal = '─'
	runeVertical   = '│'
	runeCross      = '┼'
	runeDiagonal   = '·'
	runeSolid      = '█'
)

// screen is the part of tcell.Screen the surface draws through.
type screen interface {
	SetContent(x, y int, primary rune, combining []rune, style tcell.Style)
	GetContent(x, y int) (primary rune, combining []rune, style tcell.Style, width int)
	Size() (width, height int)
	Show()
}

// Surface scales the pixel space of a window onto a terminal cell grid.
type Surface struct {
	screen     screen
	width      int32
	height     int32
	background tcell.Color
}

func NewSurface(s screen, width, height int32) *Surface {
	return &Surface{screen: s, width: width, height: height, background: tcell.ColorDefault}
}

func (s *Surface) Clear(color uint32) error {
	s.background = toColor(color)
	style := tcell.StyleDefault.Background(s.background)
	cols, rows := s.screen.Size()
	for y := 0; y < rows; y++ {
		for x := 0; x < cols; x++ {
			s.screen.SetContent(x, y, ' ', nil, style)
		}
	}
	return nil
}

func (s *Surface) DrawLine(seg render.Segment, color uint32) error {
	x1, y1 := s.cell(float32(seg.X1), float32(seg.Y1))
	x2, y2 := s.cell(float32(seg.X2), float32(seg.Y2))
	style := s.style(color)

	switch {
	case y1 == y2:
		for x := min(x1, x2); x <= max(x1, x2); x++ {
			s.merge(x, y1, runeHorizontal, style)
		}
	case x1 == x2:
		for y := min(y1, y2); y <= max(y1, y2); y++ {
			s.merge(x1, y, runeVertical, style)
		}
	default:
		steps := max(abs(x2-x1), abs(y2-y1))
		for i := 0; i <= steps; i++ {
			x := x1 + (x2-x1)*i/steps
			y := y1 + (y2-y1)*i/steps
			s.set(x, y, runeDiagonal, style)
		}
	}
	return nil
}

func (s *Surface) FillRect(rect render.Rect, color uint32) error {
	x1, y1 := s.cell(float32(rect.X), float32(rect.Y))
	x2, y2 := s.cell(float32(rect.X+rect.W-1), float32(rect.Y+rect.H-1))
	style := s.style(color)
	for y := y1; y <= y2; y++ {
		for x := x1; x <= x2; x++ {
			s.set(x, y, runeSolid, style)
		}
	}
	return nil
}

// FillTriangle colors every cell whose center falls inside tri. A triangle
// smaller than one cell still marks the cell under its centroid.
func (s *Surface) FillTriangle(tri render.Triangle, color uint32) error {
	style := s.style(color)
	cols, rows := s.screen.Size()
	if cols == 0 || rows == 0 {
		return nil
	}
	sx := float32(s.width) / float32(cols)
	sy := float32(s.height) / float32(rows)

	minX, minY := s.cell(min(tri[0].X, tri[1].X, tri[2].X), min(tri[0].Y, tri[1].Y, tri[2].Y))
	maxX, maxY := s.cell(max(tri[0].X, tri[1].X, tri[2].X), max(tri[0].Y, tri[1].Y, tri[2].Y))
	filled := false
	for y := minY; y <= maxY; y++ {
		for x := minX; x <= maxX; x++ {
			center := render.Point{X: (float32(x) + 0.5) * sx, Y: (float32(y) + 0.5) * sy}
			if inside(tri, center) {
				s.set(x, y, runeSolid, style)
				filled = true
			}
		}
	}
	if !filled {
		cx, cy := s.cell((tri[0].X+tri[1].X+tri[2].X)/3, (tri[0].Y+tri[1].Y+tri[2].Y)/3)
		s.set(cx, cy, runeSolid, style)
	}
	return nil
}

func (s *Surface) Present() error {
	s.screen.Show()
	return nil
}

func (s *Surface) cell(x, y float32) (int, int) {
	cols, rows := s.screen.Size()
	return int(x * float32(cols) / float32(s.width)), int(y * float32(rows) / float32(s.height))
}

func (s *Surface) style(color uint32) tcell.Style {
	return tcell.StyleDefault.Foreground(toColor(color)).Background(s.background)
}

func (s *Surface) set(x, y int, r rune, style tcell.Style) {
	cols, rows := s.screen.Size()
	if x < 0 || y < 0 || x >= cols || y >= rows {
		return
	}
	s.screen.SetContent(x, y, r, nil, style)
}

// merge joins crossing wall lines into a single box-drawing rune.
func (s *Surface) merge(x, y int, r rune, style tcell.Style) {
	current, _, _, _ := s.screen.GetContent(x, y)
	if (current == runeHorizontal && r == runeVertical) || (current == runeVertical && r == runeHorizontal) || current == runeCross {
		r = runeCross
	}
	s.set(x, y, r, style)
}

func inside(tri render.Triangle, p render.Point) bool {
	d1 := edge(p, tri[0], tri[1])
	d2 := edge(p, tri[1], tri[2])
	d3 := edge(p, tri[2], tri[0])
	hasNeg := d1 < 0 || d2 < 0 || d3 < 0
	hasPos := d1 > 0 || d2 > 0 || d3 > 0
	return !(hasNeg && hasPos)
}

func edge(p, a, b render.Point) float32 {
	return (p.X-b.X)*(a.Y-b.Y) - (a.X-b.X)*(p.Y-b.Y)
}

func toColor(color uint32) tcell.Color {
	r, g, b, _ := render.RGBA(color)
	return tcell.NewRGBColor(int32(r), int32(g), int32(b))
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
