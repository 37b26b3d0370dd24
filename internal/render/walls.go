/*
 * Copyright (C) 2023 by Jason Figge
 */

package render

import (
	"fmt"

	"mazer/internal/maze"
)

// WallStyle controls how wall segments are stroked.
type WallStyle struct {
	Color uint32
	Width int32
}

func DefaultWallStyle() WallStyle {
	return WallStyle{Color: Black, Width: 1}
}

// CellSegments decodes a wall mask into screen segments in West, South, East,
// North order. Unknown bits are ignored.
func CellSegments(g Geometry, row, col int, walls maze.Walls) []Segment {
	x, y := g.CellOrigin(row, col)
	span := g.CellSize() + 1

	segments := make([]Segment, 0, 4)
	if walls.Has(maze.West) {
		segments = append(segments, Segment{X1: x, Y1: y, X2: x, Y2: y + span})
	}
	if walls.Has(maze.South) {
		segments = append(segments, Segment{X1: x, Y1: y + span, X2: x + span, Y2: y + span})
	}
	if walls.Has(maze.East) {
		segments = append(segments, Segment{X1: x + span, Y1: y, X2: x + span, Y2: y + span})
	}
	if walls.Has(maze.North) {
		segments = append(segments, Segment{X1: x, Y1: y, X2: x + span, Y2: y})
	}
	return segments
}

// DrawCell emits one stroke per wall present in walls.
func DrawCell(surface Surface, g Geometry, row, col int, walls maze.Walls, style WallStyle) error {
	for _, seg := range CellSegments(g, row, col, walls) {
		if err := drawWall(surface, seg, style); err != nil {
			return fmt.Errorf("cell (%d,%d): %w", row, col, err)
		}
	}
	return nil
}

// DrawMaze draws every cell of m. Walls shared by neighbours are drawn twice.
func DrawMaze(surface Surface, g Geometry, m *maze.Maze, style WallStyle) error {
	for row := 0; row < maze.Rows; row++ {
		for col := 0; col < maze.Cols; col++ {
			walls, err := m.CellWalls(row, col)
			if err != nil {
				return err
			}
			if err = DrawCell(surface, g, row, col, walls, style); err != nil {
				return err
			}
		}
	}
	return nil
}

func drawWall(surface Surface, seg Segment, style WallStyle) error {
	if style.Width <= 1 {
		return surface.DrawLine(seg, style.Color)
	}
	rect, err := Stroke(seg, style.Width)
	if err != nil {
		return err
	}
	return surface.FillRect(rect, style.Color)
}
