/*
 * Copyright (C) 2023 by Jason Figge
 */

package render

import "fmt"

const markerHalfSize = 5

type Orientation int

const (
	North Orientation = iota
	East
	South
	West
)

// Steps is the number of 90 degree clockwise turns from North.
func (o Orientation) Steps() int {
	switch o {
	case East:
		return 1
	case South:
		return 2
	case West:
		return 3
	}
	return 0
}

func (o Orientation) String() string {
	switch o {
	case North:
		return "North"
	case East:
		return "East"
	case South:
		return "South"
	case West:
		return "West"
	}
	return fmt.Sprintf("Orientation(%d)", int(o))
}

// Marker is the mouse: a grid cell and a facing. Y 0 is the bottom row.
type Marker struct {
	X, Y   int
	Facing Orientation
}

// Center returns the pixel center of the marker's cell.
func (m Marker) Center(g Geometry) Point {
	cell := g.CellSize()
	x, y := int32(m.X), int32(m.Y)
	return Point{
		X: float32(g.Padding + (x + 1) + x*cell + cell/2),
		Y: float32(g.Padding + (g.Rows - y) + (g.Rows-(y+1))*cell + cell/2),
	}
}

// Triangle returns the marker's vertices, apex first, turned to its facing.
func (m Marker) Triangle(g Geometry) Triangle {
	c := m.Center(g)
	tri := Triangle{
		{X: c.X, Y: c.Y - markerHalfSize},
		{X: c.X - markerHalfSize, Y: c.Y + markerHalfSize},
		{X: c.X + markerHalfSize, Y: c.Y + markerHalfSize},
	}
	for i := 0; i < m.Facing.Steps(); i++ {
		for v := range tri {
			tri[v] = Rotate(tri[v], c)
		}
	}
	return tri
}

// Rotate turns p a quarter clockwise (in screen space) about pivot.
func Rotate(p, pivot Point) Point {
	dx := p.X - pivot.X
	dy := p.Y - pivot.Y
	return Point{X: pivot.X - dy, Y: pivot.Y + dx}
}

func DrawMarker(surface Surface, g Geometry, m Marker, color uint32) error {
	if !g.contains(m.X, m.Y) {
		return fmt.Errorf("%w: (%d,%d)", ErrMarkerRange, m.X, m.Y)
	}
	return surface.FillTriangle(m.Triangle(g), color)
}
