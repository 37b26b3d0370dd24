/*
 * Copyright (C) 2023 by Jason Figge
 */

package render

import "errors"

const (
	White = uint32(0xFFFFFFFF)
	Black = uint32(0x000000FF)
	Red   = uint32(0xFF0000FF)
)

var (
	ErrSurfaceInit    = errors.New("rendering surface could not be created")
	ErrNotAxisAligned = errors.New("segment is not horizontal or vertical")
	ErrMarkerRange    = errors.New("marker is outside the maze")
)

type Point struct {
	X, Y float32
}

type Segment struct {
	X1, Y1, X2, Y2 int32
}

type Rect struct {
	X, Y, W, H int32
}

type Triangle [3]Point

// Surface is the drawing target a frame is rendered onto. Colors are packed 0xRRGGBBAA.
type Surface interface {
	Clear(color uint32) error
	DrawLine(seg Segment, color uint32) error
	FillRect(rect Rect, color uint32) error
	FillTriangle(tri Triangle, color uint32) error
	Present() error
}

// RGBA splits a packed color into its channels.
func RGBA(color uint32) (r, g, b, a uint8) {
	return uint8(color >> 24), uint8(color >> 16), uint8(color >> 8), uint8(color)
}
