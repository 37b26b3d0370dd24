/*
 * Copyright (C) 2023 by Jason Figge
 */

package render

import "fmt"

// Stroke turns an axis-aligned segment into a rectangle width pixels thick.
// The rectangle covers both endpoints and grows right of vertical segments and
// below horizontal ones.
func Stroke(seg Segment, width int32) (Rect, error) {
	if width < 1 {
		width = 1
	}
	x, w := span(seg.X1, seg.X2)
	y, h := span(seg.Y1, seg.Y2)
	switch {
	case seg.X1 == seg.X2:
		return Rect{X: x, Y: y, W: width, H: h}, nil
	case seg.Y1 == seg.Y2:
		return Rect{X: x, Y: y, W: w, H: width}, nil
	}
	return Rect{}, fmt.Errorf("%w: (%d,%d)-(%d,%d)", ErrNotAxisAligned, seg.X1, seg.Y1, seg.X2, seg.Y2)
}

func span(a, b int32) (start, length int32) {
	if a > b {
		a, b = b, a
	}
	return a, b - a + 1
}
