/*
 * Copyright (C) 2023 by Jason Figge
 */

package graphics

import (
	"github.com/veandco/go-sdl2/sdl"

	"mazer/internal/render"
)

// Surface draws onto an SDL renderer.
type Surface struct {
	renderer *sdl.Renderer
}

func NewSurface(renderer *sdl.Renderer) *Surface {
	return &Surface{renderer: renderer}
}

func (s *Surface) Clear(color uint32) error {
	if err := s.setColor(color); err != nil {
		return err
	}
	return s.renderer.Clear()
}

func (s *Surface) DrawLine(seg render.Segment, color uint32) error {
	if err := s.setColor(color); err != nil {
		return err
	}
	return s.renderer.DrawLine(seg.X1, seg.Y1, seg.X2, seg.Y2)
}

func (s *Surface) FillRect(rect render.Rect, color uint32) error {
	if err := s.setColor(color); err != nil {
		return err
	}
	return s.renderer.FillRect(&sdl.Rect{X: rect.X, Y: rect.Y, W: rect.W, H: rect.H})
}

func (s *Surface) FillTriangle(tri render.Triangle, color uint32) error {
	r, g, b, a := render.RGBA(color)
	vertices := make([]sdl.Vertex, len(tri))
	for i, p := range tri {
		vertices[i] = sdl.Vertex{
			Position: sdl.FPoint{X: p.X, Y: p.Y},
			Color:    sdl.Color{R: r, G: g, B: b, A: a},
			TexCoord: sdl.FPoint{X: 1, Y: 1},
		}
	}
	return s.renderer.RenderGeometry(nil, vertices, nil)
}

func (s *Surface) Present() error {
	s.renderer.Present()
	return nil
}

func (s *Surface) setColor(color uint32) error {
	r, g, b, a := render.RGBA(color)
	return s.renderer.SetDrawColor(r, g, b, a)
}
