/*
 * Copyright (C) 2023 by Jason Figge
 */

package internal

import (
	"mazer/internal/maze"
	"mazer/internal/render"
)

const (
	Background  = render.White
	WallColor   = render.Black
	MarkerColor = render.Red
)

type Controller struct {
	render.BaseHandler
	maze     *maze.Maze
	geometry render.Geometry
	walls    render.WallStyle
	marker   render.Marker
}

type Option func(*Controller)

func WithWallWidth(width int32) Option {
	return func(c *Controller) {
		c.walls.Width = width
	}
}

func WithMarker(marker render.Marker) Option {
	return func(c *Controller) {
		c.marker = marker
	}
}

func WithGeometry(geometry render.Geometry) Option {
	return func(c *Controller) {
		c.geometry = geometry
	}
}

// NewController draws m with the mouse parked at (0,0) facing North.
func NewController(m *maze.Maze, opts ...Option) *Controller {
	c := &Controller{
		maze:     m,
		geometry: render.DefaultGeometry(),
		walls:    render.WallStyle{Color: WallColor, Width: 1},
		marker:   render.Marker{X: 0, Y: 0, Facing: render.North},
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

func (c *Controller) Geometry() render.Geometry {
	return c.geometry
}

func (c *Controller) OnDraw(surface render.Surface) {
	render.ErrorTrap(surface.Clear(Background))
	render.ErrorTrap(render.DrawMaze(surface, c.geometry, c.maze, c.walls))
	render.ErrorTrap(render.DrawMarker(surface, c.geometry, c.marker, MarkerColor))
}
