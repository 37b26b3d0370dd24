/*
 * Copyright (C) 2023 by Jason Figge
 */

package internal

import (
	"bytes"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"mazer/internal/maze"
	"mazer/internal/render"
)

type call struct {
	op    string
	color uint32
}

type recorder struct {
	calls    []call
	failLine bool
}

func (r *recorder) Clear(color uint32) error {
	r.calls = append(r.calls, call{"clear", color})
	return nil
}

func (r *recorder) DrawLine(_ render.Segment, color uint32) error {
	if r.failLine {
		return errors.New("line failed")
	}
	r.calls = append(r.calls, call{"line", color})
	return nil
}

func (r *recorder) FillRect(_ render.Rect, color uint32) error {
	r.calls = append(r.calls, call{"rect", color})
	return nil
}

func (r *recorder) FillTriangle(_ render.Triangle, color uint32) error {
	r.calls = append(r.calls, call{"triangle", color})
	return nil
}

func (r *recorder) Present() error { return nil }

func (r *recorder) count(op string) int {
	n := 0
	for _, c := range r.calls {
		if c.op == op {
			n++
		}
	}
	return n
}

func testMaze(t *testing.T) *maze.Maze {
	t.Helper()
	data := make([]byte, maze.Cells)
	data[0] = maze.Sentinel
	data[1] = 0x01
	data[2] = 0x02
	m, err := maze.Read(bytes.NewReader(data))
	require.NoError(t, err)
	return m
}

func TestControllerOnDraw(t *testing.T) {
	c := NewController(testMaze(t))
	r := &recorder{}
	c.OnDraw(r)

	require.NotEmpty(t, r.calls)
	assert.Equal(t, call{"clear", Background}, r.calls[0])
	assert.Equal(t, 5, r.count("line"))
	assert.Equal(t, call{"triangle", MarkerColor}, r.calls[len(r.calls)-1])
	for _, cl := range r.calls[1 : len(r.calls)-1] {
		assert.Equal(t, WallColor, cl.color)
	}
}

func TestControllerWideWalls(t *testing.T) {
	c := NewController(testMaze(t), WithWallWidth(2))
	r := &recorder{}
	c.OnDraw(r)
	assert.Zero(t, r.count("line"))
	assert.Equal(t, 5, r.count("rect"))
}

func TestControllerKeepsDrawingAfterFailure(t *testing.T) {
	m := testMaze(t)
	before := m.Bytes()

	c := NewController(m)
	r := &recorder{failLine: true}
	c.OnDraw(r)
	assert.Equal(t, 1, r.count("clear"))
	assert.Equal(t, 1, r.count("triangle"))
	assert.Equal(t, before, m.Bytes())
}

func TestControllerMarkerOutOfRange(t *testing.T) {
	c := NewController(testMaze(t), WithMarker(render.Marker{X: 20}))
	r := &recorder{}
	c.OnDraw(r)
	assert.Zero(t, r.count("triangle"))
}

func TestControllerLifecycle(t *testing.T) {
	c := NewController(testMaze(t), WithGeometry(render.DefaultGeometry()))
	assert.Equal(t, int32(render.WindowWidth), c.Geometry().Width)
	assert.True(t, c.Running())

	var order []int
	c.AddDestroyer(func() { order = append(order, 1) })
	c.AddDestroyer(func() { order = append(order, 2) })
	c.Quit()
	assert.False(t, c.Running())

	c.Destroy()
	c.Destroy()
	assert.Equal(t, []int{2, 1}, order)
}
