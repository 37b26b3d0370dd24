/*
 * Copyright (C) 2023 by Jason Figge
 */

package terminal

import (
	"testing"

	"github.com/gdamore/tcell/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"mazer/internal/render"
)

type fakeCell struct {
	r     rune
	style tcell.Style
}

type fakeScreen struct {
	cols, rows int
	cells      map[[2]int]fakeCell
	shown      int
	synced     int
}

func newFakeScreen(cols, rows int) *fakeScreen {
	return &fakeScreen{cols: cols, rows: rows, cells: map[[2]int]fakeCell{}}
}

func (f *fakeScreen) SetContent(x, y int, primary rune, _ []rune, style tcell.Style) {
	f.cells[[2]int{x, y}] = fakeCell{r: primary, style: style}
}

func (f *fakeScreen) GetContent(x, y int) (rune, []rune, tcell.Style, int) {
	c, ok := f.cells[[2]int{x, y}]
	if !ok {
		return ' ', nil, tcell.StyleDefault, 1
	}
	return c.r, nil, c.style, 1
}

func (f *fakeScreen) Size() (int, int) { return f.cols, f.rows }
func (f *fakeScreen) Show()            { f.shown++ }
func (f *fakeScreen) Sync()            { f.synced++ }

func (f *fakeScreen) count(r rune) int {
	n := 0
	for _, c := range f.cells {
		if c.r == r {
			n++
		}
	}
	return n
}

type stubHandler struct {
	render.BaseHandler
}

func (*stubHandler) OnDraw(render.Surface) {}

func TestSurfaceClear(t *testing.T) {
	screen := newFakeScreen(10, 5)
	s := NewSurface(screen, 100, 50)
	require.NoError(t, s.Clear(render.White))
	assert.Len(t, screen.cells, 50)
	assert.Equal(t, 50, screen.count(' '))
}

func TestSurfaceDrawLine(t *testing.T) {
	screen := newFakeScreen(10, 10)
	s := NewSurface(screen, 100, 100)

	require.NoError(t, s.DrawLine(render.Segment{X1: 0, Y1: 50, X2: 99, Y2: 50}, render.Black))
	assert.Equal(t, 10, screen.count(runeHorizontal))

	require.NoError(t, s.DrawLine(render.Segment{X1: 50, Y1: 0, X2: 50, Y2: 99}, render.Black))
	assert.Equal(t, 9, screen.count(runeVertical))
	assert.Equal(t, runeCross, screen.cells[[2]int{5, 5}].r)

	require.NoError(t, s.DrawLine(render.Segment{X1: 0, Y1: 0, X2: 99, Y2: 99}, render.Black))
	assert.Positive(t, screen.count(runeDiagonal))
}

func TestSurfaceClipsOffscreen(t *testing.T) {
	screen := newFakeScreen(10, 10)
	s := NewSurface(screen, 100, 100)
	require.NoError(t, s.DrawLine(render.Segment{X1: 50, Y1: 90, X2: 50, Y2: 150}, render.Black))
	for key := range screen.cells {
		assert.Less(t, key[1], 10)
	}
}

func TestSurfaceFillRect(t *testing.T) {
	screen := newFakeScreen(10, 10)
	s := NewSurface(screen, 100, 100)
	require.NoError(t, s.FillRect(render.Rect{X: 0, Y: 0, W: 30, H: 20}, render.Black))
	assert.Equal(t, 6, screen.count(runeSolid))
}

func TestSurfaceFillTriangle(t *testing.T) {
	g := render.DefaultGeometry()

	t.Run("Marker smaller than a cell", func(t *testing.T) {
		screen := newFakeScreen(20, 10)
		s := NewSurface(screen, g.Width, g.Height)
		tri := render.Marker{}.Triangle(g)
		require.NoError(t, s.FillTriangle(tri, render.Red))
		assert.Equal(t, 1, screen.count(runeSolid))
	})

	t.Run("Large triangle fills several cells", func(t *testing.T) {
		screen := newFakeScreen(10, 10)
		s := NewSurface(screen, 100, 100)
		tri := render.Triangle{{X: 50, Y: 0}, {X: 0, Y: 99}, {X: 99, Y: 99}}
		require.NoError(t, s.FillTriangle(tri, render.Red))
		assert.Greater(t, screen.count(runeSolid), 20)
		_, _, style, _ := screen.GetContent(5, 9)
		fg, _, _ := style.Decompose()
		assert.Equal(t, tcell.NewRGBColor(255, 0, 0), fg)
	})
}

func TestSurfacePresent(t *testing.T) {
	screen := newFakeScreen(4, 4)
	s := NewSurface(screen, 10, 10)
	require.NoError(t, s.Present())
	assert.Equal(t, 1, screen.shown)
}

func TestHandleEvent(t *testing.T) {
	for name, ev := range map[string]tcell.Event{
		"Escape": tcell.NewEventKey(tcell.KeyEscape, 0, tcell.ModNone),
		"Ctrl-C": tcell.NewEventKey(tcell.KeyCtrlC, 0, tcell.ModNone),
		"q":      tcell.NewEventKey(tcell.KeyRune, 'q', tcell.ModNone),
	} {
		t.Run(name, func(t *testing.T) {
			h := &stubHandler{}
			handleEvent(ev, newFakeScreen(1, 1), h)
			assert.False(t, h.Running())
		})
	}

	h := &stubHandler{}
	screen := newFakeScreen(1, 1)
	handleEvent(tcell.NewEventKey(tcell.KeyRune, 'w', tcell.ModNone), screen, h)
	assert.True(t, h.Running())

	handleEvent(tcell.NewEventResize(80, 24), screen, h)
	assert.Equal(t, 1, screen.synced)
	assert.True(t, h.Running())
}
