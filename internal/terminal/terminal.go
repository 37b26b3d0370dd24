/*
 * Copyright (C) 2023 by Jason Figge
 */

// Package terminal renders frames into a tcell screen instead of an SDL window.
package terminal

import (
	"fmt"
	"log"
	"time"

	"github.com/gdamore/tcell/v2"

	"mazer/internal/config"
	"mazer/internal/render"
)

// Open takes over the terminal and runs the frame loop until the handler stops
// running. width and height describe the pixel space the handler draws in.
func Open(width, height int32, handler render.Handler, frameDelay time.Duration) error {
	defer handler.Destroy()

	screen, err := tcell.NewScreen()
	if err != nil {
		return fmt.Errorf("%w: failed to create terminal screen: %v", render.ErrSurfaceInit, err)
	}
	if err = screen.Init(); err != nil {
		return fmt.Errorf("%w: failed to init terminal screen: %v", render.ErrSurfaceInit, err)
	}
	defer screen.Fini()

	log.Printf("%s[APP] [INFO] terminal init had no errors%s", config.LogInfoColor, config.LogColorReset)

	surface := NewSurface(screen, width, height)
	for handler.Running() {
		for screen.HasPendingEvent() {
			handleEvent(screen.PollEvent(), screen, handler)
		}
		handler.OnDraw(surface)
		render.ErrorTrap(surface.Present())
		time.Sleep(frameDelay)
	}
	return nil
}

type syncer interface {
	Sync()
}

func handleEvent(event tcell.Event, s syncer, handler render.Handler) {
	switch e := event.(type) {
	case *tcell.EventKey:
		switch {
		case e.Key() == tcell.KeyEscape, e.Key() == tcell.KeyCtrlC:
			handler.Quit()
		case e.Key() == tcell.KeyRune && (e.Rune() == 'q' || e.Rune() == 'Q'):
			handler.Quit()
		}
	case *tcell.EventResize:
		s.Sync()
	}
}
