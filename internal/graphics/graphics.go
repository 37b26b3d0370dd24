/*
 * Copyright (C) 2023 by Jason Figge
 */

// Package graphics opens an SDL2 window and drives a render.Handler until it quits.
package graphics

import (
	"fmt"
	"log"
	"runtime"

	"github.com/veandco/go-sdl2/sdl"

	"mazer/internal/config"
	"mazer/internal/render"
)

// Open creates a centered window of the given size and runs the frame loop
// until the handler stops running. Window, renderer and SDL are torn down on return.
func Open(title string, width, height int32, handler render.Handler) error {
	runtime.LockOSThread()
	defer runtime.UnlockOSThread()
	defer handler.Destroy()

	if err := sdl.Init(sdl.INIT_VIDEO); err != nil {
		return fmt.Errorf("%w: sdl init: %v", render.ErrSurfaceInit, err)
	}
	defer sdl.Quit()

	window, err := sdl.CreateWindow(title, sdl.WINDOWPOS_CENTERED, sdl.WINDOWPOS_CENTERED, width, height, sdl.WINDOW_SHOWN)
	if err != nil {
		return fmt.Errorf("%w: failed to create SDL window: %v", render.ErrSurfaceInit, err)
	}
	defer func() { render.ErrorTrap(window.Destroy()) }()

	renderer, err := sdl.CreateRenderer(window, -1, sdl.RENDERER_ACCELERATED)
	if err != nil {
		return fmt.Errorf("%w: failed to create SDL renderer: %v", render.ErrSurfaceInit, err)
	}
	defer func() { render.ErrorTrap(renderer.Destroy()) }()

	log.Printf("%s[APP] [INFO] SDL init had no errors%s", config.LogInfoColor, config.LogColorReset)

	surface := NewSurface(renderer)
	for handler.Running() {
		for event := sdl.PollEvent(); event != nil; event = sdl.PollEvent() {
			handleEvent(event, handler)
		}
		handler.OnDraw(surface)
		render.ErrorTrap(surface.Present())
	}
	return nil
}

func handleEvent(event sdl.Event, handler render.Handler) {
	switch e := event.(type) {
	case *sdl.QuitEvent:
		handler.Quit()
	case *sdl.KeyboardEvent:
		if e.State == sdl.PRESSED && (e.Keysym.Scancode == sdl.SCANCODE_Q || e.Keysym.Scancode == sdl.SCANCODE_ESCAPE) {
			handler.Quit()
		}
	}
}
