/*
 * Copyright (C) 2023 by Jason Figge
 */

package render

import (
	"log"

	"mazer/internal/config"
)

// Handler is driven once per frame by a window loop until it stops running.
type Handler interface {
	OnDraw(surface Surface)
	Quit()
	Running() bool
	Destroy()
}

// BaseHandler carries the quit flag and the cleanup hooks shared by handlers.
type BaseHandler struct {
	quit       bool
	destroyers []func()
}

func (b *BaseHandler) Quit() {
	b.quit = true
}

func (b *BaseHandler) Running() bool {
	return !b.quit
}

func (b *BaseHandler) AddDestroyer(destroyer func()) {
	b.destroyers = append(b.destroyers, destroyer)
}

// Destroy runs the registered destroyers in reverse order, once.
func (b *BaseHandler) Destroy() {
	for i := len(b.destroyers) - 1; i >= 0; i-- {
		b.destroyers[i]()
	}
	b.destroyers = nil
}

// ErrorTrap logs a failed draw call. Frames keep rendering after a failure.
func ErrorTrap(err error) bool {
	if err == nil {
		return false
	}
	log.Printf("%s[APP] [ERROR] %v%s", config.LogErrorColor, err, config.LogColorReset)
	return true
}
