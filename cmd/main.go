/*
 * Copyright (C) 2023 by Jason Figge
 */

package main

import (
	"fmt"
	"log"
	"os"

	"mazer/internal"
	"mazer/internal/config"
	"mazer/internal/graphics"
	"mazer/internal/maze"
	"mazer/internal/terminal"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "%sERROR: %v%s\n", config.LogErrorColor, err, config.LogColorReset)
		os.Exit(1)
	}
}

func run() error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	m, err := maze.Open(cfg.MazeFile)
	if err != nil {
		return err
	}
	log.Printf("%s[APP] [INFO] loaded maze %s%s", config.LogInfoColor, cfg.MazeFile, config.LogColorReset)

	controller := internal.NewController(m, internal.WithWallWidth(cfg.WallWidth))
	g := controller.Geometry()
	if cfg.Surface == config.SurfaceTerminal {
		return terminal.Open(g.Width, g.Height, controller, cfg.FrameDelay)
	}
	return graphics.Open("Maze", g.Width, g.Height, controller)
}
