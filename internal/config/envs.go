/*
 * Copyright (C) 2023 by Jason Figge
 */

package config

import (
	"errors"
	"fmt"
	"log"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

const (
	SurfaceSDL      = "sdl"
	SurfaceTerminal = "terminal"

	DefaultMazeFile = "binary_mazefiles/japan2007eq.maz"
)

var ErrConfig = errors.New("invalid configuration")

// Config holds the values read from the environment.
type Config struct {
	MazeFile   string        // Path of the 256 byte maze file
	Surface    string        // Rendering backend: sdl or terminal
	WallWidth  int32         // Stroke width of maze walls in pixels
	FrameDelay time.Duration // Pause between terminal frames
}

// Load reads an optional .env file and then the MAZE_* environment variables.
func Load() (Config, error) {
	if err := godotenv.Load(); err != nil {
		log.Printf("%s[APP] [INFO] .env file not found or could not be loaded: %v%s", LogInfoColor, err, LogColorReset)
	}
	return FromEnv()
}

// FromEnv builds a Config from the current environment only.
func FromEnv() (Config, error) {
	wallWidth, err := getEnvAsInt("MAZE_WALL_WIDTH", 1)
	if err != nil {
		return Config{}, err
	}
	if wallWidth < 1 {
		return Config{}, fmt.Errorf("%w: MAZE_WALL_WIDTH must be at least 1, got %d", ErrConfig, wallWidth)
	}

	delay, err := getEnvAsInt("MAZE_FRAME_DELAY_MS", 16)
	if err != nil {
		return Config{}, err
	}
	if delay < 0 {
		return Config{}, fmt.Errorf("%w: MAZE_FRAME_DELAY_MS must not be negative, got %d", ErrConfig, delay)
	}

	surface := getEnvWithDefault("MAZE_SURFACE", SurfaceSDL)
	if surface != SurfaceSDL && surface != SurfaceTerminal {
		return Config{}, fmt.Errorf("%w: MAZE_SURFACE must be %q or %q, got %q", ErrConfig, SurfaceSDL, SurfaceTerminal, surface)
	}

	return Config{
		MazeFile:   getEnvWithDefault("MAZE_FILE", DefaultMazeFile),
		Surface:    surface,
		WallWidth:  int32(wallWidth),
		FrameDelay: time.Duration(delay) * time.Millisecond,
	}, nil
}

// getEnvAsInt retrieves an environment variable as an integer, or defaultValue if unset.
func getEnvAsInt(key string, defaultValue int) (int, error) {
	valueStr, exists := os.LookupEnv(key)
	if !exists || valueStr == "" {
		return defaultValue, nil
	}
	value, err := strconv.Atoi(valueStr)
	if err != nil {
		return 0, fmt.Errorf("%w: %s must be an integer: %v", ErrConfig, key, err)
	}
	return value, nil
}

// getEnvWithDefault retrieves the value of an environment variable or returns a default value if not set.
func getEnvWithDefault(key, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists && value != "" {
		return value
	}
	return defaultValue
}
