/*
 * Copyright (C) 2023 by Jason Figge
 */

package maze

import "strings"

// Wall is one compass bit of a cell mask.
type Wall uint8

const (
	North Wall = 0x01
	East  Wall = 0x02
	South Wall = 0x04
	West  Wall = 0x08

	// Known masks every recognised wall bit. Anything above it is undefined by the format.
	Known = North | East | South | West
)

// Walls is the packed wall mask of a single cell.
type Walls uint8

// Has reports whether wall w is present.
func (ws Walls) Has(w Wall) bool {
	return uint8(ws)&uint8(w) != 0
}

// Count returns the number of recognised walls present.
func (ws Walls) Count() int {
	count := 0
	for _, w := range []Wall{North, East, South, West} {
		if ws.Has(w) {
			count++
		}
	}
	return count
}

func (w Wall) String() string {
	switch w {
	case North:
		return "North"
	case East:
		return "East"
	case South:
		return "South"
	case West:
		return "West"
	}
	return "Unknown"
}

func (ws Walls) String() string {
	var names []string
	for _, w := range []Wall{North, East, South, West} {
		if ws.Has(w) {
			names = append(names, w.String())
		}
	}
	if len(names) == 0 {
		return "Open"
	}
	return strings.Join(names, "|")
}
