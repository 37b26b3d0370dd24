/*
 * Copyright (C) 2023 by Jason Figge
 */

// Package maze loads the packed 16x16 wall-bitmask files used by micromouse
// competitions and exposes read-only cell lookup.
package maze

import (
	"errors"
	"fmt"
	"io"
	"os"
)

const (
	Rows  = 16
	Cols  = 16
	Cells = Rows * Cols

	// Sentinel is the required value of byte 0. The same byte is also the
	// wall mask of cell (0,0).
	Sentinel = byte(0x0E)
)

var (
	ErrIO            = errors.New("maze file could not be opened")
	ErrTruncatedRead = errors.New("maze file read was incomplete")
	ErrFormat        = errors.New("maze file has an invalid sentinel byte")
	ErrIndex         = errors.New("maze cell index out of range")
)

// Maze is an immutable 16x16 grid of wall masks indexed by row*Cols+col.
type Maze struct {
	cells [Cells]byte
}

// Load reads exactly Cells bytes from the file at path.
func Load(path string) (*Maze, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrIO, err)
	}
	defer file.Close()

	m, err := Read(file)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return m, nil
}

// Read builds a Maze from the first Cells bytes of r. Anything after that is ignored.
func Read(r io.Reader) (*Maze, error) {
	m := &Maze{}
	n, err := io.ReadFull(r, m.cells[:])
	switch {
	case errors.Is(err, io.EOF), errors.Is(err, io.ErrUnexpectedEOF):
		return nil, fmt.Errorf("%w: could not read %d bytes: end of file after %d", ErrTruncatedRead, Cells, n)
	case err != nil:
		return nil, fmt.Errorf("%w: could not read %d bytes: %v", ErrTruncatedRead, Cells, err)
	}
	return m, nil
}

// Open loads the maze at path and rejects it unless it passes Validate.
func Open(path string) (*Maze, error) {
	m, err := Load(path)
	if err != nil {
		return nil, err
	}
	if !Validate(m) {
		return nil, fmt.Errorf("%w: %s starts with 0x%02X, want 0x%02X", ErrFormat, path, m.cells[0], Sentinel)
	}
	return m, nil
}

// Validate reports whether the first byte of m is the format sentinel.
func Validate(m *Maze) bool {
	return m != nil && m.cells[0] == Sentinel
}

// CellWalls returns the wall mask of the cell at (row, col).
func (m *Maze) CellWalls(row, col int) (Walls, error) {
	if row < 0 || row >= Rows || col < 0 || col >= Cols {
		return 0, fmt.Errorf("%w: (%d,%d)", ErrIndex, row, col)
	}
	return Walls(m.cells[row*Cols+col]), nil
}

// Bytes returns a copy of the raw file contents.
func (m *Maze) Bytes() [Cells]byte {
	return m.cells
}
