// SPDX-License-Identifier: MIT
// Copyright (c) 2025 Vladyslav Kazantsev
//
// This file defines the Grid, the immutable tile layout a beam travels
// through.
//
// A Grid is only ever built through New, Parse or Load, all of which reject
// empty, ragged or unrecognized input. Code holding a *Grid can therefore
// rely on every cell being a valid optics.Tile and on every row having the
// same width, and the simulator never has to re-check either.
package layout

import (
	"errors"
	"fmt"
	"strings"

	"github.com/specialistvlad/beamgridgo/internal/optics"
)

var (
	// ErrEmptyGrid is returned for a layout with no rows or no columns.
	ErrEmptyGrid = errors.New("empty grid")
	// ErrRaggedGrid is returned when rows differ in width.
	ErrRaggedGrid = errors.New("grid is not rectangular")
)

// Point addresses a cell; X is the column and Y the row, both zero-based.
type Point struct {
	X, Y int
}

func (p Point) String() string {
	return fmt.Sprintf("(%d,%d)", p.X, p.Y)
}

// Add returns p moved by (dx, dy).
func (p Point) Add(dx, dy int) Point {
	return Point{X: p.X + dx, Y: p.Y + dy}
}

// Grid is a read-only W x H arrangement of tiles. It is safe for concurrent
// readers.
type Grid struct {
	width  int
	height int
	tiles  []optics.Tile // row-major
}

// New builds a Grid from layout rows.
func New(rows []string) (*Grid, error) {
	if len(rows) == 0 || len(rows[0]) == 0 {
		return nil, ErrEmptyGrid
	}

	width := len(rows[0])
	g := &Grid{
		width:  width,
		height: len(rows),
		tiles:  make([]optics.Tile, 0, width*len(rows)),
	}

	for y, row := range rows {
		if len(row) != width {
			return nil, fmt.Errorf("%w: row %d has width %d, expected %d", ErrRaggedGrid, y, len(row), width)
		}
		for x := 0; x < len(row); x++ {
			tile, err := optics.ParseTile(row[x])
			if err != nil {
				return nil, fmt.Errorf("row %d column %d: %w", y, x, err)
			}
			g.tiles = append(g.tiles, tile)
		}
	}

	return g, nil
}

// Width returns the number of columns.
func (g *Grid) Width() int { return g.width }

// Height returns the number of rows.
func (g *Grid) Height() int { return g.height }

// Contains reports whether p lies inside the grid.
func (g *Grid) Contains(p Point) bool {
	return p.X >= 0 && p.X < g.width && p.Y >= 0 && p.Y < g.height
}

// At returns the tile at p. The caller must ensure Contains(p).
func (g *Grid) At(p Point) optics.Tile {
	return g.tiles[p.Y*g.width+p.X]
}

// String renders the grid back into its layout form, one row per line.
func (g *Grid) String() string {
	var sb strings.Builder
	sb.Grow((g.width + 1) * g.height)
	for y := 0; y < g.height; y++ {
		for x := 0; x < g.width; x++ {
			sb.WriteByte(g.tiles[y*g.width+x].Symbol())
		}
		sb.WriteByte('\n')
	}
	return sb.String()
}
