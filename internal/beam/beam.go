// SPDX-License-Identifier: MIT
// Copyright (c) 2025 Vladyslav Kazantsev
package beam

import (
	"fmt"

	"github.com/specialistvlad/beamgridgo/internal/layout"
	"github.com/specialistvlad/beamgridgo/internal/optics"
)

// Beam is a beam state: the cell a beam occupies and the heading it entered
// that cell with.
type Beam struct {
	Pos     layout.Point
	Heading optics.Direction
}

// At is shorthand for building a Beam.
func At(x, y int, heading optics.Direction) Beam {
	return Beam{Pos: layout.Point{X: x, Y: y}, Heading: heading}
}

func (b Beam) String() string {
	return fmt.Sprintf("%s %s", b.Pos, b.Heading)
}

// Edges returns the canonical 2W+2H starting beams of g: every row entered
// from the left heading right, every row entered from the right heading
// left, every column entered from the top heading down, and every column
// entered from the bottom heading up, in that order.
func Edges(g *layout.Grid) []Beam {
	w, h := g.Width(), g.Height()
	starts := make([]Beam, 0, 2*w+2*h)
	for y := 0; y < h; y++ {
		starts = append(starts, At(0, y, optics.Right))
	}
	for y := 0; y < h; y++ {
		starts = append(starts, At(w-1, y, optics.Left))
	}
	for x := 0; x < w; x++ {
		starts = append(starts, At(x, 0, optics.Down))
	}
	for x := 0; x < w; x++ {
		starts = append(starts, At(x, h-1, optics.Up))
	}
	return starts
}
