// SPDX-License-Identifier: MIT
// Copyright (c) 2025 Vladyslav Kazantsev

// Package energy tracks which cells a beam has entered, and in which
// heading. A Field belongs to exactly one simulation run.
package energy

import (
	"math/bits"
	"strings"

	"github.com/specialistvlad/beamgridgo/internal/layout"
	"github.com/specialistvlad/beamgridgo/internal/optics"
)

// Field is a W x H grid of 4-bit heading masks. Bit i is set once a beam
// travelling in optics.Direction(i) has been processed in that cell, and is
// never cleared afterwards. A cell is energized iff its mask is non-zero.
type Field struct {
	width  int
	height int
	masks  []uint8
}

// NewField returns an all-dark field of the given size.
func NewField(width, height int) *Field {
	return &Field{
		width:  width,
		height: height,
		masks:  make([]uint8, width*height),
	}
}

// Width returns the number of columns.
func (f *Field) Width() int { return f.width }

// Height returns the number of rows.
func (f *Field) Height() int { return f.height }

func (f *Field) index(p layout.Point) int {
	return p.Y*f.width + p.X
}

// Mark sets the flag for heading d at p. It returns false when the flag was
// already set.
func (f *Field) Mark(p layout.Point, d optics.Direction) bool {
	i := f.index(p)
	bit := uint8(1) << d
	if f.masks[i]&bit != 0 {
		return false
	}
	f.masks[i] |= bit
	return true
}

// Marked reports whether heading d has been processed at p.
func (f *Field) Marked(p layout.Point, d optics.Direction) bool {
	return f.masks[f.index(p)]&(uint8(1)<<d) != 0
}

// Energized reports whether any beam entered p.
func (f *Field) Energized(p layout.Point) bool {
	return f.masks[f.index(p)] != 0
}

// Headings lists the headings processed at p, in ordinal order.
func (f *Field) Headings(p layout.Point) []optics.Direction {
	mask := f.masks[f.index(p)]
	out := make([]optics.Direction, 0, bits.OnesCount8(mask))
	for _, d := range optics.Directions {
		if mask&(uint8(1)<<d) != 0 {
			out = append(out, d)
		}
	}
	return out
}

// Count returns the number of energized cells, regardless of heading.
func (f *Field) Count() int {
	n := 0
	for _, m := range f.masks {
		if m != 0 {
			n++
		}
	}
	return n
}

// Render draws the field with '#' for energized cells and '.' otherwise.
func (f *Field) Render() string {
	var sb strings.Builder
	sb.Grow((f.width + 1) * f.height)
	for y := 0; y < f.height; y++ {
		for x := 0; x < f.width; x++ {
			if f.masks[y*f.width+x] != 0 {
				sb.WriteByte('#')
			} else {
				sb.WriteByte('.')
			}
		}
		sb.WriteByte('\n')
	}
	return sb.String()
}
