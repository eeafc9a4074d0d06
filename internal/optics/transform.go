// SPDX-License-Identifier: MIT
// Copyright (c) 2025 Vladyslav Kazantsev
package optics

import (
	"errors"
	"fmt"
)

// ErrUndefinedTransform signals a (tile, heading) pair missing from the
// table. Validated layouts never produce one.
var ErrUndefinedTransform = errors.New("undefined transform")

// Exits is the ordered set of one or two headings a beam leaves a tile with.
type Exits struct {
	dirs [2]Direction
	n    uint8
}

func one(d Direction) Exits    { return Exits{dirs: [2]Direction{d}, n: 1} }
func two(a, b Direction) Exits { return Exits{dirs: [2]Direction{a, b}, n: 2} }

// Len returns the number of outgoing headings (1 or 2).
func (e Exits) Len() int { return int(e.n) }

// At returns the i-th outgoing heading.
func (e Exits) At(i int) Direction { return e.dirs[i] }

// Directions returns the outgoing headings as a slice.
func (e Exits) Directions() []Direction {
	return append([]Direction(nil), e.dirs[:e.n]...)
}

var table = [numTiles][numDirections]Exits{
	Empty: {
		Right: one(Right),
		Left:  one(Left),
		Up:    one(Up),
		Down:  one(Down),
	},
	ForwardMirror: {
		Right: one(Up),
		Left:  one(Down),
		Up:    one(Right),
		Down:  one(Left),
	},
	BackwardMirror: {
		Right: one(Down),
		Left:  one(Up),
		Up:    one(Left),
		Down:  one(Right),
	},
	VerticalSplitter: {
		Right: two(Up, Down),
		Left:  two(Up, Down),
		Up:    one(Up),
		Down:  one(Down),
	},
	HorizontalSplitter: {
		Right: one(Right),
		Left:  one(Left),
		Up:    two(Right, Left),
		Down:  two(Right, Left),
	},
}

// Transform returns the headings a beam entering tile t while travelling in
// direction d leaves with.
func Transform(t Tile, d Direction) (Exits, error) {
	if !t.Valid() || !d.Valid() {
		return Exits{}, fmt.Errorf("%w: tile %d heading %d", ErrUndefinedTransform, uint8(t), uint8(d))
	}
	e := table[t][d]
	if e.n == 0 {
		return Exits{}, fmt.Errorf("%w: tile %q heading %s", ErrUndefinedTransform, t.Symbol(), d)
	}
	return e, nil
}
