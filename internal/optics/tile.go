// SPDX-License-Identifier: MIT
// Copyright (c) 2025 Vladyslav Kazantsev
package optics

import (
	"errors"
	"fmt"
)

// ErrUnknownTile is returned for a layout symbol outside the tile set.
var ErrUnknownTile = errors.New("unknown tile symbol")

// Tile is the content of one grid cell.
type Tile uint8

const (
	Empty              Tile = iota // .
	ForwardMirror                  // /
	BackwardMirror                 // \
	VerticalSplitter               // |
	HorizontalSplitter             // -

	numTiles = 5
)

var symbols = [numTiles]byte{
	Empty:              '.',
	ForwardMirror:      '/',
	BackwardMirror:     '\\',
	VerticalSplitter:   '|',
	HorizontalSplitter: '-',
}

// Valid reports whether t is one of the five tile kinds.
func (t Tile) Valid() bool {
	return t < numTiles
}

// Symbol returns the layout character for t.
func (t Tile) Symbol() byte {
	if !t.Valid() {
		return '?'
	}
	return symbols[t]
}

func (t Tile) String() string {
	return string(t.Symbol())
}

// ParseTile maps a layout character to its Tile.
func ParseTile(c byte) (Tile, error) {
	switch c {
	case '.':
		return Empty, nil
	case '/':
		return ForwardMirror, nil
	case '\\':
		return BackwardMirror, nil
	case '|':
		return VerticalSplitter, nil
	case '-':
		return HorizontalSplitter, nil
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownTile, c)
}
