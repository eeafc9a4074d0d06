// SPDX-License-Identifier: MIT
// Copyright (c) 2025 Vladyslav Kazantsev
package optics

import (
	"errors"
	"fmt"
	"strings"
)

// ErrUnknownDirection is returned when a heading name cannot be parsed.
var ErrUnknownDirection = errors.New("unknown direction")

// Direction is the heading of a beam. The ordinal doubles as the index into
// per-direction tables and bitmasks.
type Direction uint8

const (
	Right Direction = iota
	Left
	Up
	Down

	numDirections = 4
)

// Directions lists every heading in ordinal order.
var Directions = [numDirections]Direction{Right, Left, Up, Down}

var deltas = [numDirections][2]int{
	Right: {1, 0},
	Left:  {-1, 0},
	Up:    {0, -1},
	Down:  {0, 1},
}

var names = [numDirections]string{
	Right: "right",
	Left:  "left",
	Up:    "up",
	Down:  "down",
}

// Valid reports whether d is one of the four headings.
func (d Direction) Valid() bool {
	return d < numDirections
}

// Delta returns the unit displacement of one step in direction d. The y axis
// grows downwards, so Up is (0,-1).
func (d Direction) Delta() (dx, dy int) {
	if !d.Valid() {
		return 0, 0
	}
	v := deltas[d]
	return v[0], v[1]
}

// String returns the lower-case heading name.
func (d Direction) String() string {
	if !d.Valid() {
		return fmt.Sprintf("direction(%d)", uint8(d))
	}
	return names[d]
}

// ParseDirection accepts a heading name ("right", "Left", ...) or its
// single-letter form ("R", "l", ...).
func ParseDirection(s string) (Direction, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "right", "r":
		return Right, nil
	case "left", "l":
		return Left, nil
	case "up", "u":
		return Up, nil
	case "down", "d":
		return Down, nil
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownDirection, s)
}
