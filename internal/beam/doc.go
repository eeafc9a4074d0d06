// SPDX-License-Identifier: MIT
// Copyright (c) 2025 Vladyslav Kazantsev
//
// Package beam runs a single beam through a layout and reports which cells it
// energizes.
//
// # How It Works
//
// A simulation is a worklist traversal over beam states, a (cell, heading)
// pair. Each popped state is first checked against the run's energy.Field:
// if that heading was already processed in that cell the state is dropped
// before any table lookup. Otherwise the heading is marked, the tile's
// transform gives one or two exit headings, and every successor that stays
// inside the grid is pushed back onto the worklist.
//
// Because a (cell, heading) pair is expanded at most once, a run processes at
// most 4*W*H states and terminates even when mirrors route a beam in a loop.
// The set of energized cells does not depend on whether the worklist is a
// queue or a stack; both orders are available so that property can be
// checked.
package beam
