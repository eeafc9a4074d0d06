// SPDX-License-Identifier: MIT
// Copyright (c) 2025 Vladyslav Kazantsev
//
// Package optics holds the fixed vocabulary of the contraption: the four
// beam headings, the five tile kinds, and the transformation table that maps
// a (tile, incoming heading) pair to the one or two headings a beam leaves
// the tile with.
//
// # Why a table?
//
// The set of tiles and headings is closed, so every possible interaction can
// be listed up front. Holding the rules in an immutable array indexed by the
// enum ordinals makes lookups O(1) and keeps the rule set reviewable in one
// place. The package has no mutable state and is safe for concurrent use.
package optics
