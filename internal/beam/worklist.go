// SPDX-License-Identifier: MIT
// Copyright (c) 2025 Vladyslav Kazantsev
package beam

import (
	"fmt"
	"strings"
)

// Order selects how the worklist hands out pending beam states.
type Order int

const (
	// FIFO processes beam states breadth-first.
	FIFO Order = iota
	// LIFO processes beam states depth-first.
	LIFO
)

func (o Order) String() string {
	switch o {
	case FIFO:
		return "fifo"
	case LIFO:
		return "lifo"
	default:
		return fmt.Sprintf("order(%d)", int(o))
	}
}

// ParseOrder accepts "fifo", "lifo" or the empty string (FIFO).
func ParseOrder(s string) (Order, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "fifo", "queue", "bfs":
		return FIFO, nil
	case "lifo", "stack", "dfs":
		return LIFO, nil
	}
	return FIFO, fmt.Errorf("%w: %q", ErrUnknownOrder, s)
}

// worklist is a slice-backed queue or stack of beam states.
type worklist struct {
	order Order
	items []Beam
	head  int
}

func newWorklist(order Order, capacity int) *worklist {
	return &worklist{order: order, items: make([]Beam, 0, capacity)}
}

func (w *worklist) push(b Beam) {
	w.items = append(w.items, b)
}

func (w *worklist) len() int {
	return len(w.items) - w.head
}

func (w *worklist) pop() Beam {
	if w.order == LIFO {
		last := len(w.items) - 1
		b := w.items[last]
		w.items = w.items[:last]
		return b
	}

	b := w.items[w.head]
	w.head++
	// Reclaim the consumed prefix once it dominates the backing array.
	if w.head > 64 && w.head*2 > len(w.items) {
		n := copy(w.items, w.items[w.head:])
		w.items = w.items[:n]
		w.head = 0
	}
	return b
}
