// SPDX-License-Identifier: MIT
// Copyright (c) 2025 Vladyslav Kazantsev
package beam

import (
	"errors"
	"fmt"

	"github.com/specialistvlad/beamgridgo/internal/energy"
	"github.com/specialistvlad/beamgridgo/internal/layout"
	"github.com/specialistvlad/beamgridgo/internal/optics"
)

var (
	// ErrOutOfBounds is returned when a start lies outside the grid.
	ErrOutOfBounds = errors.New("start position outside grid")
	// ErrUnknownOrder is returned by ParseOrder.
	ErrUnknownOrder = errors.New("unknown worklist order")
)

// Trace is the outcome of one simulation run.
type Trace struct {
	Start Beam
	Field *energy.Field
	// Processed counts beam states that were expanded. It never exceeds
	// 4*W*H.
	Processed int
	// Discarded counts beam states dropped because their heading was
	// already marked.
	Discarded int
}

// Energized returns the number of energized cells.
func (t *Trace) Energized() int {
	return t.Field.Count()
}

// Option configures a Simulator.
type Option func(*Simulator)

// WithOrder selects the worklist order. FIFO is the default.
func WithOrder(o Order) Option {
	return func(s *Simulator) { s.order = o }
}

// Simulator runs beams through layouts. It keeps no state between runs and
// is safe for concurrent use.
type Simulator struct {
	order Order
}

// New creates a Simulator.
func New(opts ...Option) *Simulator {
	s := &Simulator{order: FIFO}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Order returns the worklist order used by s.
func (s *Simulator) Order() Order {
	return s.order
}

// Trace runs a single beam from start and returns the energized field.
func (s *Simulator) Trace(g *layout.Grid, start Beam) (*Trace, error) {
	if g == nil || g.Width() == 0 || g.Height() == 0 {
		return nil, layout.ErrEmptyGrid
	}
	if !g.Contains(start.Pos) {
		return nil, fmt.Errorf("%w: %s on a %dx%d grid", ErrOutOfBounds, start.Pos, g.Width(), g.Height())
	}
	if !start.Heading.Valid() {
		return nil, fmt.Errorf("%w: %s", optics.ErrUnknownDirection, start.Heading)
	}

	field := energy.NewField(g.Width(), g.Height())
	trace := &Trace{Start: start, Field: field}

	work := newWorklist(s.order, 16)
	work.push(start)

	for work.len() > 0 {
		b := work.pop()
		if !field.Mark(b.Pos, b.Heading) {
			trace.Discarded++
			continue
		}
		trace.Processed++

		exits, err := optics.Transform(g.At(b.Pos), b.Heading)
		if err != nil {
			return nil, fmt.Errorf("at %s: %w", b, err)
		}
		for i := 0; i < exits.Len(); i++ {
			d := exits.At(i)
			next := b.Pos.Add(d.Delta())
			if g.Contains(next) {
				work.push(Beam{Pos: next, Heading: d})
			}
		}
	}

	return trace, nil
}

// Energize runs a single beam from start and returns the number of energized
// cells.
func (s *Simulator) Energize(g *layout.Grid, start Beam) (int, error) {
	trace, err := s.Trace(g, start)
	if err != nil {
		return 0, err
	}
	return trace.Energized(), nil
}
