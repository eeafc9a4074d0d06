package resultstore

import (
	"context"
	"sort"
	"sync"

	"github.com/specialistvlad/beamgridgo/internal/search"
)

// Memory is an in-memory Store. The zero value is ready to use.
type Memory struct {
	runs sync.Map // Key: run index, Value: search.Run
}

// NewMemory creates a new, empty in-memory store.
func NewMemory() *Memory {
	return &Memory{}
}

// Record stores a run, replacing any earlier run with the same index.
func (m *Memory) Record(ctx context.Context, run search.Run) error {
	m.runs.Store(run.Index, run)
	return nil
}

// Runs returns every recorded run ordered by index.
func (m *Memory) Runs(ctx context.Context) ([]search.Run, error) {
	var out []search.Run
	m.runs.Range(func(_, v any) bool {
		out = append(out, v.(search.Run))
		return true
	})
	sort.Slice(out, func(i, j int) bool { return out[i].Index < out[j].Index })
	return out, nil
}

// Len returns the number of recorded runs.
func (m *Memory) Len() int {
	n := 0
	m.runs.Range(func(_, _ any) bool {
		n++
		return true
	})
	return n
}

// Close is a no-op.
func (m *Memory) Close() error {
	return nil
}
