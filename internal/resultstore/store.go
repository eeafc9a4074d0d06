package resultstore

import (
	"context"

	"github.com/specialistvlad/beamgridgo/internal/search"
)

// Store records search runs and returns them afterwards.
type Store interface {
	search.Recorder

	// Runs returns the recorded runs ordered by their index in the search.
	Runs(ctx context.Context) ([]search.Run, error)

	// Close releases any resources held by the store.
	Close() error
}
