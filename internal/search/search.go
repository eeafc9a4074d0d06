package search

import (
	"context"
	"errors"
	"fmt"
	"runtime"

	"github.com/specialistvlad/beamgridgo/internal/beam"
	"github.com/specialistvlad/beamgridgo/internal/ctxlog"
	"github.com/specialistvlad/beamgridgo/internal/layout"
	"golang.org/x/sync/errgroup"
)

// ErrNoStarts is returned when Search is called without any starting beams.
var ErrNoStarts = errors.New("no starting beams to search")

// Run is the outcome of one starting beam.
type Run struct {
	Index     int
	Start     beam.Beam
	Energized int
}

// Result holds every run of a search and the best one.
type Result struct {
	Runs []Run
	Best Run
}

// Recorder receives each finished run. Implementations must be safe for
// concurrent use; Record is called from worker goroutines.
type Recorder interface {
	Record(ctx context.Context, run Run) error
}

// Searcher evaluates many starting beams concurrently.
type Searcher struct {
	sim       *beam.Simulator
	workers   int
	recorders []Recorder
}

// New creates a Searcher. A non-positive worker count means one worker per
// CPU.
func New(sim *beam.Simulator, workers int, recorders ...Recorder) *Searcher {
	if sim == nil {
		sim = beam.New()
	}
	if workers <= 0 {
		workers = runtime.GOMAXPROCS(0)
	}
	return &Searcher{sim: sim, workers: workers, recorders: recorders}
}

// Workers returns the size of the worker pool.
func (s *Searcher) Workers() int {
	return s.workers
}

type job struct {
	index int
	start beam.Beam
}

// Search runs every start in starts against g and returns all runs plus the
// maximum. Ties go to the start listed first.
func (s *Searcher) Search(ctx context.Context, g *layout.Grid, starts []beam.Beam) (*Result, error) {
	logger := ctxlog.FromContext(ctx)
	if len(starts) == 0 {
		return nil, ErrNoStarts
	}
	if g == nil {
		return nil, layout.ErrEmptyGrid
	}

	workers := s.workers
	if workers > len(starts) {
		workers = len(starts)
	}
	logger.Debug("Search starting.", "starts", len(starts), "workers", workers, "order", s.sim.Order().String())

	runs := make([]Run, len(starts))
	jobs := make(chan job)
	grp, gctx := errgroup.WithContext(ctx)

	grp.Go(func() error {
		defer close(jobs)
		for i, start := range starts {
			select {
			case jobs <- job{index: i, start: start}:
			case <-gctx.Done():
				return gctx.Err()
			}
		}
		return nil
	})

	for w := 0; w < workers; w++ {
		workerID := w
		grp.Go(func() error {
			return s.worker(gctx, g, jobs, runs, workerID)
		})
	}

	if err := grp.Wait(); err != nil {
		return nil, err
	}

	best := runs[0]
	for _, r := range runs[1:] {
		if r.Energized > best.Energized {
			best = r
		}
	}
	logger.Debug("Search finished.", "runs", len(runs), "best_start", best.Start.String(), "best_energized", best.Energized)

	return &Result{Runs: runs, Best: best}, nil
}

// worker is the processing loop for a single pool member. It owns every
// slot of runs it writes to.
func (s *Searcher) worker(ctx context.Context, g *layout.Grid, jobs <-chan job, runs []Run, workerID int) error {
	logger := ctxlog.FromContext(ctx).With("workerID", workerID)
	logger.Debug("Worker started.")

	processed := 0
	for j := range jobs {
		if ctx.Err() != nil {
			return ctx.Err()
		}

		n, err := s.sim.Energize(g, j.start)
		if err != nil {
			logger.Error("Simulation failed.", "start", j.start.String(), "error", err)
			return fmt.Errorf("start %s: %w", j.start, err)
		}

		run := Run{Index: j.index, Start: j.start, Energized: n}
		runs[j.index] = run
		processed++

		for _, rec := range s.recorders {
			if err := rec.Record(ctx, run); err != nil {
				return fmt.Errorf("recording start %s: %w", j.start, err)
			}
		}
	}

	logger.Debug("Worker finished.", "processed", processed)
	return nil
}
