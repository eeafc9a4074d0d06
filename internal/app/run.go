package app

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"

	"github.com/google/uuid"
	"github.com/specialistvlad/beamgridgo/internal/beam"
	"github.com/specialistvlad/beamgridgo/internal/config"
	"github.com/specialistvlad/beamgridgo/internal/ctxlog"
	"github.com/specialistvlad/beamgridgo/internal/layout"
	"github.com/specialistvlad/beamgridgo/internal/publish"
	"github.com/specialistvlad/beamgridgo/internal/report"
	"github.com/specialistvlad/beamgridgo/internal/resultstore"
	"github.com/specialistvlad/beamgridgo/internal/search"
)

// Run executes the main application logic: it resolves the manifest, loads
// the layout, searches every start and writes the report.
func (a *App) Run(ctx context.Context) (err error) {
	ctx = ctxlog.WithLogger(ctx, a.logger)
	a.ctx = ctx
	a.logger.Debug("App.Run method started.")
	a.setPhase(phaseLoading)

	if a.config.HealthcheckPort > 0 {
		a.healthCheckServer()
		defer func() {
			if cerr := a.closeHealthCheckServer(); cerr != nil && err == nil {
				err = cerr
			}
		}()
	}

	manifest, err := a.resolveManifest(ctx)
	if err != nil {
		return err
	}

	writer, err := report.ForFormat(manifest.Output.Format)
	if err != nil {
		return fmt.Errorf("%w: %w", config.ErrInvalidManifest, err)
	}

	grid, err := layout.Load(manifest.Layout)
	if err != nil {
		return fmt.Errorf("failed to load layout: %w", err)
	}
	a.logger.Info("Layout loaded.", "path", manifest.Layout, "width", grid.Width(), "height", grid.Height())

	order, err := beam.ParseOrder(manifest.Order)
	if err != nil {
		return err
	}
	sim := beam.New(beam.WithOrder(order))

	starts, err := manifest.Beams()
	if err != nil {
		return err
	}
	if len(starts) == 0 {
		starts = beam.Edges(grid)
		a.logger.Debug("No explicit starts, searching every edge.", "count", len(starts))
	}

	memory := resultstore.NewMemory()
	out, err := a.openSinks(ctx, manifest, grid)
	if err != nil {
		return err
	}
	defer out.close(ctx)

	recorders := append([]search.Recorder{memory}, out.recorders()...)
	searcher := search.New(sim, manifest.Workers, recorders...)

	a.setPhase(phaseSearching)
	a.logger.Info("🚀 Starting concurrent search...", "starts", len(starts), "workers", searcher.Workers(), "order", order)
	result, err := searcher.Search(ctx, grid, starts)
	if err != nil {
		return fmt.Errorf("search failed: %w", err)
	}
	a.logger.Info("🏁 Search finished.", "best", result.Best.Start.String(), "energized", result.Best.Energized)

	a.setPhase(phaseReporting)
	runs, err := memory.Runs(ctx)
	if err != nil {
		return err
	}
	if out.db != nil {
		if best, ok, err := out.db.Best(ctx); err != nil {
			a.logger.Warn("Could not read back best run.", "error", err)
		} else if ok {
			a.logger.Info("Results persisted.", "search_id", out.db.ID(), "best", best.Start.String())
		}
	}

	summary := report.Summary{
		Name:   manifest.Name,
		Width:  grid.Width(),
		Height: grid.Height(),
		Runs:   runs,
		Best:   result.Best,
	}
	if manifest.Output.Render {
		trace, err := sim.Trace(grid, result.Best.Start)
		if err != nil {
			return err
		}
		summary.BestMap = trace.Field.Render()
	}

	if err := writer.Write(a.outW, summary); err != nil {
		return fmt.Errorf("failed to write report: %w", err)
	}

	a.setPhase(phaseDone)
	a.logger.Debug("App.Run method finished.")
	return nil
}

// sinkSet holds the optional recorders configured by the manifest output.
type sinkSet struct {
	db        *resultstore.SQLite
	publisher *publish.Publisher
}

func (s *sinkSet) recorders() []search.Recorder {
	var out []search.Recorder
	if s.db != nil {
		out = append(out, s.db)
	}
	if s.publisher != nil {
		out = append(out, s.publisher)
	}
	return out
}

func (s *sinkSet) close(ctx context.Context) {
	logger := ctxlog.FromContext(ctx)
	var errs []error
	if s.publisher != nil {
		errs = append(errs, s.publisher.Close())
	}
	if s.db != nil {
		errs = append(errs, s.db.Close())
	}
	if err := errors.Join(errs...); err != nil {
		logger.Error("Failed to close result sinks.", "error", err)
	}
}

func (a *App) openSinks(ctx context.Context, m *config.Manifest, grid *layout.Grid) (*sinkSet, error) {
	s := &sinkSet{}
	searchID := uuid.NewString()

	if path := m.Output.ResultsDB; path != "" {
		db, err := resultstore.OpenSQLite(ctx, path, resultstore.SearchInfo{
			ID:     searchID,
			Layout: filepath.Base(m.Layout),
			Width:  grid.Width(),
			Height: grid.Height(),
		})
		if err != nil {
			return nil, fmt.Errorf("failed to open results database: %w", err)
		}
		s.db = db
		a.logger.Debug("Results database opened.", "path", path, "search_id", searchID)
	}

	if url := m.Output.PublishURL; url != "" {
		p, err := publish.Dial(ctx, publish.Options{
			URL:       url,
			Namespace: m.Output.Namespace,
			Event:     m.Output.Event,
			SearchID:  searchID,
		})
		if err != nil {
			s.close(ctx)
			return nil, fmt.Errorf("failed to connect publisher: %w", err)
		}
		s.publisher = p
	}
	return s, nil
}
