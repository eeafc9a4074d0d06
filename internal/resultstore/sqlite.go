package resultstore

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"
	"github.com/specialistvlad/beamgridgo/internal/beam"
	"github.com/specialistvlad/beamgridgo/internal/optics"
	"github.com/specialistvlad/beamgridgo/internal/search"

	_ "modernc.org/sqlite"
)

// SearchInfo describes the search a SQLite store records runs for.
type SearchInfo struct {
	// ID identifies the search. A random UUID is assigned when empty.
	ID     string
	Layout string
	Width  int
	Height int
}

// SQLite is a Store persisting runs into a SQLite database file.
type SQLite struct {
	db   *sql.DB
	info SearchInfo
}

// OpenSQLite opens (creating if needed) the database at path and registers
// a new search in it.
func OpenSQLite(ctx context.Context, path string, info SearchInfo) (*SQLite, error) {
	if path == "" {
		return nil, errors.New("empty results database path")
	}
	if dir := filepath.Dir(path); dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, err
		}
	}

	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, err
	}
	// A single connection serializes concurrent Record calls.
	db.SetMaxOpenConns(1)
	db.SetMaxIdleConns(1)
	db.SetConnMaxLifetime(0)

	if err := initSchema(ctx, db); err != nil {
		_ = db.Close()
		return nil, err
	}

	if info.ID == "" {
		info.ID = uuid.New().String()
	}
	_, err = db.ExecContext(ctx,
		`INSERT INTO searches(search_id, layout, width, height, created_at) VALUES(?, ?, ?, ?, ?)`,
		info.ID, info.Layout, info.Width, info.Height, time.Now().UTC().Format(time.RFC3339Nano),
	)
	if err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("failed to register search %s: %w", info.ID, err)
	}

	return &SQLite{db: db, info: info}, nil
}

func initSchema(ctx context.Context, db *sql.DB) error {
	stmts := []string{
		`PRAGMA journal_mode=WAL;`,
		`CREATE TABLE IF NOT EXISTS searches(
			search_id TEXT PRIMARY KEY,
			layout TEXT NOT NULL,
			width INTEGER NOT NULL,
			height INTEGER NOT NULL,
			created_at TEXT NOT NULL
		);`,
		`CREATE TABLE IF NOT EXISTS runs(
			search_id TEXT NOT NULL,
			idx INTEGER NOT NULL,
			start_x INTEGER NOT NULL,
			start_y INTEGER NOT NULL,
			heading TEXT NOT NULL,
			energized INTEGER NOT NULL,
			PRIMARY KEY(search_id, idx)
		);`,
		`CREATE INDEX IF NOT EXISTS runs_by_energized ON runs(search_id, energized DESC, idx);`,
	}
	for _, s := range stmts {
		if _, err := db.ExecContext(ctx, s); err != nil {
			return fmt.Errorf("sqlite schema: %w", err)
		}
	}
	return nil
}

// ID returns the id of the search this store records.
func (s *SQLite) ID() string {
	return s.info.ID
}

// Record persists a run.
func (s *SQLite) Record(ctx context.Context, run search.Run) error {
	_, err := s.db.ExecContext(ctx,
		`INSERT OR REPLACE INTO runs(search_id, idx, start_x, start_y, heading, energized) VALUES(?, ?, ?, ?, ?, ?)`,
		s.info.ID, run.Index, run.Start.Pos.X, run.Start.Pos.Y, run.Start.Heading.String(), run.Energized,
	)
	return err
}

// Runs returns the runs of this search ordered by index.
func (s *SQLite) Runs(ctx context.Context) ([]search.Run, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT idx, start_x, start_y, heading, energized FROM runs WHERE search_id = ? ORDER BY idx`,
		s.info.ID,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []search.Run
	for rows.Next() {
		run, err := scanRun(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, run)
	}
	return out, rows.Err()
}

// Best returns the run with the highest energized count, preferring the
// lowest index on ties. ok is false when nothing was recorded.
func (s *SQLite) Best(ctx context.Context) (run search.Run, ok bool, err error) {
	row := s.db.QueryRowContext(ctx,
		`SELECT idx, start_x, start_y, heading, energized FROM runs WHERE search_id = ? ORDER BY energized DESC, idx ASC LIMIT 1`,
		s.info.ID,
	)
	run, err = scanRun(row)
	if errors.Is(err, sql.ErrNoRows) {
		return search.Run{}, false, nil
	}
	if err != nil {
		return search.Run{}, false, err
	}
	return run, true, nil
}

// Close closes the database.
func (s *SQLite) Close() error {
	return s.db.Close()
}

type scanner interface {
	Scan(dest ...any) error
}

func scanRun(sc scanner) (search.Run, error) {
	var (
		run     search.Run
		x, y    int
		heading string
	)
	if err := sc.Scan(&run.Index, &x, &y, &heading, &run.Energized); err != nil {
		return search.Run{}, err
	}
	d, err := optics.ParseDirection(heading)
	if err != nil {
		return search.Run{}, fmt.Errorf("stored run %d: %w", run.Index, err)
	}
	run.Start = beam.At(x, y, d)
	return run, nil
}
