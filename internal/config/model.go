package config

import (
	"errors"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/specialistvlad/beamgridgo/internal/beam"
	"github.com/specialistvlad/beamgridgo/internal/optics"
)

// ErrInvalidManifest wraps every validation failure of a Manifest.
var ErrInvalidManifest = errors.New("invalid manifest")

// Manifest is the unified, format-agnostic representation of a run.
type Manifest struct {
	// Name labels the contraption in reports. Optional.
	Name string
	// Layout is the path of the layout file. Relative paths are resolved
	// against the directory of the manifest that declared them.
	Layout  string
	Workers int
	Order   string
	// Starts lists explicit starting beams. When empty, every edge start is
	// searched.
	Starts []Start
	Output Output
}

// Start is one explicitly requested starting beam.
type Start struct {
	Name    string
	X       int
	Y       int
	Heading string
}

// Output configures where results go.
type Output struct {
	Format     string
	Render     bool
	ResultsDB  string
	PublishURL string
	Namespace  string
	Event      string
}

// Beam converts s into a beam state.
func (s Start) Beam() (beam.Beam, error) {
	d, err := optics.ParseDirection(s.Heading)
	if err != nil {
		return beam.Beam{}, fmt.Errorf("start %q: %w", s.Name, err)
	}
	return beam.At(s.X, s.Y, d), nil
}

// Beams converts every explicit start into a beam state.
func (m *Manifest) Beams() ([]beam.Beam, error) {
	out := make([]beam.Beam, 0, len(m.Starts))
	for _, s := range m.Starts {
		b, err := s.Beam()
		if err != nil {
			return nil, err
		}
		out = append(out, b)
	}
	return out, nil
}

// Validate checks the parts of the manifest that do not need the layout.
// Start coordinates are checked against the grid when the search runs.
func (m *Manifest) Validate() error {
	var errs []error
	if m.Workers < 0 {
		errs = append(errs, fmt.Errorf("workers must not be negative, got %d", m.Workers))
	}
	if _, err := beam.ParseOrder(m.Order); err != nil {
		errs = append(errs, err)
	}
	for _, s := range m.Starts {
		if _, err := s.Beam(); err != nil {
			errs = append(errs, err)
		}
	}
	switch strings.ToLower(m.Output.Format) {
	case "", "text", "json":
	default:
		errs = append(errs, fmt.Errorf("unknown output format %q", m.Output.Format))
	}
	if len(errs) > 0 {
		return fmt.Errorf("%w: %w", ErrInvalidManifest, errors.Join(errs...))
	}
	return nil
}

// ResolvePath makes a manifest-relative path absolute against the directory
// of the file that declared it.
func ResolvePath(manifestFile, p string) string {
	if p == "" || filepath.IsAbs(p) {
		return p
	}
	return filepath.Join(filepath.Dir(manifestFile), p)
}

// Merge copies every field set in other over m. Starts are appended.
func (m *Manifest) Merge(other *Manifest) error {
	if other == nil {
		return nil
	}
	if other.Name != "" {
		if m.Name != "" && m.Name != other.Name {
			return fmt.Errorf("%w: contraption declared twice (%q and %q)", ErrInvalidManifest, m.Name, other.Name)
		}
		m.Name = other.Name
	}
	if other.Layout != "" {
		if m.Layout != "" && m.Layout != other.Layout {
			return fmt.Errorf("%w: layout declared twice (%q and %q)", ErrInvalidManifest, m.Layout, other.Layout)
		}
		m.Layout = other.Layout
	}
	if other.Workers != 0 {
		m.Workers = other.Workers
	}
	if other.Order != "" {
		m.Order = other.Order
	}
	m.Starts = append(m.Starts, other.Starts...)

	o := other.Output
	if o.Format != "" {
		m.Output.Format = o.Format
	}
	if o.Render {
		m.Output.Render = true
	}
	if o.ResultsDB != "" {
		m.Output.ResultsDB = o.ResultsDB
	}
	if o.PublishURL != "" {
		m.Output.PublishURL = o.PublishURL
	}
	if o.Namespace != "" {
		m.Output.Namespace = o.Namespace
	}
	if o.Event != "" {
		m.Output.Event = o.Event
	}
	return nil
}
