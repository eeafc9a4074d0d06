package app

import (
	"errors"

	"github.com/specialistvlad/beamgridgo/internal/config"
)

// ErrNoLayout is returned when neither the flags nor the manifest name a
// layout file.
var ErrNoLayout = errors.New("no layout given: pass LAYOUT_PATH, -layout or a manifest with a contraption block")

// Config holds all the necessary configuration for an App instance to run.
// Zero values mean "not set"; set fields override the manifest.
type Config struct {
	LayoutPath   string // layout text file, optionally .zst
	ManifestPath string // .hcl / .yaml file or a directory of .hcl files

	Starts  []config.Start
	Workers int
	Order   string

	Format     string
	Render     bool
	ResultsDB  string
	PublishURL string

	LogFormat       string
	LogLevel        string
	HealthcheckPort int
}

// NewConfig validates cfg and returns a copy of it.
func NewConfig(cfg Config) (*Config, error) {
	if cfg.LayoutPath == "" && cfg.ManifestPath == "" {
		return nil, ErrNoLayout
	}
	if cfg.Workers < 0 {
		return nil, errors.New("workers must not be negative")
	}
	return &cfg, nil
}
