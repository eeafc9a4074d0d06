package app

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/specialistvlad/beamgridgo/internal/config"
	"github.com/specialistvlad/beamgridgo/internal/ctxlog"
	"github.com/specialistvlad/beamgridgo/internal/hcl"
	"github.com/specialistvlad/beamgridgo/internal/yamlconfig"
)

// loaderFor picks the manifest loader by file extension. Directories are
// read as HCL.
func loaderFor(path string) (config.Loader, error) {
	info, err := os.Stat(path)
	if err != nil {
		return nil, fmt.Errorf("error accessing manifest %s: %w", path, err)
	}
	if info.IsDir() {
		return hcl.NewLoader(), nil
	}
	switch strings.ToLower(filepath.Ext(path)) {
	case ".hcl":
		return hcl.NewLoader(), nil
	case ".yaml", ".yml":
		return yamlconfig.NewLoader(), nil
	default:
		return nil, fmt.Errorf("%w: unsupported manifest extension %q", config.ErrInvalidManifest, filepath.Ext(path))
	}
}

// resolveManifest loads the manifest, if any, and lays the explicitly set
// configuration fields over it.
func (a *App) resolveManifest(ctx context.Context) (*config.Manifest, error) {
	logger := ctxlog.FromContext(ctx)
	m := &config.Manifest{}

	if path := a.config.ManifestPath; path != "" {
		loader, err := loaderFor(path)
		if err != nil {
			return nil, err
		}
		loaded, err := loader.Load(ctx, path)
		if err != nil {
			return nil, fmt.Errorf("failed to load manifest: %w", err)
		}
		m = loaded
		logger.Debug("Manifest loaded.", "path", path, "contraption", m.Name)
	}

	applyOverrides(m, a.config)
	if m.Layout == "" {
		return nil, ErrNoLayout
	}
	if err := m.Validate(); err != nil {
		return nil, err
	}
	return m, nil
}

func applyOverrides(m *config.Manifest, cfg *Config) {
	if cfg.LayoutPath != "" {
		m.Layout = cfg.LayoutPath
	}
	if len(cfg.Starts) > 0 {
		m.Starts = cfg.Starts
	}
	if cfg.Workers > 0 {
		m.Workers = cfg.Workers
	}
	if cfg.Order != "" {
		m.Order = cfg.Order
	}
	if cfg.Format != "" {
		m.Output.Format = cfg.Format
	}
	if cfg.Render {
		m.Output.Render = true
	}
	if cfg.ResultsDB != "" {
		m.Output.ResultsDB = cfg.ResultsDB
	}
	if cfg.PublishURL != "" {
		m.Output.PublishURL = cfg.PublishURL
	}
}
