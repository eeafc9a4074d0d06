// Package yamlconfig provides the YAML implementation of the config.Loader
// interface, for teams that keep their run manifests next to other YAML
// tooling. The document shape mirrors the HCL manifest:
//
//	contraption:
//	  name: sample
//	  layout: sample.txt
//	  workers: 4
//	starts:
//	  - {name: corner, x: 0, y: 0, heading: right}
//	output:
//	  format: json
package yamlconfig

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/specialistvlad/beamgridgo/internal/config"
	"github.com/specialistvlad/beamgridgo/internal/ctxlog"
	"github.com/specialistvlad/beamgridgo/internal/fsutil"
	"gopkg.in/yaml.v3"
)

type document struct {
	Contraption *contraption `yaml:"contraption"`
	Starts      []start      `yaml:"starts"`
	Output      *output      `yaml:"output"`
}

type contraption struct {
	Name    string `yaml:"name"`
	Layout  string `yaml:"layout"`
	Workers int    `yaml:"workers"`
	Order   string `yaml:"order"`
}

type start struct {
	Name    string `yaml:"name"`
	X       int    `yaml:"x"`
	Y       int    `yaml:"y"`
	Heading string `yaml:"heading"`
}

type output struct {
	Format     string `yaml:"format"`
	Render     bool   `yaml:"render"`
	ResultsDB  string `yaml:"results_db"`
	PublishURL string `yaml:"publish_url"`
	Namespace  string `yaml:"namespace"`
	Event      string `yaml:"event"`
}

// Loader is the YAML-specific implementation of the config.Loader interface.
type Loader struct{}

// NewLoader creates a new YAML manifest loader.
func NewLoader() *Loader {
	return &Loader{}
}

// Load parses every given file, and every .yaml or .yml file below every given
// directory, and merges them into one Manifest. Unknown keys are rejected.
func (l *Loader) Load(ctx context.Context, paths ...string) (*config.Manifest, error) {
	logger := ctxlog.FromContext(ctx)
	logger.Debug("YAML loader started.", "path_count", len(paths))

	files, err := fsutil.CollectFiles(paths, ".yaml", ".yml")
	if err != nil {
		return nil, err
	}
	if len(files) == 0 {
		return nil, fmt.Errorf("%w: no .yaml or .yml files found in %s", config.ErrInvalidManifest, strings.Join(paths, ", "))
	}

	manifest := &config.Manifest{}
	for _, file := range files {
		doc, err := decodeFile(file)
		if err != nil {
			return nil, err
		}
		if err := manifest.Merge(translate(file, doc)); err != nil {
			return nil, fmt.Errorf("%s: %w", file, err)
		}
	}

	if err := manifest.Validate(); err != nil {
		return nil, err
	}

	logger.Debug("YAML loading complete.", "files", len(files), "contraption", manifest.Name, "starts", len(manifest.Starts))
	return manifest, nil
}

func decodeFile(file string) (*document, error) {
	f, err := os.Open(file)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	var doc document
	dec := yaml.NewDecoder(f)
	dec.KnownFields(true)
	if err := dec.Decode(&doc); err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("failed to decode YAML file %s: %w", file, err)
	}
	return &doc, nil
}

func translate(file string, doc *document) *config.Manifest {
	m := &config.Manifest{}
	if c := doc.Contraption; c != nil {
		m.Name = c.Name
		m.Layout = config.ResolvePath(file, c.Layout)
		m.Workers = c.Workers
		m.Order = c.Order
	}
	for _, s := range doc.Starts {
		m.Starts = append(m.Starts, config.Start{Name: s.Name, X: s.X, Y: s.Y, Heading: s.Heading})
	}
	if o := doc.Output; o != nil {
		m.Output = config.Output{
			Format:     o.Format,
			Render:     o.Render,
			ResultsDB:  config.ResolvePath(file, o.ResultsDB),
			PublishURL: o.PublishURL,
			Namespace:  o.Namespace,
			Event:      o.Event,
		}
	}
	return m
}
