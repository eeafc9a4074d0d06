package hcl

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/hashicorp/hcl/v2"
	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"
	"github.com/specialistvlad/beamgridgo/internal/config"
	"github.com/specialistvlad/beamgridgo/internal/ctxlog"
	"github.com/specialistvlad/beamgridgo/internal/fsutil"
	"github.com/specialistvlad/beamgridgo/internal/optics"
	"github.com/zclconf/go-cty/cty"
)

// Loader is the HCL-specific implementation of the config.Loader interface.
type Loader struct {
	// Environ supplies the env map of the evaluation context. Defaults to
	// os.Environ.
	Environ func() []string
}

// NewLoader creates a new HCL manifest loader.
func NewLoader() *Loader {
	return &Loader{Environ: os.Environ}
}

// Load parses every given file, and every .hcl file below every given
// directory, and merges them into one Manifest.
func (l *Loader) Load(ctx context.Context, paths ...string) (*config.Manifest, error) {
	logger := ctxlog.FromContext(ctx)
	logger.Debug("HCL loader started.", "path_count", len(paths))

	files, err := fsutil.CollectFiles(paths, ".hcl")
	if err != nil {
		return nil, err
	}
	if len(files) == 0 {
		return nil, fmt.Errorf("%w: no .hcl files found in %s", config.ErrInvalidManifest, strings.Join(paths, ", "))
	}
	logger.Debug("Discovered HCL files.", "count", len(files))

	parser := hclparse.NewParser()
	evalCtx := l.evalContext()
	manifest := &config.Manifest{}

	for _, file := range files {
		hclFile, diags := parser.ParseHCLFile(file)
		if diags.HasErrors() {
			return nil, fmt.Errorf("failed to parse HCL file %s: %w", file, diags)
		}

		var root fileRoot
		diags = gohcl.DecodeBody(hclFile.Body, evalCtx, &root)
		if diags.HasErrors() {
			return nil, fmt.Errorf("failed to decode HCL file %s: %w", file, diags)
		}

		part, err := l.translate(file, &root)
		if err != nil {
			return nil, err
		}
		if err := manifest.Merge(part); err != nil {
			return nil, fmt.Errorf("%s: %w", file, err)
		}
	}

	if err := manifest.Validate(); err != nil {
		return nil, err
	}

	logger.Debug("HCL loading complete.", "contraption", manifest.Name, "layout", manifest.Layout, "starts", len(manifest.Starts))
	return manifest, nil
}

// translate converts the HCL-specific schema of one file into the agnostic
// model.
func (l *Loader) translate(file string, root *fileRoot) (*config.Manifest, error) {
	if len(root.Contraptions) > 1 {
		return nil, fmt.Errorf("%w: %s declares %d contraption blocks, expected at most one", config.ErrInvalidManifest, file, len(root.Contraptions))
	}
	if len(root.Outputs) > 1 {
		return nil, fmt.Errorf("%w: %s declares %d output blocks, expected at most one", config.ErrInvalidManifest, file, len(root.Outputs))
	}

	m := &config.Manifest{}
	if len(root.Contraptions) == 1 {
		c := root.Contraptions[0]
		m.Name = c.Name
		m.Layout = config.ResolvePath(file, c.Layout)
		m.Order = c.Order
		if c.Workers != nil {
			m.Workers = *c.Workers
		}
	}
	for _, s := range root.Starts {
		m.Starts = append(m.Starts, config.Start{Name: s.Name, X: s.X, Y: s.Y, Heading: s.Heading})
	}
	if len(root.Outputs) == 1 {
		o := root.Outputs[0]
		m.Output = config.Output{
			Format:     o.Format,
			Render:     o.Render,
			ResultsDB:  config.ResolvePath(file, o.ResultsDB),
			PublishURL: o.PublishURL,
			Namespace:  o.Namespace,
			Event:      o.Event,
		}
	}
	return m, nil
}

// evalContext exposes the headings as bare variables and the process
// environment as the env map.
func (l *Loader) evalContext() *hcl.EvalContext {
	vars := make(map[string]cty.Value, len(optics.Directions)+1)
	for _, d := range optics.Directions {
		vars[d.String()] = cty.StringVal(d.String())
	}

	env := make(map[string]cty.Value)
	if l.Environ != nil {
		for _, kv := range l.Environ() {
			k, v, ok := strings.Cut(kv, "=")
			if ok && k != "" {
				env[k] = cty.StringVal(v)
			}
		}
	}
	if len(env) == 0 {
		vars["env"] = cty.MapValEmpty(cty.String)
	} else {
		vars["env"] = cty.MapVal(env)
	}

	return &hcl.EvalContext{Variables: vars}
}
