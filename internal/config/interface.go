package config

import "context"

// Loader is the interface for a format-specific manifest loader.
type Loader interface {
	// Load reads one or more files or directories and merges every manifest
	// found into a single Manifest.
	Load(ctx context.Context, paths ...string) (*Manifest, error)
}
