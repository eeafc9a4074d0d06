// Package config defines the format-agnostic run manifest, along with the
// Loader interface for reading manifests from various file formats.
//
// The `config.Manifest` is the single source of truth the app layer merges
// with command-line flags. Concrete loaders for HCL and YAML are provided in
// separate packages.
package config
