package config

import (
	"bytes"
	"errors"
	"io"
	"os"
	"path/filepath"

	yaml "go.yaml.in/yaml/v4"

	"github.com/froggy1014/orval/oaserrors"
)

// Load reads, validates and decodes the configuration file at path.
// Relative input.target and output.workspace paths are resolved against the
// directory of the file.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path) //nolint:gosec // path is user-provided input
	if err != nil {
		return nil, &oaserrors.ParseError{Path: path, Message: "failed to read configuration", Cause: err}
	}

	cfg, err := Parse(data)
	if err != nil {
		var pe *oaserrors.ParseError
		if errors.As(err, &pe) && pe.Path == "" {
			pe.Path = path
		}
		return nil, err
	}

	dir := filepath.Dir(path)
	if cfg.Input.Target != "" && !filepath.IsAbs(cfg.Input.Target) {
		cfg.Input.Target = filepath.Join(dir, cfg.Input.Target)
	}
	if !filepath.IsAbs(cfg.Output.Workspace) {
		cfg.Output.Workspace = filepath.Join(dir, cfg.Output.Workspace)
	}
	return cfg, nil
}

// Parse validates and decodes a YAML or JSON configuration document.
func Parse(data []byte) (*Config, error) {
	if err := ValidateSchema(data); err != nil {
		return nil, err
	}

	cfg := &Config{}
	dec := yaml.NewDecoder(bytes.NewReader(data))
	if err := dec.Decode(cfg); err != nil && !errors.Is(err, io.EOF) {
		var cfgErr *oaserrors.ConfigError
		if errors.As(err, &cfgErr) {
			return nil, err
		}
		return nil, &oaserrors.ParseError{Message: "failed to decode configuration", Cause: err}
	}

	if err := cfg.Output.Override.compileTemplates(); err != nil {
		return nil, err
	}

	cfg.ApplyDefaults()
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}
