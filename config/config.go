package config

import (
	"slices"

	"github.com/froggy1014/orval/oaserrors"
)

// OutputClient names the client flavor emitters generate.
type OutputClient string

// Supported clients.
const (
	ClientNetHTTP OutputClient = "net-http"
	ClientResty   OutputClient = "resty"
	ClientFetch   OutputClient = "fetch"
)

// DefaultClient is used when the configuration names none.
const DefaultClient = ClientNetHTTP

// Clients lists every supported client.
var Clients = []OutputClient{ClientNetHTTP, ClientResty, ClientFetch}

// Config is the complete orval configuration.
type Config struct {
	Input  Input  `json:"input" yaml:"input"`
	Output Output `json:"output" yaml:"output"`
}

// Input selects the API description and the operations to keep.
type Input struct {
	// Target is the path of the API description
	Target string `json:"target,omitempty" yaml:"target,omitempty"`
	// Filters restricts the operations that are synthesized (nil keeps all)
	Filters *Filters `json:"filters,omitempty" yaml:"filters,omitempty"`
}

// Output describes what emitters produce.
type Output struct {
	// Client is the client flavor
	Client OutputClient `json:"client,omitempty" yaml:"client,omitempty"`
	// Workspace is the directory hook references are resolved in
	Workspace string `json:"workspace,omitempty" yaml:"workspace,omitempty"`
	// ProjectFile optionally selects a go.work or alternate go.mod for hook loading
	ProjectFile string `json:"projectFile,omitempty" yaml:"projectFile,omitempty"`
	// Headers enables header parameter models for every operation
	Headers bool `json:"headers,omitempty" yaml:"headers,omitempty"`
	// Override holds the override layers
	Override Overrides `json:"override,omitempty" yaml:"override,omitempty"`
}

// Default returns a configuration with every default applied.
func Default() *Config {
	cfg := &Config{}
	cfg.ApplyDefaults()
	return cfg
}

// ApplyDefaults fills unset fields with their defaults.
func (c *Config) ApplyDefaults() {
	if c.Output.Client == "" {
		c.Output.Client = DefaultClient
	}
	if c.Output.Workspace == "" {
		c.Output.Workspace = "."
	}
}

// Validate checks values the schema cannot express.
func (c *Config) Validate() error {
	if c.Output.Client != "" && !slices.Contains(Clients, c.Output.Client) {
		return &oaserrors.ConfigError{
			Option:  "output.client",
			Value:   c.Output.Client,
			Message: "unsupported client",
		}
	}
	if err := c.Output.Override.Validate(); err != nil {
		return err
	}
	return nil
}
