package verbs

import (
	"fmt"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/froggy1014/orval/config"
	"github.com/froggy1014/orval/hooks"
)

// Option configures a Generator.
type Option func(*generatorConfig) error

type generatorConfig struct {
	config   *config.Config
	loader   hooks.Loader
	logger   Logger
	registry *hooks.Registry
	metrics  prometheus.Registerer
}

func applyOptions(opts ...Option) (*generatorConfig, error) {
	cfg := &generatorConfig{
		logger: NopLogger{},
	}
	for _, opt := range opts {
		if err := opt(cfg); err != nil {
			return nil, err
		}
	}
	if cfg.config == nil {
		cfg.config = config.Default()
	}
	if cfg.loader == nil {
		cfg.loader = hooks.NewPackagesLoader()
	}
	if cfg.registry == nil {
		cfg.registry = hooks.DefaultRegistry
	}
	return cfg, nil
}

// WithConfig sets the configuration. Unset fields take their defaults.
// The configuration must not be modified while the Generator is in use.
func WithConfig(cfg *config.Config) Option {
	return func(c *generatorConfig) error {
		if cfg == nil {
			return fmt.Errorf("verbs: nil config")
		}
		c.config = cfg
		return nil
	}
}

// WithLoader sets the loader used for mutator references.
// The default loads packages with golang.org/x/tools/go/packages on every call.
func WithLoader(l hooks.Loader) Option {
	return func(c *generatorConfig) error {
		c.loader = l
		return nil
	}
}

// WithLogger sets the logger. A nil logger disables logging.
func WithLogger(l Logger) Option {
	return func(c *generatorConfig) error {
		if l == nil {
			l = NopLogger{}
		}
		c.logger = l
		return nil
	}
}

// WithRegistry sets the registry transformer references are looked up in.
// The default is hooks.DefaultRegistry.
func WithRegistry(reg *hooks.Registry) Option {
	return func(c *generatorConfig) error {
		c.registry = reg
		return nil
	}
}

// WithMetrics registers synthesis metrics on reg.
func WithMetrics(reg prometheus.Registerer) Option {
	return func(c *generatorConfig) error {
		c.metrics = reg
		return nil
	}
}
