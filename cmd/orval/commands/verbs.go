package commands

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/spf13/cobra"

	"github.com/froggy1014/orval/config"
	"github.com/froggy1014/orval/document"
	"github.com/froggy1014/orval/hooks"
	"github.com/froggy1014/orval/verbs"
)

// verbsFlags contains flags for the verbs command
type verbsFlags struct {
	config      string
	input       string
	client      string
	format      string
	verbose     bool
	metricsFile string
}

func newVerbsCommand() *cobra.Command {
	flags := &verbsFlags{}
	cmd := &cobra.Command{
		Use:   "verbs",
		Short: "Synthesize verb options for every operation of a document",
		Long: `Load the configuration and the API description it targets, then print the
verb options of every kept operation together with synthesis stats and issues.

Operations with several request content types are split into one record per
type for the net-http and resty clients.`,
		Example: `  orval verbs --config orval.yaml
  orval verbs --input api.yaml --format yaml
  orval verbs --config orval.yaml --metrics-file orval.prom`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runVerbs(cmd, flags)
		},
	}

	cmd.Flags().StringVarP(&flags.config, "config", "c", "", "path to orval.yaml")
	cmd.Flags().StringVarP(&flags.input, "input", "i", "", "API description (overrides input.target)")
	cmd.Flags().StringVar(&flags.client, "client", "", "output client (overrides output.client)")
	cmd.Flags().StringVarP(&flags.format, "format", "f", FormatJSON, "output format: json or yaml")
	cmd.Flags().BoolVarP(&flags.verbose, "verbose", "v", false, "enable debug logging")
	cmd.Flags().StringVar(&flags.metricsFile, "metrics-file", "", "write Prometheus metrics in text format to this file")
	return cmd
}

func runVerbs(cmd *cobra.Command, flags *verbsFlags) error {
	if err := ValidateOutputFormat(flags.format); err != nil {
		return err
	}

	cfg, err := loadConfig(flags)
	if err != nil {
		return err
	}
	if cfg.Input.Target == "" {
		return errors.New("no API description: set input.target in the configuration or pass --input")
	}

	logger := newRunLogger(cmd.ErrOrStderr(), flags.verbose)
	logger.Debug("loading document", "target", cfg.Input.Target)

	ctx := cmd.Context()
	doc, err := document.LoadFile(ctx, cfg.Input.Target)
	if err != nil {
		return err
	}

	opts := []verbs.Option{
		verbs.WithConfig(cfg),
		verbs.WithLoader(hooks.NewCachingLoader(hooks.NewPackagesLoader())),
		verbs.WithLogger(verbs.NewSlogAdapter(logger)),
	}
	var registry *prometheus.Registry
	if flags.metricsFile != "" {
		registry = prometheus.NewRegistry()
		opts = append(opts, verbs.WithMetrics(registry))
	}

	result, err := verbs.Generate(ctx, doc, opts...)
	if err != nil {
		return err
	}

	if registry != nil {
		if err := prometheus.WriteToTextfile(flags.metricsFile, registry); err != nil {
			return fmt.Errorf("writing metrics: %w", err)
		}
	}

	return OutputStructured(cmd.OutOrStdout(), result, flags.format)
}

// loadConfig reads --config when given and applies flag overrides.
func loadConfig(flags *verbsFlags) (*config.Config, error) {
	var cfg *config.Config
	if flags.config != "" {
		loaded, err := config.Load(flags.config)
		if err != nil {
			return nil, err
		}
		cfg = loaded
	} else {
		cfg = config.Default()
		wd, err := os.Getwd()
		if err != nil {
			return nil, err
		}
		cfg.Output.Workspace = wd
	}

	if flags.input != "" {
		abs, err := filepath.Abs(flags.input)
		if err != nil {
			return nil, fmt.Errorf("invalid input path: %w", err)
		}
		cfg.Input.Target = abs
	}
	if flags.client != "" {
		cfg.Output.Client = config.OutputClient(flags.client)
		if err := cfg.Validate(); err != nil {
			return nil, err
		}
	}
	return cfg, nil
}
