package main

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.opentelemetry.io/otel/metric"
	"go.uber.org/zap"

	"github.com/swaramap/swaramap/pkg/catalog"
	"github.com/swaramap/swaramap/pkg/config"
	"github.com/swaramap/swaramap/pkg/logging"
	"github.com/swaramap/swaramap/pkg/store"
)

// v holds flag, environment and config file settings for every command.
var v = config.NewViper()

var rootCmd = &cobra.Command{
	Use:   "swaramap",
	Short: "swaramap - musical regions of India",
	Long: `swaramap loads a dataset of India's musical regions and finds the regions
that match an instrument query and a rhythm filter.

The dataset is the built-in one unless --dataset or --git-url is given.
Every flag can also be set with a SWARAMAP_ environment variable
(e.g. SWARAMAP_LOG_LEVEL=debug) or in a YAML file passed with --config.`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	flags := rootCmd.PersistentFlags()
	flags.String("config", "", "Path to a YAML configuration file")
	flags.String("dataset", "", "Dataset YAML file or directory (default: built-in dataset)")
	flags.String("datastore", "", "Datastore path: :memory:, a sqlite file, or a postgres:// DSN")
	flags.String("include", "", "Include regions whose ID matches a regex (comma-separated)")
	flags.String("exclude", "", "Exclude regions whose ID matches a regex (comma-separated)")
	flags.String("git-url", "", "Load the dataset from a Git repository")
	flags.String("git-ref", "", "Branch of the Git repository")
	flags.String("git-path", "", "Dataset file inside the Git repository")
	flags.String("log-level", "info", "Log level: debug, info, warn, error")
	flags.String("log-format", logging.FormatConsole, "Log format: console, json")

	bindFlags(rootCmd, map[string]string{
		config.KeyConfig:    "config",
		config.KeyDataset:   "dataset",
		config.KeyDatastore: "datastore",
		config.KeyInclude:   "include",
		config.KeyExclude:   "exclude",
		config.KeyGitURL:    "git-url",
		config.KeyGitRef:    "git-ref",
		config.KeyGitPath:   "git-path",
		config.KeyLogLevel:  "log-level",
		config.KeyLogFormat: "log-format",
	}, true)

	rootCmd.AddCommand(versionCmd)
	rootCmd.AddCommand(regionsCmd)
	rootCmd.AddCommand(matchCmd)
	rootCmd.AddCommand(searchCmd)
	rootCmd.AddCommand(statsCmd)
	rootCmd.AddCommand(newsCmd)
	rootCmd.AddCommand(tokensCmd)
	rootCmd.AddCommand(importCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(apiCmd)
	rootCmd.AddCommand(exploreCmd)
}

// bindFlags binds viper keys to flag names of cmd.
func bindFlags(cmd *cobra.Command, keys map[string]string, persistent bool) {
	flags := cmd.Flags()
	if persistent {
		flags = cmd.PersistentFlags()
	}
	for key, name := range keys {
		if err := v.BindPFlag(key, flags.Lookup(name)); err != nil {
			panic(fmt.Sprintf("binding flag %s: %v", name, err))
		}
	}
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

// loadConfig resolves the settings of the current run.
func loadConfig(vp *viper.Viper) (*config.Config, *zap.Logger, error) {
	cfg, err := config.Load(vp)
	if err != nil {
		return nil, nil, err
	}
	logger, err := logging.New(cfg.Log.Level, cfg.Log.Format)
	if err != nil {
		return nil, nil, err
	}
	return cfg, logger, nil
}

// runtimeEnv is everything a command needs to answer queries.
type runtimeEnv struct {
	cfg    *config.Config
	logger *zap.Logger
	core   *catalog.Core
	store  store.Store
}

// Close releases the datastore and flushes the logger.
func (e *runtimeEnv) Close() {
	if e.store != nil {
		if err := e.store.Close(); err != nil {
			e.logger.Warn("closing datastore", zap.Error(err))
		}
	}
	_ = e.logger.Sync()
}

// openEnv loads the configuration and the catalog. mp may be nil.
func openEnv(ctx context.Context, mp metric.MeterProvider) (*runtimeEnv, error) {
	cfg, logger, err := loadConfig(v)
	if err != nil {
		return nil, err
	}

	s, err := cfg.OpenStore()
	if err != nil {
		return nil, err
	}

	core, err := catalog.New(ctx, cfg.Source(), catalog.Options{
		Filter:        cfg.Filter(),
		Store:         s,
		Logger:        logger,
		MeterProvider: mp,
	})
	if err != nil {
		if s != nil {
			_ = s.Close()
		}
		return nil, fmt.Errorf("loading dataset: %w", err)
	}

	return &runtimeEnv{cfg: cfg, logger: logger, core: core, store: s}, nil
}

// commandContext returns the command context, or Background for commands
// run outside Execute.
func commandContext(cmd *cobra.Command) context.Context {
	if ctx := cmd.Context(); ctx != nil {
		return ctx
	}
	return context.Background()
}
