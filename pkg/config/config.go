// Package config loads swaramap settings from flags, environment variables
// and an optional YAML file.
package config

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/spf13/viper"

	"github.com/swaramap/swaramap/pkg/catalog"
	"github.com/swaramap/swaramap/pkg/dataset"
	"github.com/swaramap/swaramap/pkg/logging"
	"github.com/swaramap/swaramap/pkg/store"
)

// EnvPrefix is prepended to every environment variable, e.g., SWARAMAP_LOG_LEVEL.
const EnvPrefix = "SWARAMAP"

// Keys read by Load.
const (
	KeyConfig         = "config"
	KeyAddress        = "address"
	KeyDatastore      = "datastore"
	KeyDataset        = "dataset"
	KeyInclude        = "include"
	KeyExclude        = "exclude"
	KeyGitURL         = "git.url"
	KeyGitRef         = "git.ref"
	KeyGitPath        = "git.path"
	KeyLogLevel       = "log.level"
	KeyLogFormat      = "log.format"
	KeyMetricsEnabled = "metrics.enabled"
)

// DefaultAddress is the HTTP API listen address.
const DefaultAddress = ":8080"

// Config is the resolved configuration of one command run.
type Config struct {
	Address   string
	Datastore string // "" keeps the catalog in memory only
	Dataset   string // YAML file or directory; "" is the built-in dataset
	Include   []string
	Exclude   []string
	Git       GitConfig
	Log       LogConfig
	Metrics   MetricsConfig
}

// GitConfig names a dataset file in a Git repository.
type GitConfig struct {
	URL  string
	Ref  string
	Path string
}

// LogConfig configures the zap logger.
type LogConfig struct {
	Level  string
	Format string
}

// MetricsConfig configures the Prometheus exporter.
type MetricsConfig struct {
	Enabled bool
}

// NewViper returns a viper instance reading SWARAMAP_* variables, with
// defaults set.
func NewViper() *viper.Viper {
	v := viper.New()
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	SetDefaults(v)
	return v
}

// SetDefaults registers the default value of every key.
func SetDefaults(v *viper.Viper) {
	v.SetDefault(KeyAddress, DefaultAddress)
	v.SetDefault(KeyDatastore, "")
	v.SetDefault(KeyDataset, "")
	v.SetDefault(KeyInclude, "")
	v.SetDefault(KeyExclude, "")
	v.SetDefault(KeyGitURL, "")
	v.SetDefault(KeyGitRef, "")
	v.SetDefault(KeyGitPath, "")
	v.SetDefault(KeyLogLevel, "info")
	v.SetDefault(KeyLogFormat, logging.FormatConsole)
	v.SetDefault(KeyMetricsEnabled, false)
}

// Load reads the config file named by the "config" key, if any, and
// returns the validated configuration.
func Load(v *viper.Viper) (*Config, error) {
	if path := v.GetString(KeyConfig); path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
		}
	}

	cfg := &Config{
		Address:   v.GetString(KeyAddress),
		Datastore: v.GetString(KeyDatastore),
		Dataset:   v.GetString(KeyDataset),
		Include:   patterns(v, KeyInclude),
		Exclude:   patterns(v, KeyExclude),
		Git: GitConfig{
			URL:  v.GetString(KeyGitURL),
			Ref:  v.GetString(KeyGitRef),
			Path: v.GetString(KeyGitPath),
		},
		Log: LogConfig{
			Level:  v.GetString(KeyLogLevel),
			Format: v.GetString(KeyLogFormat),
		},
		Metrics: MetricsConfig{
			Enabled: v.GetBool(KeyMetricsEnabled),
		},
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}
	return cfg, nil
}

// patterns accepts either a YAML list or a comma-separated string.
func patterns(v *viper.Viper, key string) []string {
	if list, ok := v.Get(key).([]any); ok {
		out := make([]string, 0, len(list))
		for _, p := range list {
			if s := strings.TrimSpace(fmt.Sprint(p)); s != "" {
				out = append(out, s)
			}
		}
		return out
	}
	return dataset.ParsePatterns(v.GetString(key))
}

// Validate checks that the settings are consistent.
func (c *Config) Validate() error {
	if _, err := logging.ParseLevel(c.Log.Level); err != nil {
		return err
	}
	switch strings.ToLower(c.Log.Format) {
	case "", logging.FormatJSON, logging.FormatConsole:
	default:
		return fmt.Errorf("unknown log format %q", c.Log.Format)
	}

	if c.Git.URL != "" {
		if c.Dataset != "" {
			return fmt.Errorf("dataset and git.url are mutually exclusive")
		}
		if c.Git.Path == "" {
			return fmt.Errorf("git.path is required with git.url")
		}
	}

	if err := validatePatterns(c.Include); err != nil {
		return fmt.Errorf("include: %w", err)
	}
	if err := validatePatterns(c.Exclude); err != nil {
		return fmt.Errorf("exclude: %w", err)
	}
	return nil
}

func validatePatterns(patterns []string) error {
	for _, p := range patterns {
		if _, err := regexp.Compile(p); err != nil {
			return fmt.Errorf("invalid pattern %q: %w", p, err)
		}
	}
	return nil
}

// Filter returns the region filter built from the include and exclude patterns.
func (c *Config) Filter() dataset.FilterConfig {
	return dataset.FilterConfig{Include: c.Include, Exclude: c.Exclude}
}

// Source returns the dataset source: Git when git.url is set, otherwise the
// dataset path or the built-in dataset.
func (c *Config) Source() catalog.Source {
	if c.Git.URL != "" {
		return dataset.NewGitSource(c.Git.URL, c.Git.Ref, c.Git.Path)
	}
	return catalog.PathSource(c.Dataset)
}

// OpenStore opens the configured datastore, or returns nil when none is set.
func (c *Config) OpenStore() (store.Store, error) {
	if c.Datastore == "" {
		return nil, nil
	}
	s, err := store.New(store.Config{Path: c.Datastore})
	if err != nil {
		return nil, fmt.Errorf("failed to open datastore: %w", err)
	}
	return s, nil
}
