// Package config provides Viper-based configuration for skilltrend
package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/viper"

	"github.com/spektr-org/skilltrend/i18n"
	"github.com/spektr-org/skilltrend/snapshot"
)

// Config represents the complete skilltrend configuration
type Config struct {
	Snapshot  SnapshotConfig  `mapstructure:"snapshot"`
	Generator GeneratorConfig `mapstructure:"generator"`
	Catalog   CatalogConfig   `mapstructure:"catalog"`
	View      ViewConfig      `mapstructure:"view"`
	Logging   LoggingConfig   `mapstructure:"logging"`
	Output    OutputConfig    `mapstructure:"output"`
}

// SnapshotConfig locates the generated dataset
type SnapshotConfig struct {
	Path string `mapstructure:"path"`
}

// GeneratorConfig contains generation settings. Seed 0 means time-based.
type GeneratorConfig struct {
	Seed int64 `mapstructure:"seed"`
}

// CatalogConfig points at an alternative catalog file; empty uses the embedded one
type CatalogConfig struct {
	Path string `mapstructure:"path"`
}

// ViewConfig holds the default dashboard filters
type ViewConfig struct {
	Region string `mapstructure:"region"`
	Lang   string `mapstructure:"lang"`
	Top    int    `mapstructure:"top"`
}

// LoggingConfig contains logging settings
type LoggingConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"`
}

// OutputConfig contains output formatting settings
type OutputConfig struct {
	Colors bool `mapstructure:"colors"`
}

// Load reads configuration from file and environment variables
func Load(cfgFile string) (*Config, error) {
	v := viper.New()

	if cfgFile != "" {
		v.SetConfigFile(cfgFile)
	} else {
		// Search paths for .skilltrend.yaml
		v.SetConfigName(".skilltrend")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
		v.AddConfigPath("$HOME/.config/skilltrend")
	}

	// SKILLTREND_SNAPSHOT_PATH → snapshot.path
	v.SetEnvPrefix("SKILLTREND")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	setDefaults(v)

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("reading config: %w", err)
		}
		// Config file not found is OK, use defaults
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("unmarshaling config: %w", err)
	}

	if err := validate(&cfg); err != nil {
		return nil, fmt.Errorf("validating config: %w", err)
	}

	return &cfg, nil
}

// Default returns the configuration used when no file or env override exists
func Default() *Config {
	v := viper.New()
	setDefaults(v)
	var cfg Config
	_ = v.Unmarshal(&cfg)
	return &cfg
}

// setDefaults configures default values
func setDefaults(v *viper.Viper) {
	v.SetDefault("snapshot.path", snapshot.DefaultPath)
	v.SetDefault("generator.seed", 0)
	v.SetDefault("catalog.path", "")

	v.SetDefault("view.region", "TR")
	v.SetDefault("view.lang", string(i18n.Default))
	v.SetDefault("view.top", 8)

	v.SetDefault("logging.level", "info")
	v.SetDefault("logging.format", "console")

	v.SetDefault("output.colors", true)
}

// validate checks the configuration for errors
func validate(cfg *Config) error {
	validLevels := map[string]bool{"debug": true, "info": true, "warn": true, "error": true}
	if !validLevels[cfg.Logging.Level] {
		return fmt.Errorf("invalid logging level: %s (must be debug, info, warn, or error)", cfg.Logging.Level)
	}

	validFormats := map[string]bool{"console": true, "json": true}
	if !validFormats[cfg.Logging.Format] {
		return fmt.Errorf("invalid logging format: %s (must be console or json)", cfg.Logging.Format)
	}

	if !i18n.Lang(cfg.View.Lang).Valid() {
		return fmt.Errorf("invalid view language: %s (must be tr or en)", cfg.View.Lang)
	}

	if cfg.View.Top < 0 {
		return fmt.Errorf("invalid view.top: %d (must not be negative)", cfg.View.Top)
	}

	if cfg.Snapshot.Path == "" {
		return fmt.Errorf("snapshot.path must not be empty")
	}

	return nil
}
