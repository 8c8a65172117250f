// Package config loads the settings of the xrect command from
// defaults, an optional YAML file and XRECT_ prefixed environment
// variables.
package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/viper"
)

// EnvPrefix is prepended to every environment variable name. The key
// logger.level is read from XRECT_LOGGER_LEVEL.
const EnvPrefix = "XRECT"

// Supported output formats.
const (
	OutputText = "text"
	OutputJSON = "json"
	OutputYAML = "yaml"
)

type Config struct {
	Logger LoggerConfig `mapstructure:"logger" yaml:"logger"`

	// Output selects how results are printed.
	Output string `mapstructure:"output" yaml:"output"`

	// HitRadius is the distance from an anchor within which a point
	// counts as hitting it.
	HitRadius float64 `mapstructure:"hit_radius" yaml:"hit_radius"`
}

type LoggerConfig struct {
	Level  string `mapstructure:"level" yaml:"level"`
	Format string `mapstructure:"format" yaml:"format"`

	// File, if set, additionally writes JSON logs to a rotated file.
	File       string `mapstructure:"file" yaml:"file"`
	MaxSize    int    `mapstructure:"max_size" yaml:"max_size"`
	MaxBackups int    `mapstructure:"max_backups" yaml:"max_backups"`
	MaxAge     int    `mapstructure:"max_age" yaml:"max_age"`
	Compress   bool   `mapstructure:"compress" yaml:"compress"`
}

// SetDefaults registers the default value of every key on v.
func SetDefaults(v *viper.Viper) {
	v.SetDefault("logger.level", "warn")
	v.SetDefault("logger.format", "console")
	v.SetDefault("logger.file", "")
	v.SetDefault("logger.max_size", 10)
	v.SetDefault("logger.max_backups", 3)
	v.SetDefault("logger.max_age", 28)
	v.SetDefault("logger.compress", false)
	v.SetDefault("output", OutputText)
	v.SetDefault("hit_radius", 8.0)
}

// Read prepares v to read configuration. If path is empty, an
// xrect.yaml in the working directory is used when present.
func Read(v *viper.Viper, path string) error {
	SetDefaults(v)

	if path != "" {
		v.SetConfigFile(path)
	} else {
		v.AddConfigPath(".")
		v.SetConfigName("xrect")
		v.SetConfigType("yaml")
	}

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	err := v.ReadInConfig()
	if err != nil {
		var notFound viper.ConfigFileNotFoundError
		if path == "" && errors.As(err, &notFound) {
			return nil
		}
		return fmt.Errorf("read config: %w", err)
	}
	return nil
}

// Load decodes and validates the configuration held by v.
func Load(v *viper.Viper) (Config, error) {
	var cfg Config
	err := v.Unmarshal(&cfg)
	if err != nil {
		return Config{}, fmt.Errorf("unmarshal config: %w", err)
	}

	return cfg, cfg.Validate()
}

// Validate reports the first invalid setting in c.
func (c Config) Validate() error {
	switch c.Output {
	case OutputText, OutputJSON, OutputYAML:
	default:
		return fmt.Errorf("invalid output format %q", c.Output)
	}

	switch c.Logger.Format {
	case "console", "json":
	default:
		return fmt.Errorf("invalid log format %q", c.Logger.Format)
	}

	if c.HitRadius < 0 {
		return fmt.Errorf("hit radius must not be negative: %v", c.HitRadius)
	}

	return nil
}
