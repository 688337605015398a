/*
Author: KleaSCM
Email: KleaSCM@gmail.com
File: config.go
Description: Configuration for the Chomsky toolkit. Settings come from defaults, an optional
YAML/JSON/TOML config file, CHOMSKY_* environment variables and command-line flags, merged
through viper and validated before any command runs.
*/

package config

import (
	"fmt"
	"runtime"
	"strings"

	"github.com/kleascm/chomsky-toolkit/pkg/logging"
	"github.com/kleascm/chomsky-toolkit/pkg/sampler"
	"github.com/spf13/viper"
)

// EnvPrefix is the prefix for environment overrides, e.g. CHOMSKY_SAMPLER_MAX_LEN
const EnvPrefix = "CHOMSKY"

// SamplerConfig bounds sampling and language comparison
type SamplerConfig struct {
	MaxLen       int `mapstructure:"max_len"`
	MaxSteps     int `mapstructure:"max_steps"`
	CompareBound int `mapstructure:"compare_bound"`
}

// Bounds returns the sampling bounds
func (c SamplerConfig) Bounds() sampler.Bounds {
	return sampler.Bounds{MaxLen: c.MaxLen, MaxSteps: c.MaxSteps}
}

// CompareBounds returns the bounds used when comparing two grammars
func (c SamplerConfig) CompareBounds() sampler.Bounds {
	return sampler.Bounds{MaxLen: c.CompareBound, MaxSteps: c.MaxSteps}
}

// ReportConfig controls classification report output
type ReportConfig struct {
	OutputDir string `mapstructure:"output_dir"`
	Format    string `mapstructure:"format"`
	Title     string `mapstructure:"title"`
}

// BatchConfig controls batch classification
type BatchConfig struct {
	Workers int `mapstructure:"workers"`
}

// Config is the complete toolkit configuration
type Config struct {
	Sampler SamplerConfig        `mapstructure:"sampler"`
	Log     logging.LoggerConfig `mapstructure:"log"`
	Report  ReportConfig         `mapstructure:"report"`
	Batch   BatchConfig          `mapstructure:"batch"`
}

// DefaultConfig returns the built-in configuration
func DefaultConfig() *Config {
	return &Config{
		Sampler: SamplerConfig{
			MaxLen:       sampler.DefaultMaxLen,
			MaxSteps:     sampler.DefaultMaxSteps,
			CompareBound: 6,
		},
		Log: *logging.DefaultLoggerConfig(),
		Report: ReportConfig{
			OutputDir: "./reports",
			Format:    "html",
			Title:     "Chomsky Classification Report",
		},
		Batch: BatchConfig{
			Workers: runtime.NumCPU(),
		},
	}
}

// SetDefaults registers the built-in configuration with v
func SetDefaults(v *viper.Viper) {
	d := DefaultConfig()
	v.SetDefault("sampler.max_len", d.Sampler.MaxLen)
	v.SetDefault("sampler.max_steps", d.Sampler.MaxSteps)
	v.SetDefault("sampler.compare_bound", d.Sampler.CompareBound)
	v.SetDefault("log.level", string(d.Log.Level))
	v.SetDefault("log.format", string(d.Log.Format))
	v.SetDefault("log.output_dir", d.Log.OutputDir)
	v.SetDefault("log.max_files", d.Log.MaxFiles)
	v.SetDefault("log.timestamp", d.Log.Timestamp)
	v.SetDefault("log.caller", d.Log.Caller)
	v.SetDefault("log.colors", d.Log.Colors)
	v.SetDefault("report.output_dir", d.Report.OutputDir)
	v.SetDefault("report.format", d.Report.Format)
	v.SetDefault("report.title", d.Report.Title)
	v.SetDefault("batch.workers", d.Batch.Workers)
}

// Load reads the optional config file and environment into a validated Config
func Load(v *viper.Viper, configFile string) (*Config, error) {
	SetDefaults(v)

	if configFile != "" {
		v.SetConfigFile(configFile)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	}

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	cfg := &Config{}
	if err := v.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("failed to decode config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}
	return cfg, nil
}

// Validate checks the Config for invalid values.
func (c *Config) Validate() error {
	if c.Sampler.MaxLen < 0 {
		return fmt.Errorf("sampler.max_len must not be negative")
	}
	if c.Sampler.MaxSteps <= 0 {
		return fmt.Errorf("sampler.max_steps must be positive")
	}
	if c.Sampler.CompareBound < 0 {
		return fmt.Errorf("sampler.compare_bound must not be negative")
	}
	if c.Batch.Workers <= 0 {
		return fmt.Errorf("batch.workers must be positive")
	}
	if c.Report.OutputDir == "" {
		return fmt.Errorf("report.output_dir must not be empty")
	}
	switch c.Report.Format {
	case "html", "md":
	default:
		return fmt.Errorf("unsupported report format: %s", c.Report.Format)
	}
	if err := c.Log.Validate(); err != nil {
		return fmt.Errorf("log: %w", err)
	}
	return nil
}
