// Package config loads mstrace settings from an optional YAML file and
// MSTRACE_* environment variables.
package config

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config holds all application configuration.
type Config struct {
	Log     LogConfig     `mapstructure:"log"`
	Replay  ReplayConfig  `mapstructure:"replay"`
	Batch   BatchConfig   `mapstructure:"batch"`
	Tracing TracingConfig `mapstructure:"tracing"`
}

type LogConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"`
}

type ReplayConfig struct {
	BaseDelay time.Duration `mapstructure:"base_delay"`
	Speed     float64       `mapstructure:"speed"`
}

type BatchConfig struct {
	Parallel int  `mapstructure:"parallel"`
	Verify   bool `mapstructure:"verify"`
}

type TracingConfig struct {
	// OTLPEndpoint is the OTLP gRPC endpoint; empty disables export.
	OTLPEndpoint string  `mapstructure:"otlp_endpoint"`
	ServiceName  string  `mapstructure:"service_name"`
	SampleRate   float64 `mapstructure:"sample_rate"`
}

// Validate checks configuration for issues and returns warnings.
func (c *Config) Validate() []string {
	var warnings []string

	if c.Replay.Speed <= 0 {
		warnings = append(warnings, fmt.Sprintf("replay speed %.2f is not positive; using 1.0", c.Replay.Speed))
		c.Replay.Speed = 1
	}
	if c.Replay.BaseDelay < 0 {
		warnings = append(warnings, fmt.Sprintf("replay base_delay %s is negative; using 0", c.Replay.BaseDelay))
		c.Replay.BaseDelay = 0
	}
	if c.Batch.Parallel < 0 {
		warnings = append(warnings, fmt.Sprintf("batch parallel %d is negative; using GOMAXPROCS", c.Batch.Parallel))
		c.Batch.Parallel = 0
	}
	if c.Tracing.SampleRate < 0 || c.Tracing.SampleRate > 1 {
		warnings = append(warnings, fmt.Sprintf("tracing sample_rate %.2f is outside [0.0, 1.0]", c.Tracing.SampleRate))
	}
	if c.Log.Format != "text" && c.Log.Format != "json" {
		warnings = append(warnings, fmt.Sprintf("log format %q is unknown; using text", c.Log.Format))
		c.Log.Format = "text"
	}

	return warnings
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("log.level", "info")
	v.SetDefault("log.format", "text")
	v.SetDefault("replay.base_delay", time.Second)
	v.SetDefault("replay.speed", 1.0)
	v.SetDefault("batch.parallel", 0)
	v.SetDefault("batch.verify", false)
	v.SetDefault("tracing.otlp_endpoint", "")
	v.SetDefault("tracing.service_name", "mstrace")
	v.SetDefault("tracing.sample_rate", 1.0)
}

// Load reads configuration from path (optional, may be empty) and environment.
// A missing file at an explicit path is an error; no path means defaults + env.
// The returned warnings come from Validate; the caller decides where they go.
func Load(path string) (*Config, []string, error) {
	v := viper.New()
	setDefaults(v)
	v.SetEnvPrefix("MSTRACE")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			var notFound viper.ConfigFileNotFoundError
			if errors.As(err, &notFound) {
				return nil, nil, fmt.Errorf("config file not found: %w", err)
			}
			return nil, nil, fmt.Errorf("reading config: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, nil, fmt.Errorf("unmarshalling config: %w", err)
	}
	warnings := cfg.Validate()

	return &cfg, warnings, nil
}
