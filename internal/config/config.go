// Package config loads winnow settings from defaults, an optional YAML file
// and WINNOW_* environment variables, in that order of precedence.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/caarlos0/env/v11"
	"github.com/mitchellh/mapstructure"
	"gopkg.in/yaml.v3"
)

// DefaultFile is read when Load is called without a path. It may be absent.
const DefaultFile = "winnow.yaml"

// Config holds every runtime setting of the CLI.
type Config struct {
	Script       string `mapstructure:"script" env:"WINNOW_SCRIPT"`
	LogLevel     string `mapstructure:"log_level" env:"WINNOW_LOG_LEVEL"`
	MetricsAddr  string `mapstructure:"metrics_addr" env:"WINNOW_METRICS_ADDR"`
	MaxInputSize int    `mapstructure:"max_input_size" env:"WINNOW_MAX_INPUT_SIZE"`
	Redis        Redis  `mapstructure:"redis"`
}

// Redis selects a script stored in Redis instead of on disk.
type Redis struct {
	Addr     string `mapstructure:"addr" env:"WINNOW_REDIS_ADDR"`
	Password string `mapstructure:"password" env:"WINNOW_REDIS_PASSWORD"`
	DB       int    `mapstructure:"db" env:"WINNOW_REDIS_DB"`
	Key      string `mapstructure:"key" env:"WINNOW_REDIS_KEY"`
}

// Enabled reports whether a Redis address was configured.
func (r Redis) Enabled() bool {
	return r.Addr != ""
}

// Default returns the built-in settings.
func Default() Config {
	return Config{
		Script:       "input.txt",
		LogLevel:     "warn",
		MaxInputSize: 4096,
	}
}

// Load builds a Config. An empty path means DefaultFile, which may be missing;
// an explicit path must exist.
func Load(path string) (Config, error) {
	cfg := Default()

	explicit := path != ""
	if !explicit {
		path = DefaultFile
	}

	if err := decodeFile(path, &cfg); err != nil {
		if explicit || !errors.Is(err, fs.ErrNotExist) {
			return cfg, err
		}
	}

	if err := env.Parse(&cfg); err != nil {
		return cfg, fmt.Errorf("parse env: %w", err)
	}
	return cfg, nil
}

func decodeFile(path string, cfg *Config) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read config: %w", err)
	}

	var raw map[string]any
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return fmt.Errorf("parse config %s: %w", path, err)
	}
	if raw == nil {
		return nil
	}

	decoder, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		Result:           cfg,
		TagName:          "mapstructure",
		WeaklyTypedInput: true,
		ErrorUnused:      true,
	})
	if err != nil {
		return err
	}
	if err := decoder.Decode(raw); err != nil {
		return fmt.Errorf("decode config %s: %w", path, err)
	}
	return nil
}
