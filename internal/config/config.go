// Package config loads and validates training configuration.
//
// Configuration is read from YAML on top of DefaultConfig, so a file only
// needs the keys it changes:
//
//	model:
//	  hidden: [16, 16]
//	  activation: relu
//	training:
//	  epochs: 100
//	  lr: 0.05
//	  loss: hinge
package config

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"
)

// Config is the top-level training configuration.
type Config struct {
	// Model describes the MLP architecture.
	Model ModelConfig `yaml:"model"`

	// Training contains optimizer and loop settings.
	Training TrainingConfig `yaml:"training"`

	// Data controls the generated toy dataset.
	Data DataConfig `yaml:"data"`

	// Log controls logging output.
	Log LogConfig `yaml:"log"`
}

// ModelConfig describes the MLP architecture.
type ModelConfig struct {
	Hidden     []int  `yaml:"hidden" validate:"required,min=1,dive,gt=0"`
	Activation string `yaml:"activation" validate:"oneof=linear tanh relu sigmoid"`
}

// TrainingConfig contains optimizer and loop settings.
type TrainingConfig struct {
	Epochs    int     `yaml:"epochs" validate:"gt=0"`
	Optimizer string  `yaml:"optimizer" validate:"oneof=sgd adam"`
	LR        float64 `yaml:"lr" validate:"gt=0"`
	Momentum  float64 `yaml:"momentum" validate:"gte=0,lt=1"`
	Loss      string  `yaml:"loss" validate:"oneof=mse hinge bce"`
	Alpha     float64 `yaml:"alpha" validate:"gte=0"`
	LRDecay   bool    `yaml:"lr_decay"`
	Seed      int64   `yaml:"seed"`
	LogEvery  int     `yaml:"log_every" validate:"gte=0"`
}

// DataConfig controls the generated toy dataset.
type DataConfig struct {
	Samples int     `yaml:"samples" validate:"gt=1"`
	Spread  float64 `yaml:"spread" validate:"gt=0"`
	Seed    int64   `yaml:"seed"`
}

// LogConfig controls logging output.
type LogConfig struct {
	Level string `yaml:"level" validate:"omitempty,oneof=debug info warn error DEBUG INFO WARN ERROR"`
}

// DefaultConfig returns the default configuration.
func DefaultConfig() Config {
	return Config{
		Model: ModelConfig{
			Hidden:     []int{16, 16},
			Activation: "relu",
		},
		Training: TrainingConfig{
			Epochs:    100,
			Optimizer: "sgd",
			LR:        0.1,
			Loss:      "hinge",
			Alpha:     1e-4,
			LRDecay:   true,
			Seed:      1337,
			LogEvery:  10,
		},
		Data: DataConfig{
			Samples: 100,
			Spread:  0.5,
			Seed:    42,
		},
		Log: LogConfig{
			Level: "info",
		},
	}
}

var validate = validator.New()

// Validate checks the configuration against its struct constraints.
func (c Config) Validate() error {
	if err := validate.Struct(c); err != nil {
		return fmt.Errorf("invalid config: %w", err)
	}
	return nil
}

// SlogLevel returns the configured log level, defaulting to Info.
func (c Config) SlogLevel() slog.Level {
	var level slog.Level
	if err := level.UnmarshalText([]byte(c.Log.Level)); err != nil {
		return slog.LevelInfo
	}
	return level
}

// Parse decodes YAML over DefaultConfig and validates the result.
func Parse(data []byte) (Config, error) {
	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("parse config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Load reads and parses a YAML configuration file.
func Load(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("read config: %w", err)
	}
	return Parse(data)
}
