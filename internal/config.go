package internal

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/sirupsen/logrus"
	"gopkg.in/yaml.v3"
)

// Config holds the runner settings read from eve.yaml
type Config struct {
	Prompt      string `yaml:"prompt"`
	LogLevel    string `yaml:"log_level"`
	Color       bool   `yaml:"color"`
	MaxDepth    int    `yaml:"max_depth"`
	HistoryFile string `yaml:"history_file"`
}

// DefaultConfig is used when no configuration file is given
func DefaultConfig() *Config {
	return &Config{
		Prompt:      "> ",
		LogLevel:    "warning",
		Color:       true,
		HistoryFile: ".eve_history",
	}
}

// LoadConfig reads a YAML configuration. Missing keys keep their defaults,
// unknown keys are rejected.
func LoadConfig(path string) (*Config, error) {
	if path == "" {
		return nil, fmt.Errorf("config: empty path")
	}
	absPath, err := filepath.Abs(path)
	if err != nil {
		return nil, fmt.Errorf("config: resolve %s: %w", path, err)
	}
	file, err := os.Open(absPath)
	if err != nil {
		return nil, fmt.Errorf("config: open %s: %w", absPath, err)
	}
	defer file.Close()

	return decodeConfig(file, absPath)
}

func decodeConfig(r io.Reader, name string) (*Config, error) {
	decoder := yaml.NewDecoder(r)
	decoder.KnownFields(true)

	cfg := DefaultConfig()
	if err := decoder.Decode(cfg); err != nil {
		if errors.Is(err, io.EOF) {
			return cfg, nil
		}
		return nil, fmt.Errorf("config: parse %s: %w", name, err)
	}
	if err := cfg.validate(); err != nil {
		return nil, fmt.Errorf("config: %s: %w", name, err)
	}
	return cfg, nil
}

func (c *Config) validate() error {
	if c.MaxDepth < 0 {
		return fmt.Errorf("max_depth must not be negative, got %d", c.MaxDepth)
	}
	if _, err := logrus.ParseLevel(c.LogLevel); err != nil {
		return err
	}
	return nil
}

// Level returns the configured log level
func (c *Config) Level() logrus.Level {
	level, err := logrus.ParseLevel(c.LogLevel)
	if err != nil {
		return logrus.WarnLevel
	}
	return level
}

// Logger builds a logger writing to w at the configured level
func (c *Config) Logger(w io.Writer) *logrus.Logger {
	logger := logrus.New()
	logger.SetOutput(w)
	logger.SetLevel(c.Level())
	logger.SetFormatter(&logrus.TextFormatter{DisableTimestamp: true})
	return logger
}

// Options converts the configuration into run options
func (c *Config) Options(p IPrinter, logger *logrus.Logger) Options {
	return Options{
		Printer:  p,
		Logger:   logger,
		MaxDepth: c.MaxDepth,
	}
}
