package main

import (
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/samcharles93/txtpack/internal/logger"
	"github.com/samcharles93/txtpack/pkg/bundle"
)

// Config represents the txtpack configuration file
// (~/.config/txtpack/config.yaml). Delimiter fields are pointers so an
// explicit empty value can be told apart from "not set".
type Config struct {
	SearchDir     string `yaml:"search_dir"`
	OutputDir     string `yaml:"output_dir"`
	LogLevel      string `yaml:"log_level"`
	LogFormat     string `yaml:"log_format"`
	ServerAddress string `yaml:"server_address"`

	Delimiters DelimiterConfig `yaml:"delimiters"`
}

type DelimiterConfig struct {
	StartPrefix      *string `yaml:"start_prefix"`
	StartMiddle      *string `yaml:"start_middle"`
	StartBytesSuffix *string `yaml:"start_bytes_suffix"`
	EndPrefix        *string `yaml:"end_prefix"`
	EndSuffix        *string `yaml:"end_suffix"`
}

func configPath() string {
	dir, err := os.UserConfigDir()
	if err != nil {
		return ""
	}
	return filepath.Join(dir, "txtpack", "config.yaml")
}

// LoadConfig reads the config file. Returns a zero Config if the file
// doesn't exist or doesn't parse.
func LoadConfig() Config {
	path := configPath()
	if path == "" {
		return Config{}
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}
	}
	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}
	}
	return cfg
}

// bundleConfig builds the delimiter grammar: defaults overridden per
// fragment by whatever the config file sets.
func (c Config) bundleConfig() bundle.Config {
	out := bundle.DefaultConfig()
	if c.Delimiters.StartPrefix != nil {
		out.StartPrefix = *c.Delimiters.StartPrefix
	}
	if c.Delimiters.StartMiddle != nil {
		out.StartMiddle = *c.Delimiters.StartMiddle
	}
	if c.Delimiters.StartBytesSuffix != nil {
		out.StartBytesSuffix = *c.Delimiters.StartBytesSuffix
	}
	if c.Delimiters.EndPrefix != nil {
		out.EndPrefix = *c.Delimiters.EndPrefix
	}
	if c.Delimiters.EndSuffix != nil {
		out.EndSuffix = *c.Delimiters.EndSuffix
	}
	return out
}

func newLogger(cfg Config) logger.Logger {
	level := logger.ParseLevel(cfg.LogLevel)
	if cfg.LogFormat == "json" {
		return logger.JSON(os.Stderr, level)
	}
	return logger.Pretty(os.Stderr, level)
}
