package app

import "errors"

// Config holds all the necessary configuration for an App instance to run.
type Config struct {
	ConfigPath    string // hcl file or directory tree
	OutputDir     string // build output root for generated artifacts
	InstallPrefix string // external tool data directory

	LogFormat   string
	LogLevel    string
	SkipInstall bool
	DryRun      bool
}

// NewConfig validates and normalizes a Config value.
func NewConfig(cfg Config) (*Config, error) {
	if cfg.ConfigPath == "" {
		return nil, errors.New("ConfigPath is a required configuration field and cannot be empty")
	}
	if cfg.OutputDir == "" {
		cfg.OutputDir = "build"
	}

	return &cfg, nil
}
