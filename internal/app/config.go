package app

import (
	"errors"
	"fmt"

	"github.com/vk/cellgrid/internal/config"
)

// Config holds all the necessary configuration for an App instance to run.
type Config struct {
	ConfigPaths []string // config files or directories
	// ConfigFormat selects the loader: FormatHCL (the default) or FormatTOML.
	ConfigFormat string

	LogFormat string
	LogLevel  string

	// Passes overrides the workbook pass budget when positive.
	Passes int
	// Strategy overrides the workbook strategy when set.
	Strategy string
}

// NewConfig validates cfg and returns a copy of it.
func NewConfig(cfg Config) (*Config, error) {
	if len(cfg.ConfigPaths) == 0 {
		return nil, errors.New("at least one configuration path is required")
	}
	if cfg.Passes < 0 {
		return nil, fmt.Errorf("passes must not be negative, got %d", cfg.Passes)
	}
	switch cfg.ConfigFormat {
	case "":
		cfg.ConfigFormat = FormatHCL
	case FormatHCL, FormatTOML:
	default:
		return nil, fmt.Errorf("unknown config format %q (want %q or %q)", cfg.ConfigFormat, FormatHCL, FormatTOML)
	}
	if cfg.Strategy != "" {
		if _, err := config.ParseStrategy(cfg.Strategy); err != nil {
			return nil, err
		}
	}
	return &cfg, nil
}
