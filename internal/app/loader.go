package app

import (
	"fmt"

	"github.com/vk/cellgrid/internal/config"
	"github.com/vk/cellgrid/internal/hcl"
	"github.com/vk/cellgrid/internal/toml"
)

// Supported configuration formats.
const (
	FormatHCL  = "hcl"
	FormatTOML = "toml"
)

// NewLoader returns the config.Loader for format. The empty format selects
// HCL.
func NewLoader(format string) (config.Loader, error) {
	switch format {
	case "", FormatHCL:
		return hcl.NewLoader(), nil
	case FormatTOML:
		return toml.NewLoader(), nil
	default:
		return nil, fmt.Errorf("unknown config format %q", format)
	}
}
