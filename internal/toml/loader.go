package toml

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/BurntSushi/toml"

	"github.com/vk/cellgrid/internal/config"
	"github.com/vk/cellgrid/internal/ctxlog"
	"github.com/vk/cellgrid/internal/fsutil"
)

// ErrNoConfig is returned when none of the given paths holds a .toml file.
var ErrNoConfig = errors.New("no TOML configuration files found")

// Loader is the TOML-specific implementation of the config.Loader interface.
type Loader struct{}

var _ config.Loader = (*Loader)(nil)

// NewLoader creates a new TOML configuration loader.
func NewLoader() *Loader {
	return &Loader{}
}

// Load decodes every .toml file found under paths, in order, and merges them
// with config.Assemble. Keys the schema does not know are rejected.
func (l *Loader) Load(ctx context.Context, paths ...string) (*config.Workbook, error) {
	logger := ctxlog.FromContext(ctx)
	logger.Debug("TOML loader started.", "path_count", len(paths))

	files, err := fsutil.CollectFiles(paths, "toml")
	if err != nil {
		return nil, err
	}
	if len(files) == 0 {
		return nil, fmt.Errorf("%w in %s", ErrNoConfig, strings.Join(paths, ", "))
	}

	layers := make([]config.Layer, 0, len(files))
	for _, file := range files {
		var root fileRoot
		meta, err := toml.DecodeFile(file, &root)
		if err != nil {
			return nil, fmt.Errorf("failed to decode TOML file %s: %w", file, err)
		}
		if undecoded := meta.Undecoded(); len(undecoded) > 0 {
			keys := make([]string, len(undecoded))
			for i, k := range undecoded {
				keys[i] = k.String()
			}
			return nil, fmt.Errorf("%w: unknown keys in %s: %s", config.ErrInvalid, file, strings.Join(keys, ", "))
		}
		layers = append(layers, root.layer(file))
	}

	wb, err := config.Assemble(ctx, layers)
	if err != nil {
		return nil, err
	}
	logger.Debug("TOML loading complete.", "files", len(files), "sheets", len(wb.Sheets), "passes", wb.Passes, "strategy", wb.Strategy)
	return wb, nil
}
