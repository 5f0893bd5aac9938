package hcl

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"

	"github.com/vk/cellgrid/internal/config"
	"github.com/vk/cellgrid/internal/ctxlog"
	"github.com/vk/cellgrid/internal/fsutil"
)

// ErrNoConfig is returned when none of the given paths holds an .hcl file.
var ErrNoConfig = errors.New("no HCL configuration files found")

// Loader is the HCL-specific implementation of the config.Loader interface.
type Loader struct{}

var _ config.Loader = (*Loader)(nil)

// NewLoader creates a new HCL configuration loader.
func NewLoader() *Loader {
	return &Loader{}
}

// Load parses every .hcl file found under paths, in order, and merges them
// with config.Assemble. Expressions are evaluated with config_dir bound to
// the directory of the file being decoded.
func (l *Loader) Load(ctx context.Context, paths ...string) (*config.Workbook, error) {
	logger := ctxlog.FromContext(ctx)
	logger.Debug("HCL loader started.", "path_count", len(paths))

	hclFiles, err := fsutil.CollectFiles(paths, "hcl")
	if err != nil {
		return nil, err
	}
	if len(hclFiles) == 0 {
		return nil, fmt.Errorf("%w in %s", ErrNoConfig, strings.Join(paths, ", "))
	}
	logger.Debug("Discovered HCL files.", "count", len(hclFiles))

	parser := hclparse.NewParser()
	layers := make([]config.Layer, 0, len(hclFiles))
	for _, file := range hclFiles {
		hclFile, diags := parser.ParseHCLFile(file)
		if diags.HasErrors() {
			return nil, fmt.Errorf("failed to parse HCL file %s: %w", file, diags)
		}

		var root fileRoot
		diags = gohcl.DecodeBody(hclFile.Body, buildEvalContext(filepath.Dir(file)), &root)
		if diags.HasErrors() {
			return nil, fmt.Errorf("failed to decode HCL file %s: %w", file, diags)
		}
		layers = append(layers, root.layer(file))
	}

	wb, err := config.Assemble(ctx, layers)
	if err != nil {
		return nil, err
	}
	logger.Debug("HCL loading complete.", "folder", wb.Folder, "sheets", len(wb.Sheets), "passes", wb.Passes, "strategy", wb.Strategy)
	return wb, nil
}
