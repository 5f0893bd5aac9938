package config

import (
	"context"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/vk/cellgrid/internal/ctxlog"
	"github.com/vk/cellgrid/internal/fsutil"
)

// Layer holds what one configuration file sets. Nil attributes are left
// unset by that file, so merging only overrides what a file actually names.
type Layer struct {
	// Source is the file the layer was decoded from. Relative paths in the
	// layer are resolved against its directory.
	Source    string
	Folder    *string
	Extension *string
	Passes    *int
	Strategy  *string
	Sheets    []SheetDecl
}

// SheetDecl is a sheet named by a configuration file.
type SheetDecl struct {
	Name string
	// Path overrides "<folder>/<name>.<extension>".
	Path      *string
	Delimiter *string
}

// Assemble merges layers in order into a validated workbook. Scalar
// attributes set by later layers win; sheet declarations accumulate. The
// default folder is resolved against the directory of the first layer. With
// no declared sheets, every file with the workbook extension in the folder
// becomes a sheet.
func Assemble(ctx context.Context, layers []Layer) (*Workbook, error) {
	wb := New()
	if len(layers) > 0 {
		wb.Folder = filepath.Join(filepath.Dir(layers[0].Source), DefaultFolder)
	}

	for _, l := range layers {
		if err := wb.apply(l); err != nil {
			return nil, fmt.Errorf("invalid configuration file %s: %w", l.Source, err)
		}
	}
	if err := wb.resolveSheets(ctx, layers); err != nil {
		return nil, err
	}
	if err := wb.Validate(); err != nil {
		return nil, err
	}
	return wb, nil
}

func (w *Workbook) apply(l Layer) error {
	dir := filepath.Dir(l.Source)
	if l.Folder != nil {
		w.Folder = resolvePath(dir, *l.Folder)
	}
	if l.Extension != nil {
		w.Extension = strings.TrimPrefix(*l.Extension, ".")
	}
	if l.Passes != nil {
		w.Passes = *l.Passes
	}
	if l.Strategy != nil {
		st, err := ParseStrategy(*l.Strategy)
		if err != nil {
			return err
		}
		w.Strategy = st
	}
	return nil
}

func (w *Workbook) resolveSheets(ctx context.Context, layers []Layer) error {
	declared := 0
	for _, l := range layers {
		dir := filepath.Dir(l.Source)
		for _, d := range l.Sheets {
			declared++
			if d.Name == "" {
				return fmt.Errorf("%w: sheet in %s has no name", ErrInvalid, l.Source)
			}
			delim := ""
			if d.Delimiter != nil {
				delim = *d.Delimiter
			}
			r, err := ParseDelimiter(delim)
			if err != nil {
				return fmt.Errorf("sheet %q: %w", d.Name, err)
			}

			path := filepath.Join(w.Folder, d.Name+"."+w.Extension)
			if d.Path != nil {
				path = resolvePath(dir, *d.Path)
			}
			w.Sheets = append(w.Sheets, Sheet{Name: d.Name, Path: path, Delimiter: r})
		}
	}
	if declared > 0 {
		return nil
	}

	files, err := fsutil.FindFilesByExtension(w.Folder, w.Extension)
	if err != nil {
		return fmt.Errorf("failed to list sheets in %s: %w", w.Folder, err)
	}
	for _, f := range files {
		w.Sheets = append(w.Sheets, Sheet{
			Name: strings.TrimSuffix(filepath.Base(f), "."+w.Extension),
			Path: f,
		})
	}
	ctxlog.FromContext(ctx).Debug("Discovered sheet files.", "folder", w.Folder, "count", len(files))
	return nil
}

func resolvePath(dir, p string) string {
	if filepath.IsAbs(p) {
		return filepath.Clean(p)
	}
	return filepath.Join(dir, p)
}
