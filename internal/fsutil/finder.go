// Package fsutil provides file system utility functions.
package fsutil

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"slices"
	"strings"
)

// FindFilesByExtension recursively searches rootPath for files named
// "*.<extension>" and returns their paths in lexical order. A leading dot on
// extension is optional.
func FindFilesByExtension(rootPath string, extension string) ([]string, error) {
	extension = strings.TrimPrefix(extension, ".")
	if extension == "" {
		return nil, errors.New("extension must not be empty")
	}
	suffix := "." + extension

	var files []string
	err := filepath.WalkDir(rootPath, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if !d.IsDir() && strings.HasSuffix(d.Name(), suffix) && d.Name() != suffix {
			files = append(files, path)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	slices.Sort(files)
	return files, nil
}

// CollectFiles expands paths into a flat, duplicate-free list of files with
// the given extension. Files are kept in argument order when named directly;
// directories contribute their matches in lexical order. Paths that do not
// exist are skipped.
func CollectFiles(paths []string, extension string) ([]string, error) {
	extension = strings.TrimPrefix(extension, ".")
	var out []string
	seen := make(map[string]struct{})
	add := func(p string) {
		if _, ok := seen[p]; !ok {
			out = append(out, p)
			seen[p] = struct{}{}
		}
	}

	for _, path := range paths {
		info, err := os.Stat(path)
		if err != nil {
			if errors.Is(err, fs.ErrNotExist) {
				continue
			}
			return nil, fmt.Errorf("error accessing path %s: %w", path, err)
		}

		if !info.IsDir() {
			if filepath.Ext(path) == "."+extension {
				add(path)
			}
			continue
		}
		found, err := FindFilesByExtension(path, extension)
		if err != nil {
			return nil, err
		}
		for _, f := range found {
			add(f)
		}
	}
	return out, nil
}
