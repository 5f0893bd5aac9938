package config

import "context"

// Loader is the interface for a format-specific configuration loader.
type Loader interface {
	// Load reads configuration from the given paths, which may be files or
	// directories, merges them and returns the validated workbook.
	Load(ctx context.Context, paths ...string) (*Workbook, error)
}
