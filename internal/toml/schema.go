package toml

import "github.com/vk/cellgrid/internal/config"

// fileRoot mirrors one TOML file. Pointer fields stay nil for absent keys.
type fileRoot struct {
	Folder    *string      `toml:"folder"`
	Extension *string      `toml:"extension"`
	Passes    *int         `toml:"passes"`
	Strategy  *string      `toml:"strategy"`
	Sheets    []sheetTable `toml:"sheet"`
}

type sheetTable struct {
	Name      string  `toml:"name"`
	Path      *string `toml:"path"`
	Delimiter *string `toml:"delimiter"`
}

func (r *fileRoot) layer(source string) config.Layer {
	l := config.Layer{
		Source:    source,
		Folder:    r.Folder,
		Extension: r.Extension,
		Passes:    r.Passes,
		Strategy:  r.Strategy,
	}
	for _, s := range r.Sheets {
		l.Sheets = append(l.Sheets, config.SheetDecl{Name: s.Name, Path: s.Path, Delimiter: s.Delimiter})
	}
	return l
}
