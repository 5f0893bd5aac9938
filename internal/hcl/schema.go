package hcl

import "github.com/vk/cellgrid/internal/config"

// fileRoot is decoded from every configuration file. Pointer attributes stay
// nil when a file leaves them out, so later files only override what they
// actually set. Unknown attributes and blocks are rejected.
type fileRoot struct {
	Folder    *string       `hcl:"folder,optional"`
	Extension *string       `hcl:"extension,optional"`
	Passes    *int          `hcl:"passes,optional"`
	Strategy  *string       `hcl:"strategy,optional"`
	Sheets    []*sheetBlock `hcl:"sheet,block"`
}

// sheetBlock is a `sheet "<name>" { ... }` block.
type sheetBlock struct {
	Name string `hcl:"name,label"`
	// Path overrides "<folder>/<name>.<extension>". Relative paths are
	// resolved against the directory of the declaring file.
	Path      *string `hcl:"path,optional"`
	Delimiter *string `hcl:"delimiter,optional"`
}

func (r *fileRoot) layer(source string) config.Layer {
	l := config.Layer{
		Source:    source,
		Folder:    r.Folder,
		Extension: r.Extension,
		Passes:    r.Passes,
		Strategy:  r.Strategy,
	}
	for _, b := range r.Sheets {
		l.Sheets = append(l.Sheets, config.SheetDecl{Name: b.Name, Path: b.Path, Delimiter: b.Delimiter})
	}
	return l
}
