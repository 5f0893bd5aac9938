package config

import (
	"errors"
	"fmt"
	"unicode/utf8"
)

// Strategy names a resolution strategy.
type Strategy string

const (
	// StrategyPasses runs bounded snapshot passes.
	StrategyPasses Strategy = "passes"
	// StrategyOrdered runs one dependency-ordered sweep.
	StrategyOrdered Strategy = "ordered"
)

// Defaults used for attributes a configuration leaves out.
const (
	DefaultFolder    = "data"
	DefaultExtension = "csv"
	DefaultPasses    = 10
	DefaultStrategy  = StrategyPasses
)

// ErrInvalid marks a workbook that fails validation.
var ErrInvalid = errors.New("invalid workbook configuration")

// Workbook is the unified representation of all loaded configuration.
type Workbook struct {
	// Folder holds the sheet files. Loaders resolve it to an absolute or
	// config-relative path.
	Folder    string
	Extension string
	Passes    int
	Strategy  Strategy
	Sheets    []Sheet
}

// Sheet is one input file.
type Sheet struct {
	// Name is the file name without folder and extension.
	Name string
	// Path is the file to read.
	Path string
	// Delimiter separates fields. Zero means "detect from content".
	Delimiter rune
}

// New returns a workbook with every default applied and no sheets.
func New() *Workbook {
	return &Workbook{
		Folder:    DefaultFolder,
		Extension: DefaultExtension,
		Passes:    DefaultPasses,
		Strategy:  DefaultStrategy,
	}
}

// ParseStrategy validates a strategy name.
func ParseStrategy(s string) (Strategy, error) {
	switch st := Strategy(s); st {
	case StrategyPasses, StrategyOrdered:
		return st, nil
	default:
		return "", fmt.Errorf("%w: unknown strategy %q (want %q or %q)", ErrInvalid, s, StrategyPasses, StrategyOrdered)
	}
}

// ParseDelimiter validates a delimiter attribute. The empty string selects
// detection and yields zero.
func ParseDelimiter(s string) (rune, error) {
	if s == "" {
		return 0, nil
	}
	r, size := utf8.DecodeRuneInString(s)
	if size != len(s) || r == utf8.RuneError || r == '\n' || r == '\r' || r == '#' {
		return 0, fmt.Errorf("%w: delimiter %q must be a single character other than a newline or '#'", ErrInvalid, s)
	}
	return r, nil
}

// Validate checks the invariants every loader must guarantee.
func (w *Workbook) Validate() error {
	var errs []error
	if w.Passes < 1 {
		errs = append(errs, fmt.Errorf("%w: passes must be positive, got %d", ErrInvalid, w.Passes))
	}
	if _, err := ParseStrategy(string(w.Strategy)); err != nil {
		errs = append(errs, err)
	}
	if w.Extension == "" {
		errs = append(errs, fmt.Errorf("%w: extension must not be empty", ErrInvalid))
	}
	seen := make(map[string]bool, len(w.Sheets))
	for _, s := range w.Sheets {
		if s.Path == "" {
			errs = append(errs, fmt.Errorf("%w: sheet %q has no path", ErrInvalid, s.Name))
		}
		if seen[s.Path] {
			errs = append(errs, fmt.Errorf("%w: sheet %q is listed twice", ErrInvalid, s.Path))
		}
		seen[s.Path] = true
	}
	return errors.Join(errs...)
}
