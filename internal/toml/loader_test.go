package toml

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vk/cellgrid/internal/config"
)

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
}

func TestLoad_DeclaredSheets(t *testing.T) {
	dir := t.TempDir()
	cfg := filepath.Join(dir, "workbook.toml")
	writeFile(t, cfg, `
folder    = "sheets"
extension = ".txt"
passes    = 4
strategy  = "ordered"

[[sheet]]
name = "1"

[[sheet]]
name      = "budget"
delimiter = ";"

[[sheet]]
name      = "extra"
path      = "elsewhere/extra.tsv"
delimiter = "\t"
`)

	wb, err := NewLoader().Load(t.Context(), cfg)
	require.NoError(t, err)

	want := &config.Workbook{
		Folder:    filepath.Join(dir, "sheets"),
		Extension: "txt",
		Passes:    4,
		Strategy:  config.StrategyOrdered,
		Sheets: []config.Sheet{
			{Name: "1", Path: filepath.Join(dir, "sheets", "1.txt")},
			{Name: "budget", Path: filepath.Join(dir, "sheets", "budget.txt"), Delimiter: ';'},
			{Name: "extra", Path: filepath.Join(dir, "elsewhere", "extra.tsv"), Delimiter: '\t'},
		},
	}
	if diff := cmp.Diff(want, wb); diff != "" {
		t.Errorf("workbook mismatch (-want +got):\n%s", diff)
	}
}

func TestLoad_DiscoversSheetsAndMerges(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, filepath.Join(dir, "data", "b.csv"), "1")
	writeFile(t, filepath.Join(dir, "data", "a.csv"), "2")
	writeFile(t, filepath.Join(dir, "a_base.toml"), `passes = 3`)
	writeFile(t, filepath.Join(dir, "b_local.toml"), `passes = 8`)
	writeFile(t, filepath.Join(dir, "ignored.hcl"), `passes = 99`)

	wb, err := NewLoader().Load(t.Context(), dir)
	require.NoError(t, err)

	assert.Equal(t, 8, wb.Passes)
	assert.Equal(t, filepath.Join(dir, "data"), wb.Folder)
	assert.Equal(t, []config.Sheet{
		{Name: "a", Path: filepath.Join(dir, "data", "a.csv")},
		{Name: "b", Path: filepath.Join(dir, "data", "b.csv")},
	}, wb.Sheets)
}

func TestLoad_Errors(t *testing.T) {
	testCases := []struct {
		name    string
		content string
		wantErr string
	}{
		{"syntax", `passes = `, "failed to decode TOML file"},
		{"wrong type", `passes = "many"`, "failed to decode TOML file"},
		{"unknown key", `colour = "red"`, "unknown keys"},
		{"unknown sheet key", "[[sheet]]\nname = \"a\"\nsize = 3", "sheet.size"},
		{"unknown strategy", `strategy = "random"`, "unknown strategy"},
		{"sheet without name", "[[sheet]]\ndelimiter = \";\"", "has no name"},
		{"long delimiter", "[[sheet]]\nname = \"a\"\ndelimiter = \";;\"", "single character"},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			dir := t.TempDir()
			cfg := filepath.Join(dir, "workbook.toml")
			writeFile(t, cfg, tc.content)

			_, err := NewLoader().Load(t.Context(), cfg)
			require.Error(t, err)
			assert.Contains(t, err.Error(), tc.wantErr)
		})
	}
}

func TestLoad_NoFiles(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, filepath.Join(dir, "workbook.hcl"), "")

	_, err := NewLoader().Load(t.Context(), dir)
	assert.ErrorIs(t, err, ErrNoConfig)
}
