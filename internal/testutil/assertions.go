package testutil

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/vk/cellgrid/internal/render"
)

// Tables splits rendered output into one slice of trimmed lines per sheet.
// Trailing padding is dropped so tests can compare against readable text.
func Tables(t *testing.T, result *HarnessResult) [][]string {
	t.Helper()

	var tables [][]string
	var current []string
	for _, line := range strings.Split(result.Output, "\n") {
		switch line {
		case render.Separator:
			tables = append(tables, current)
			current = nil
		case "":
		default:
			current = append(current, strings.TrimRight(line, " "))
		}
	}
	require.Empty(t, current, "output does not end with a separator")
	return tables
}

// AssertLogged checks that a log line containing every fragment was written.
func AssertLogged(t *testing.T, result *HarnessResult, fragments ...string) {
	t.Helper()

	for _, line := range strings.Split(result.LogOutput, "\n") {
		if containsAll(line, fragments) {
			return
		}
	}
	require.Failf(t, "log line not found", "no log line contains all of %q", fragments)
}

func containsAll(s string, fragments []string) bool {
	for _, f := range fragments {
		if !strings.Contains(s, f) {
			return false
		}
	}
	return true
}
