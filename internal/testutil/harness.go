package testutil

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/vk/cellgrid/internal/app"
)

// HarnessResult holds the outcomes of an integration test run.
type HarnessResult struct {
	// Output is everything the app rendered.
	Output    string
	LogOutput string
	Err       error
	App       *app.App
}

// RunIntegrationTest provides a standardized harness for running integration
// tests using a default background context.
func RunIntegrationTest(t *testing.T, files map[string]string, appConfig app.Config) *HarnessResult {
	t.Helper()
	return RunIntegrationTestWithContext(context.Background(), t, files, appConfig)
}

// RunIntegrationTestWithContext writes files into a temporary directory, loads
// the workbook files found there through the real loader for
// appConfig.ConfigFormat and runs the app.
// Paths in files are relative to that directory, e.g. "data/1.csv".
// appConfig.ConfigPaths, when set, are also relative to it.
func RunIntegrationTestWithContext(ctx context.Context, t *testing.T, files map[string]string, appConfig app.Config) *HarnessResult {
	t.Helper()

	tmpDir := t.TempDir()
	for name, content := range files {
		filePath := filepath.Join(tmpDir, name)
		require.NoError(t, os.MkdirAll(filepath.Dir(filePath), 0o755))
		require.NoError(t, os.WriteFile(filePath, []byte(content), 0o644))
	}

	if len(appConfig.ConfigPaths) == 0 {
		appConfig.ConfigPaths = []string{tmpDir}
	} else {
		paths := make([]string, len(appConfig.ConfigPaths))
		for i, p := range appConfig.ConfigPaths {
			paths[i] = filepath.Join(tmpDir, p)
		}
		appConfig.ConfigPaths = paths
	}
	appConfig.LogFormat = "text"

	loader, err := app.NewLoader(appConfig.ConfigFormat)
	require.NoError(t, err)

	testApp, outBuffer, logBuffer, err := app.SetupAppTest(t, &appConfig, loader)
	if err == nil {
		err = testApp.Run(ctx)
	}

	return &HarnessResult{
		Output:    outBuffer.String(),
		LogOutput: logBuffer.String(),
		Err:       err,
		App:       testApp,
	}
}
