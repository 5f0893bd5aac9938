package cli

import (
	"bytes"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vk/cellgrid/internal/app"
)

func TestParse(t *testing.T) {
	t.Parallel()

	testCases := []struct {
		name           string
		args           []string
		expectExit     bool
		expectErr      string
		expectedConfig *app.Config
		expectOutput   string
	}{
		{
			name: "all flags",
			args: []string{
				"-config", "/w/book.hcl",
				"--log-level=DEBUG",
				"--log-format=json",
				"--passes=25",
				"--strategy=ordered",
				"--config-format=TOML",
			},
			expectedConfig: &app.Config{
				ConfigPaths:  []string{"/w/book.hcl"},
				ConfigFormat: "toml",
				LogLevel:     "debug",
				LogFormat:    "json",
				Passes:       25,
				Strategy:     "ordered",
			},
		},
		{
			name: "shorthand flag and defaults",
			args: []string{"-c", "/short.hcl"},
			expectedConfig: &app.Config{
				ConfigPaths:  []string{"/short.hcl"},
				ConfigFormat: "hcl",
				LogLevel:     "info",
				LogFormat:    "text",
			},
		},
		{
			name: "flag and positional paths merge",
			args: []string{"-c", "/base.hcl", "/override.hcl", "/more"},
			expectedConfig: &app.Config{
				ConfigPaths:  []string{"/base.hcl", "/override.hcl", "/more"},
				ConfigFormat: "hcl",
				LogLevel:     "info",
				LogFormat:    "text",
			},
		},
		{
			name:         "help flag triggers clean exit",
			args:         []string{"-h"},
			expectExit:   true,
			expectOutput: "Usage:",
		},
		{
			name:         "no path prints usage",
			args:         nil,
			expectExit:   true,
			expectOutput: "CONFIG_PATH",
		},
		{
			name:      "unknown flag",
			args:      []string{"--workers=3"},
			expectErr: "flag provided but not defined: -workers",
		},
		{
			name:      "invalid log format",
			args:      []string{"--log-format=xml", "w.hcl"},
			expectErr: "invalid log-format",
		},
		{
			name:      "invalid log level",
			args:      []string{"--log-level=trace", "w.hcl"},
			expectErr: "invalid log-level",
		},
		{
			name:      "invalid strategy",
			args:      []string{"--strategy=random", "w.hcl"},
			expectErr: "invalid strategy",
		},
		{
			name:      "invalid config format",
			args:      []string{"--config-format=yaml", "w.hcl"},
			expectErr: "unknown config format",
		},
		{
			name:      "negative passes",
			args:      []string{"--passes=-1", "w.hcl"},
			expectErr: "passes must not be negative",
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			var out bytes.Buffer

			cfg, exit, err := Parse(tc.args, &out)

			if tc.expectErr != "" {
				require.Error(t, err)
				var exitErr *ExitError
				require.ErrorAs(t, err, &exitErr)
				assert.Equal(t, 2, exitErr.Code)
				assert.Contains(t, exitErr.Message, tc.expectErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.expectExit, exit)
			if tc.expectOutput != "" {
				assert.Contains(t, out.String(), tc.expectOutput)
			}
			if tc.expectedConfig != nil {
				if diff := cmp.Diff(tc.expectedConfig, cfg); diff != "" {
					t.Errorf("config mismatch (-want +got):\n%s", diff)
				}
			}
		})
	}
}
