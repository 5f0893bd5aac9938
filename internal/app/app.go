package app

import (
	"context"
	"fmt"
	"io"
	"log/slog"

	"github.com/twinj/uuid"

	"github.com/vk/cellgrid/internal/config"
	"github.com/vk/cellgrid/internal/ctxlog"
)

// App encapsulates the application's dependencies, configuration, and lifecycle.
type App struct {
	outW     io.Writer
	logger   *slog.Logger
	workbook *config.Workbook
	runID    string
}

// NewApp is the constructor for the main application. Tables are written to
// outW and logs to logW. The workbook is loaded eagerly, so configuration
// problems surface here rather than in Run.
func NewApp(outW, logW io.Writer, appConfig *Config, loader config.Loader) (*App, error) {
	runID := uuid.NewV4().String()
	logger := newLogger(logW, appConfig.LogLevel, appConfig.LogFormat, runID)
	ctx := ctxlog.WithLogger(context.Background(), logger)
	logger.Debug("Logger configured successfully.")

	wb, err := loader.Load(ctx, appConfig.ConfigPaths...)
	if err != nil {
		return nil, fmt.Errorf("failed to load configuration: %w", err)
	}
	if appConfig.Passes > 0 {
		wb.Passes = appConfig.Passes
	}
	if appConfig.Strategy != "" {
		st, err := config.ParseStrategy(appConfig.Strategy)
		if err != nil {
			return nil, err
		}
		wb.Strategy = st
	}
	logger.Debug("Configuration loaded.", "sheets", len(wb.Sheets), "passes", wb.Passes, "strategy", wb.Strategy)

	return &App{
		outW:     outW,
		logger:   logger,
		workbook: wb,
		runID:    runID,
	}, nil
}

// Workbook returns the loaded workbook. This is primarily for testing.
func (a *App) Workbook() *config.Workbook {
	return a.workbook
}

// RunID returns the identifier attached to every log record of this app.
func (a *App) RunID() string {
	return a.runID
}
