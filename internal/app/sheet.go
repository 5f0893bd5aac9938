package app

import (
	"context"
	"fmt"
	"maps"
	"os"
	"slices"

	"github.com/vk/cellgrid/internal/config"
	"github.com/vk/cellgrid/internal/ctxlog"
	"github.com/vk/cellgrid/internal/delimiter"
	"github.com/vk/cellgrid/internal/render"
	"github.com/vk/cellgrid/internal/sheet"
)

// runSheet reads, resolves and renders a single sheet, followed by the
// separator line.
func (a *App) runSheet(ctx context.Context, s config.Sheet, strategy sheet.Strategy) error {
	ctx, logger := ctxlog.With(ctx, "sheet", s.Name)

	data, err := os.ReadFile(s.Path)
	if err != nil {
		logger.Warn("Skipping unreadable sheet.", "path", s.Path, "error", err)
		return nil
	}
	text := string(data)

	sep := s.Delimiter
	if sep == 0 {
		sep = delimiter.Detect(text, delimiter.Default)
		logger.Debug("Delimiter detected.", "delimiter", string(sep))
	}

	g, err := sheet.Parse(text, sep)
	if err != nil {
		logger.Warn("Skipping sheet that cannot be parsed.", "path", s.Path, "error", err)
		return nil
	}
	logger.Debug("Sheet parsed.", "cells", g.Len(), "width", g.Extent().Width, "height", g.Extent().Height)

	report := strategy.Run(ctx, g)
	logReport(ctx, report)

	if err := render.Table(a.outW, g); err != nil {
		return fmt.Errorf("failed to render sheet %s: %w", s.Name, err)
	}
	if _, err := fmt.Fprintln(a.outW, render.Separator); err != nil {
		return fmt.Errorf("failed to render sheet %s: %w", s.Name, err)
	}
	return nil
}

// logReport logs every diagnostic and every cell left pending, in row-major
// order.
func logReport(ctx context.Context, report sheet.Report) {
	logger := ctxlog.FromContext(ctx)

	diagnosed := slices.SortedFunc(maps.Keys(report.Diagnostics), sheet.Position.Compare)
	for _, p := range diagnosed {
		logger.Warn("Cell diagnostic.", "cell", p.String(), "error", report.Diagnostics[p])
	}

	for _, p := range report.Pending {
		if o, ok := report.Outcomes[p]; ok {
			logger.Warn("Cell left pending.", "cell", p.String(), "outcome", o.String())
			continue
		}
		logger.Warn("Cell left pending.", "cell", p.String(), "passes", report.Passes)
	}

	logger.Info("Sheet resolved.", "strategy", report.Strategy, "passes", report.Passes, "pending", len(report.Pending))
}
