package app

import (
	"context"

	"github.com/vk/cellgrid/internal/config"
	"github.com/vk/cellgrid/internal/ctxlog"
	"github.com/vk/cellgrid/internal/sheet"
)

// Run resolves and renders every sheet of the workbook in order. Sheets that
// cannot be read or parsed are logged and skipped; only output failures and
// cancellation end the run early.
func (a *App) Run(ctx context.Context) error {
	ctx = ctxlog.WithLogger(ctx, a.logger)
	a.logger.Debug("App.Run method started.")

	if len(a.workbook.Sheets) == 0 {
		a.logger.Warn("No sheets configured, nothing to resolve.", "folder", a.workbook.Folder)
		return nil
	}

	strategy := newStrategy(a.workbook)
	a.logger.Info("Resolving workbook.", "sheets", len(a.workbook.Sheets), "strategy", a.workbook.Strategy)
	for _, s := range a.workbook.Sheets {
		if err := ctx.Err(); err != nil {
			return err
		}
		if err := a.runSheet(ctx, s, strategy); err != nil {
			return err
		}
	}

	a.logger.Debug("App.Run method finished.")
	return nil
}

// newStrategy builds the resolution strategy a workbook asks for.
func newStrategy(wb *config.Workbook) sheet.Strategy {
	resolver := sheet.NewResolver()
	if wb.Strategy == config.StrategyOrdered {
		return sheet.NewOrdered(resolver)
	}
	return sheet.NewDriver(wb.Passes, resolver)
}
