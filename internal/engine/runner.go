/*
PURPOSE:
  High-level runner that turns every configured report into a chart.
  Loops through jobs: Load -> Plot.

REQUIREMENTS:
  User-specified:
  - One output image per input report, optionally titled.
  - Stop at the first failure; never write a chart from bad data.

  Implementation-discovered:
  - The CLI table/libs commands need the loading half on its own (LoadJob).

ARCHITECTURE INTEGRATION:
  - Called by: internal/cli
  - Uses: internal/report, internal/chart, internal/config, internal/output

ERROR HANDLING:
  - Wraps the failing job's input path and returns immediately.

IMPLEMENTATION RULES:
  - Strictly sequential; each job starts from fresh data.

USAGE:
  engine.Run(cfg)

RELATED FILES:
  - internal/report/report.go
  - internal/chart/chart.go
*/

package engine

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/daryltucker/benchplot/internal/chart"
	"github.com/daryltucker/benchplot/internal/config"
	"github.com/daryltucker/benchplot/internal/model"
	"github.com/daryltucker/benchplot/internal/output"
	"github.com/daryltucker/benchplot/internal/report"
)

// ChartOptions maps the config onto renderer options.
func ChartOptions(cfg *config.Config) chart.Options {
	return chart.Options{
		Width:       cfg.Width,
		Height:      cfg.Height,
		DPI:         cfg.DPI,
		GroupHeight: cfg.GroupHeight,
		Palette:     cfg.Palette,
		Pinned:      cfg.PinnedColors,
		ValueLabel:  cfg.ValueLabel,
	}
}

// LoadJob reads and validates the report of a single job.
func LoadJob(job config.Job) (*model.ResultTable, error) {
	output.Logger.Debug("Loading report", "input", job.Input)
	t, err := report.LoadFile(job.Input)
	if err != nil {
		return nil, err
	}
	output.Logger.Debug("Loaded report",
		"input", job.Input,
		"libraries", len(t.Libraries),
		"benchmarks", len(t.Benchmarks),
	)
	return t, nil
}

// RunJob loads one report and writes its chart.
func RunJob(cfg *config.Config, job config.Job) error {
	t, err := LoadJob(job)
	if err != nil {
		return err
	}

	out := job.OutputPath(cfg.OutputDir)
	if dir := filepath.Dir(out); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("failed to create output directory %s: %w", dir, err)
		}
	}

	if err := chart.Plot(out, t, job.Title, ChartOptions(cfg)); err != nil {
		return fmt.Errorf("failed to plot %s: %w", out, err)
	}
	output.Logger.Info("Chart written", "input", job.Input, "output", out, "title", job.Title)
	return nil
}

// Run executes every configured job in order.
func Run(cfg *config.Config) error {
	if err := cfg.Validate(); err != nil {
		return err
	}
	for _, job := range cfg.Jobs {
		if err := RunJob(cfg, job); err != nil {
			return fmt.Errorf("job %s: %w", job.Input, err)
		}
	}
	return nil
}
