package app

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/google/uuid"

	"github.com/kilianp07/enersim/config"
	"github.com/kilianp07/enersim/core/analysis"
	"github.com/kilianp07/enersim/core/report"
	"github.com/kilianp07/enersim/core/simulation"
	"github.com/kilianp07/enersim/infra/chart"
	"github.com/kilianp07/enersim/infra/logger"
)

// Service orchestrates the pipeline: generate, analyze, report, render.
type Service struct {
	cfg *config.Config
	log logger.Logger
	out io.Writer
}

// New creates a Service writing its report to stdout.
func New(cfg *config.Config) *Service {
	return NewWithWriter(cfg, os.Stdout)
}

// NewWithWriter creates a Service writing its report to w. Used by tests.
func NewWithWriter(cfg *config.Config, w io.Writer) *Service {
	return &Service{cfg: cfg, log: logger.NewWithLevel("service", cfg.Logging.Level), out: w}
}

// Run executes one simulation pass. The stages are strictly sequential; ctx
// is checked between them so an interrupt stops the run early.
func (s *Service) Run(ctx context.Context) error {
	runID := uuid.NewString()
	s.log.Debugw("run started", map[string]any{"run_id": runID, "seed": s.cfg.Simulation.Seed})

	gen := simulation.New(s.cfg.Simulation, s.log)
	tab, err := gen.Run()
	if err != nil {
		return fmt.Errorf("generate series: %w", err)
	}
	if err := tab.Validate(s.cfg.Simulation.FossilCapacityFloorGW, s.cfg.Simulation.RenewableCostFloor); err != nil {
		return fmt.Errorf("table invariant: %w", err)
	}
	if err := ctx.Err(); err != nil {
		return err
	}

	rep := analysis.Analyze(tab)
	rw := report.Writer{PreviewRows: s.cfg.Output.PreviewRows}
	if err := rw.Write(s.out, runID, tab, rep); err != nil {
		return fmt.Errorf("write report: %w", err)
	}
	if err := ctx.Err(); err != nil {
		return err
	}

	if s.cfg.Output.RenderChart() {
		r := chart.Renderer{Path: s.cfg.Output.ChartPath}
		if err := r.Render(tab); err != nil {
			return fmt.Errorf("render chart: %w", err)
		}
		s.log.Infof("figure written to %s", s.cfg.Output.ChartPath)
	}
	return nil
}
