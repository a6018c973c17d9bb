package pipeline

import (
	"context"
	"fmt"
	"log/slog"
	"os"

	"github.com/nao1215/scanbench/internal/aggregate"
	"github.com/nao1215/scanbench/internal/chart"
	"github.com/nao1215/scanbench/internal/config"
)

// Generator orchestrates the whole report run. It aggregates benchmark
// artifacts into a single result and then drives the rendering pipeline.
// Rendering runs best effort, so one failing output does not prevent the
// remaining ones from being written.
type Generator struct {
	cfg    *config.Config
	logger *slog.Logger
}

// GeneratorOption is a functional option for Generator.
type GeneratorOption func(*Generator)

// WithGeneratorLogger sets the logger used by the generator and every
// component it creates.
func WithGeneratorLogger(logger *slog.Logger) GeneratorOption {
	return func(g *Generator) {
		if logger != nil {
			g.logger = logger
		}
	}
}

// NewGenerator creates a Generator for the given configuration.
func NewGenerator(cfg *config.Config, opts ...GeneratorOption) *Generator {
	g := &Generator{
		cfg:    cfg,
		logger: slog.Default(),
	}
	for _, opt := range opts {
		opt(g)
	}
	return g
}

// Run aggregates the benchmark data and renders every output. Aggregation
// failure is fatal. Rendering failures are collected and returned joined,
// alongside the result that the surviving outputs were rendered from.
func (g *Generator) Run(ctx context.Context) error {
	result, err := aggregate.New(g.cfg, aggregate.WithLogger(g.logger)).Run(ctx)
	if err != nil {
		return fmt.Errorf("failed to aggregate benchmark data: %w", err)
	}

	// Created only once aggregation succeeds; a run with no input at all
	// leaves no trace behind.
	if err := os.MkdirAll(g.cfg.OutputDir, 0750); err != nil {
		return fmt.Errorf("failed to create output directory %s: %w", g.cfg.OutputDir, err)
	}

	p := New(WithLogger(g.logger), WithContinueOnError(true))
	p.AddSteps(
		NewMarkdownTableStep(g.cfg),
		NewTextTableStep(g.cfg),
		NewChartStep(g.cfg, chart.KindTime),
		NewChartStep(g.cfg, chart.KindMemory),
		NewChartStep(g.cfg, chart.KindCPU),
		NewDiagramStep(g.cfg),
	)

	if err := p.Execute(ctx, result); err != nil {
		return err
	}

	g.logger.Info("report generated",
		"output_dir", g.cfg.OutputDir,
		"pairs", result.PairCount(),
		"degraded", result.Degraded)
	return nil
}
