package pipeline

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/nao1215/scanbench/internal/chart"
	"github.com/nao1215/scanbench/internal/config"
	"github.com/nao1215/scanbench/internal/model"
	"github.com/nao1215/scanbench/internal/report"
)

// MarkdownTableStep writes the Markdown comparison table.
type MarkdownTableStep struct {
	cfg *config.Config
}

// NewMarkdownTableStep creates the Markdown table step.
func NewMarkdownTableStep(cfg *config.Config) *MarkdownTableStep {
	return &MarkdownTableStep{cfg: cfg}
}

// Name returns the step's name for logging purposes.
func (s *MarkdownTableStep) Name() string {
	return "markdown-table"
}

// Do renders the Markdown comparison table into the output directory.
func (s *MarkdownTableStep) Do(_ context.Context, result *model.Result) error {
	path := filepath.Join(s.cfg.OutputDir, config.MarkdownTableFile)

	f, err := os.Create(path) //nolint:gosec // Output paths come from configuration
	if err != nil {
		return fmt.Errorf("failed to create %s: %w", path, err)
	}
	if _, err := report.NewMarkdownWriter(f).Write(result); err != nil {
		f.Close() //nolint:errcheck,gosec // Write error takes precedence
		return fmt.Errorf("failed to write %s: %w", path, err)
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("failed to close %s: %w", path, err)
	}
	return nil
}

// TextTableStep writes the fixed-width plain-text report. When the
// configuration asks for it, the same report is echoed to stdout through a
// MultiWriter.
type TextTableStep struct {
	cfg *config.Config
}

// NewTextTableStep creates the text report step.
func NewTextTableStep(cfg *config.Config) *TextTableStep {
	return &TextTableStep{cfg: cfg}
}

// Name returns the step's name for logging purposes.
func (s *TextTableStep) Name() string {
	return "text-table"
}

// Do renders the plain-text report into the output directory.
func (s *TextTableStep) Do(_ context.Context, result *model.Result) error {
	path := filepath.Join(s.cfg.OutputDir, config.TextReportFile)

	f, err := os.Create(path) //nolint:gosec // Output paths come from configuration
	if err != nil {
		return fmt.Errorf("failed to create %s: %w", path, err)
	}

	writers := []report.Writer{report.NewTextWriter(f)}
	if s.cfg.EchoText {
		writers = append(writers, report.NewTextWriter(os.Stdout))
	}

	if _, err := report.NewMultiWriter(writers...).Write(result); err != nil {
		f.Close() //nolint:errcheck,gosec // Write error takes precedence
		return fmt.Errorf("failed to write %s: %w", path, err)
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("failed to close %s: %w", path, err)
	}
	return nil
}

// ChartStep renders one grouped bar chart and persists it.
type ChartStep struct {
	cfg   *config.Config
	kind  chart.Kind
	synth *chart.Synthesizer
}

// NewChartStep creates the chart step for the given metric kind.
func NewChartStep(cfg *config.Config, kind chart.Kind) *ChartStep {
	return &ChartStep{
		cfg:   cfg,
		kind:  kind,
		synth: chart.NewSynthesizer(),
	}
}

// Name returns the step's name for logging purposes.
func (s *ChartStep) Name() string {
	return s.kind.String() + "-chart"
}

// Do renders the chart and writes it into the output directory.
func (s *ChartStep) Do(_ context.Context, result *model.Result) error {
	buf, err := s.synth.Render(result, s.kind)
	if err != nil {
		return err
	}

	path := filepath.Join(s.cfg.OutputDir, chartFileName(s.kind))
	if err := os.WriteFile(path, buf, 0600); err != nil {
		return fmt.Errorf("failed to write %s: %w", path, err)
	}
	return nil
}

// chartFileName maps a chart kind to its fixed output file name.
func chartFileName(kind chart.Kind) string {
	switch kind {
	case chart.KindTime:
		return config.TimeChartFile
	case chart.KindMemory:
		return config.MemoryChartFile
	case chart.KindCPU:
		return config.CPUChartFile
	default:
		return kind.String() + "_comparison.png"
	}
}

// DiagramStep renders the fixed architecture diagram and persists it.
type DiagramStep struct {
	cfg      *config.Config
	renderer *chart.DiagramRenderer
}

// NewDiagramStep creates the architecture diagram step.
func NewDiagramStep(cfg *config.Config) *DiagramStep {
	return &DiagramStep{
		cfg:      cfg,
		renderer: chart.NewDiagramRenderer(),
	}
}

// Name returns the step's name for logging purposes.
func (s *DiagramStep) Name() string {
	return "architecture-diagram"
}

// Do renders the diagram and writes it into the output directory.
// The diagram depends only on fixed constants, never on the result set.
func (s *DiagramStep) Do(_ context.Context, _ *model.Result) error {
	buf, err := s.renderer.Render()
	if err != nil {
		return err
	}

	path := filepath.Join(s.cfg.OutputDir, config.ArchitectureDiagramFile)
	if err := os.WriteFile(path, buf, 0600); err != nil {
		return fmt.Errorf("failed to write %s: %w", path, err)
	}
	return nil
}
