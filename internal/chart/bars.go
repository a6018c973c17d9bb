package chart

import (
	"fmt"

	"github.com/go-analyze/charts"
	"github.com/nao1215/scanbench/internal/model"
)

// Kind identifies one metric visualized as a grouped bar chart.
type Kind int

const (
	// KindTime charts elapsed wall-clock seconds.
	KindTime Kind = iota

	// KindMemory charts peak memory in megabytes.
	KindMemory

	// KindCPU charts CPU percentage on a fixed 0-100 axis.
	KindCPU
)

// cpuAxisMax is the fixed display ceiling of the CPU chart. Measured values
// above it (multi-core processes) are clipped for display only; the stored
// sample keeps the full value.
const cpuAxisMax = 100.0

// String returns the kind's short name for logging and file naming.
func (k Kind) String() string {
	switch k {
	case KindTime:
		return "time"
	case KindMemory:
		return "memory"
	case KindCPU:
		return "cpu"
	default:
		return "unknown"
	}
}

// Title returns the chart title for the kind.
func (k Kind) Title() string {
	switch k {
	case KindTime:
		return "Scan Execution Time (seconds)"
	case KindMemory:
		return "Peak Memory Usage (MB)"
	case KindCPU:
		return "CPU Usage (%)"
	default:
		return ""
	}
}

// value returns the plotted value for a sample, and whether it is present.
// Memory is converted from kbytes to megabytes for display; CPU is clipped
// to the fixed display axis.
func (k Kind) value(s model.Sample) (float64, bool) {
	switch k {
	case KindTime:
		return s.ElapsedSeconds.Value()
	case KindMemory:
		kb, ok := s.PeakMemoryKB.Value()
		return float64(kb) / 1024.0, ok
	case KindCPU:
		pct, ok := s.CPUPercent.Value()
		if ok && float64(pct) > cpuAxisMax {
			return cpuAxisMax, true
		}
		return float64(pct), ok
	default:
		return 0, false
	}
}

// labelFormatter returns the bar value-label formatter for the kind.
// Zero-height bars (absent measurements) render no label.
func (k Kind) labelFormatter() func(float64) string {
	return func(v float64) string {
		if v == 0 {
			return ""
		}
		switch k {
		case KindTime:
			return fmt.Sprintf("%.2fs", v)
		case KindMemory:
			return fmt.Sprintf("%.1fMB", v)
		case KindCPU:
			return fmt.Sprintf("%.0f%%", v)
		default:
			return ""
		}
	}
}

// Kinds returns all chart kinds in render order.
func Kinds() []Kind {
	return []Kind{KindTime, KindMemory, KindCPU}
}

// seriesColors is the fixed per-tool bar palette.
var seriesColors = []charts.Color{
	{R: 0x34, G: 0x98, B: 0xdb, A: 255}, // blue
	{R: 0xe7, G: 0x4c, B: 0x3c, A: 255}, // red
	{R: 0x2e, G: 0xcc, B: 0x71, A: 255}, // green
	{R: 0xf3, G: 0x9c, B: 0x12, A: 255}, // orange
}

// Synthesizer renders grouped bar charts from a result set.
type Synthesizer struct {
	width  int
	height int
}

// SynthesizerOption configures a Synthesizer.
type SynthesizerOption func(*Synthesizer)

// WithSize overrides the rendered image dimensions in pixels.
func WithSize(width, height int) SynthesizerOption {
	return func(s *Synthesizer) {
		if width > 0 && height > 0 {
			s.width = width
			s.height = height
		}
	}
}

// NewSynthesizer creates a Synthesizer with default dimensions.
func NewSynthesizer(opts ...SynthesizerOption) *Synthesizer {
	s := &Synthesizer{
		width:  1200,
		height: 600,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Render draws the grouped bar chart for one metric kind and returns the
// encoded PNG. Bar groups follow the fixed scenario order; bars within a
// group follow the fixed tool order. Every configured pair gets exactly one
// bar: absent values are zero-height, never omitted, so positions stay
// aligned across tools and scenarios.
func (s *Synthesizer) Render(result *model.Result, kind Kind) ([]byte, error) {
	tools := result.Tools()
	scenarios := result.Scenarios()

	series := make([][]float64, len(tools))
	toolNames := make([]string, len(tools))
	for i, tool := range tools {
		row := make([]float64, len(scenarios))
		for j, scenario := range scenarios {
			if v, ok := kind.value(result.Sample(tool.Key, scenario.Key)); ok {
				row[j] = v
			}
		}
		series[i] = row
		toolNames[i] = tool.Label
	}

	scenarioLabels := make([]string, len(scenarios))
	for j, scenario := range scenarios {
		scenarioLabels[j] = scenario.Label
	}

	opt := charts.NewBarChartOptionWithData(series)
	opt.Theme = charts.GetTheme(charts.ThemeLight).WithSeriesColors(seriesColors)
	opt.Title.Text = kind.Title()
	opt.Title.FontStyle = charts.FontStyle{
		FontSize:  14,
		FontColor: charts.ColorBlack,
		Font:      charts.GetDefaultFont(),
	}
	opt.XAxis.Labels = scenarioLabels
	opt.Legend.SeriesNames = toolNames
	if kind == KindCPU {
		opt.YAxis = []charts.YAxisOption{
			{Min: charts.Ptr(0.0), Max: charts.Ptr(cpuAxisMax)},
		}
	}
	for i := range opt.SeriesList {
		opt.SeriesList[i].Label.Show = charts.Ptr(true)
		opt.SeriesList[i].Label.ValueFormatter = kind.labelFormatter()
	}

	p := charts.NewPainter(charts.PainterOptions{
		OutputFormat: charts.ChartOutputPNG,
		Width:        s.width,
		Height:       s.height,
	})
	if err := p.BarChart(opt); err != nil {
		return nil, fmt.Errorf("failed to render %s chart: %w", kind, err)
	}
	return p.Bytes()
}
