package report

import (
	"fmt"
	"io"
	"strings"

	"github.com/nao1215/scanbench/internal/model"
)

// textPlaceholder is rendered for absent measurements in the text report.
const textPlaceholder = "-"

// reportWidth is the rule width of the text report.
const reportWidth = 78

// TextWriter outputs a fixed-width plain-text comparison report.
// This format is designed for terminal display and for archiving alongside
// the raw benchmark artifacts.
//
// Design decision: We use plain text with ASCII formatting rather than
// ANSI colors because:
// 1. It works in all terminals without compatibility issues
// 2. It's easier to pipe to files or other tools
// 3. Color can be added as an option later if needed
type TextWriter struct {
	baseWriter
}

// NewTextWriter creates a TextWriter that outputs to the given writer.
func NewTextWriter(output io.Writer) *TextWriter {
	return &TextWriter{
		baseWriter: newBaseWriter(output),
	}
}

// Write outputs the full comparison report in plain-text format.
func (w *TextWriter) Write(result *model.Result) (int, error) {
	var sb strings.Builder

	w.writeHeader(&sb, result)
	w.writeComparisonTable(&sb, result)
	w.writeResourceUsage(&sb, result)
	w.writeSpeedAnalysis(&sb, result)
	w.writeFooter(&sb)

	return w.output.Write([]byte(sb.String()))
}

// writeHeader writes the report header with run information.
func (w *TextWriter) writeHeader(sb *strings.Builder, result *model.Result) {
	sb.WriteString("\n")
	sb.WriteString(strings.Repeat("=", reportWidth))
	sb.WriteString("\n")
	sb.WriteString("                         SCANNER BENCHMARK REPORT\n")
	sb.WriteString(strings.Repeat("=", reportWidth))
	sb.WriteString("\n\n")

	sb.WriteString(fmt.Sprintf("Target:    %s\n", textOrPlaceholder(result.Target)))
	sb.WriteString(fmt.Sprintf("Captured:  %s\n", textOrPlaceholder(result.Timestamp)))
	if result.Degraded {
		sb.WriteString("Mode:      DEGRADED (manifest missing, raw artifacts only)\n")
	} else {
		sb.WriteString("Mode:      Complete\n")
	}
	sb.WriteString("\n")
}

// writeComparisonTable writes the fixed-width grid with one row per
// configured (tool, scenario) pair.
func (w *TextWriter) writeComparisonTable(sb *strings.Builder, result *model.Result) {
	sb.WriteString(strings.Repeat("-", reportWidth))
	sb.WriteString("\n")
	sb.WriteString("PERFORMANCE COMPARISON\n")
	sb.WriteString(strings.Repeat("-", reportWidth))
	sb.WriteString("\n\n")

	const rowFormat = "%-10s %-22s %10s %9s %7s %12s %8s\n"
	sb.WriteString(fmt.Sprintf(rowFormat,
		"Tool", "Scenario", "Time (ms)", "Time (s)", "Ports", "Memory (MB)", "CPU (%)"))
	sb.WriteString(fmt.Sprintf(rowFormat,
		strings.Repeat("-", 10), strings.Repeat("-", 22), strings.Repeat("-", 10),
		strings.Repeat("-", 9), strings.Repeat("-", 7), strings.Repeat("-", 12),
		strings.Repeat("-", 8)))

	for _, tool := range result.Tools() {
		for _, scenario := range result.Scenarios() {
			sample := result.Sample(tool.Key, scenario.Key)
			sb.WriteString(fmt.Sprintf(rowFormat,
				tool.Label,
				scenario.Label,
				formatMillis(sample.ElapsedSeconds, textPlaceholder),
				formatSeconds(sample.ElapsedSeconds, textPlaceholder),
				formatCount(sample.OpenPorts, textPlaceholder),
				formatMemoryMB(sample.PeakMemoryKB, textPlaceholder),
				formatCount(sample.CPUPercent, textPlaceholder),
			))
		}
	}
	sb.WriteString("\n")
}

// writeResourceUsage writes the per-measurement memory and CPU breakdown.
// Only present measurements are listed; a fully absent metric renders a
// single "no measurements" line instead of zero-filled entries.
func (w *TextWriter) writeResourceUsage(sb *strings.Builder, result *model.Result) {
	sb.WriteString(strings.Repeat("-", reportWidth))
	sb.WriteString("\n")
	sb.WriteString("RESOURCE USAGE\n")
	sb.WriteString(strings.Repeat("-", reportWidth))
	sb.WriteString("\n\n")

	sb.WriteString("Memory:\n")
	w.writeUsageLines(sb, result, func(s model.Sample) (string, bool) {
		if kb, ok := s.PeakMemoryKB.Value(); ok {
			return fmt.Sprintf("%.1f MB", float64(kb)/1024.0), true
		}
		return "", false
	})
	sb.WriteString("\n")

	sb.WriteString("CPU:\n")
	w.writeUsageLines(sb, result, func(s model.Sample) (string, bool) {
		if pct, ok := s.CPUPercent.Value(); ok {
			return fmt.Sprintf("%d%%", pct), true
		}
		return "", false
	})
	sb.WriteString("\n")
}

// writeUsageLines writes one indented line per present measurement.
func (w *TextWriter) writeUsageLines(sb *strings.Builder, result *model.Result, value func(model.Sample) (string, bool)) {
	found := false
	for _, tool := range result.Tools() {
		for _, scenario := range result.Scenarios() {
			v, ok := value(result.Sample(tool.Key, scenario.Key))
			if !ok {
				continue
			}
			sb.WriteString(fmt.Sprintf("  %-40s %10s\n",
				fmt.Sprintf("%s / %s:", tool.Label, scenario.Label), v))
			found = true
		}
	}
	if !found {
		sb.WriteString("  No measurements\n")
	}
}

// writeSpeedAnalysis writes the derived speed-ratio section.
func (w *TextWriter) writeSpeedAnalysis(sb *strings.Builder, result *model.Result) {
	sb.WriteString(strings.Repeat("-", reportWidth))
	sb.WriteString("\n")
	sb.WriteString("RELATIVE SPEED\n")
	sb.WriteString(strings.Repeat("-", reportWidth))
	sb.WriteString("\n\n")

	ratios := speedRatios(result)
	if len(ratios) == 0 {
		sb.WriteString("  No comparable time measurements against the baseline tool\n\n")
		return
	}

	for _, r := range ratios {
		sb.WriteString(fmt.Sprintf("  * %s\n", r.String()))
	}
	sb.WriteString("\n")
}

// writeFooter writes the report footer.
func (w *TextWriter) writeFooter(sb *strings.Builder) {
	sb.WriteString(strings.Repeat("=", reportWidth))
	sb.WriteString("\n")
	sb.WriteString("Report generated by scanbench\n")
	sb.WriteString("https://github.com/nao1215/scanbench\n")
	sb.WriteString(strings.Repeat("=", reportWidth))
	sb.WriteString("\n")
}

// textOrPlaceholder substitutes the placeholder for empty metadata strings.
func textOrPlaceholder(s string) string {
	if s == "" {
		return textPlaceholder
	}
	return s
}
