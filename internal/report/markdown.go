package report

import (
	"io"

	"github.com/nao1215/markdown"
	"github.com/nao1215/scanbench/internal/model"
)

// markdownPlaceholder is rendered for absent measurements in Markdown tables.
// A literal token keeps "not measured" distinguishable from a measured zero.
const markdownPlaceholder = "N/A"

// MarkdownWriter outputs the comparison report in Markdown format.
// This format is designed for inclusion in the research document.
//
// Design decision: We use the nao1215/markdown library for fluent markdown
// generation which provides:
// 1. Type-safe markdown generation
// 2. Support for tables, lists, and alerts
// 3. GitHub-flavored markdown output
type MarkdownWriter struct {
	baseWriter
}

// NewMarkdownWriter creates a MarkdownWriter that outputs to the given writer.
func NewMarkdownWriter(output io.Writer) *MarkdownWriter {
	return &MarkdownWriter{
		baseWriter: newBaseWriter(output),
	}
}

// Write outputs the full comparison report in Markdown format.
func (w *MarkdownWriter) Write(result *model.Result) (int, error) {
	md := markdown.NewMarkdown(w.output)

	w.writeHeader(md, result)
	w.writeComparisonTable(md, result)
	w.writeSpeedAnalysis(md, result)
	w.writeFooter(md)

	return len(md.String()), md.Build()
}

// writeHeader writes the report header with run information.
func (w *MarkdownWriter) writeHeader(md *markdown.Markdown, result *model.Result) {
	md.H1("Scanner Benchmark Report")
	md.PlainText("")

	md.Table(markdown.TableSet{
		Header: []string{"Property", "Value"},
		Rows: [][]string{
			{"Target", orPlaceholder(result.Target)},
			{"Captured", orPlaceholder(result.Timestamp)},
			{"Mode", w.modeText(result)},
		},
	})
	md.PlainText("")

	if result.Degraded {
		md.Warning(
			"The summary manifest was not found. " +
				"All values were re-derived from raw profiling artifacts; " +
				"timing and open-port counts may be incomplete.",
		)
		md.PlainText("")
	}
}

// modeText returns the aggregation-mode text for the header table.
func (w *MarkdownWriter) modeText(result *model.Result) string {
	if result.Degraded {
		return "⚠️ Degraded (raw artifacts only)"
	}
	return "✅ Complete"
}

// writeComparisonTable writes one row per configured (tool, scenario) pair.
func (w *MarkdownWriter) writeComparisonTable(md *markdown.Markdown, result *model.Result) {
	md.H2("Performance Comparison")
	md.PlainText("")

	rows := make([][]string, 0, result.PairCount())
	for _, tool := range result.Tools() {
		for _, scenario := range result.Scenarios() {
			sample := result.Sample(tool.Key, scenario.Key)
			rows = append(rows, []string{
				"**" + tool.Label + "**",
				scenario.Label,
				formatMillis(sample.ElapsedSeconds, markdownPlaceholder),
				formatSeconds(sample.ElapsedSeconds, markdownPlaceholder),
				formatCount(sample.OpenPorts, markdownPlaceholder),
				formatMemoryMB(sample.PeakMemoryKB, markdownPlaceholder),
				formatCount(sample.CPUPercent, markdownPlaceholder),
			})
		}
	}

	md.Table(markdown.TableSet{
		Header: []string{"Tool", "Scenario", "Time (ms)", "Time (s)", "Open Ports", "Memory (MB)", "CPU (%)"},
		Rows:   rows,
	})
	md.PlainText("")
}

// writeSpeedAnalysis writes the derived speed-ratio section.
// Pairs without comparable measurements are omitted entirely.
func (w *MarkdownWriter) writeSpeedAnalysis(md *markdown.Markdown, result *model.Result) {
	md.H2("Relative Speed")
	md.PlainText("")

	ratios := speedRatios(result)
	if len(ratios) == 0 {
		md.PlainText("No comparable time measurements against the baseline tool.")
		md.PlainText("")
		return
	}

	lines := make([]string, len(ratios))
	for i, r := range ratios {
		lines[i] = r.String()
	}
	md.BulletList(lines...)
	md.PlainText("")
}

// writeFooter writes the report footer.
func (w *MarkdownWriter) writeFooter(md *markdown.Markdown) {
	md.HorizontalRule()
	md.PlainText("")
	md.PlainTextf("*Report generated by [scanbench](https://github.com/nao1215/scanbench)*")
}

// orPlaceholder substitutes the placeholder for empty metadata strings.
func orPlaceholder(s string) string {
	if s == "" {
		return markdownPlaceholder
	}
	return s
}
