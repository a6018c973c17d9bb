package report

import (
	"fmt"
	"math"
	"strconv"

	"github.com/nao1215/scanbench/internal/model"
)

// formatSeconds renders an elapsed time in seconds with two decimals,
// or the placeholder when absent.
func formatSeconds(v model.OptionalFloat, placeholder string) string {
	seconds, ok := v.Value()
	if !ok {
		return placeholder
	}
	return fmt.Sprintf("%.2f", seconds)
}

// formatMillis renders an elapsed time as whole milliseconds,
// or the placeholder when absent.
func formatMillis(v model.OptionalFloat, placeholder string) string {
	seconds, ok := v.Value()
	if !ok {
		return placeholder
	}
	return strconv.FormatInt(int64(math.Round(seconds*1000)), 10)
}

// formatMemoryMB renders a kbytes measurement in megabytes with one decimal,
// or the placeholder when absent.
func formatMemoryMB(v model.OptionalInt, placeholder string) string {
	kb, ok := v.Value()
	if !ok {
		return placeholder
	}
	return fmt.Sprintf("%.1f", float64(kb)/1024.0)
}

// formatCount renders an integer measurement, or the placeholder when absent.
func formatCount(v model.OptionalInt, placeholder string) string {
	n, ok := v.Value()
	if !ok {
		return placeholder
	}
	return strconv.FormatInt(n, 10)
}

// ratio is one derived speed comparison against the baseline tool.
type ratio struct {
	tool     model.Tool
	baseline model.Tool
	scenario model.Scenario

	// factor is tool time divided by baseline time. Values above 1 mean the
	// tool is slower than the baseline.
	factor float64
}

// String renders the ratio as a report line.
func (r ratio) String() string {
	if r.factor >= 1 {
		return fmt.Sprintf("%s is %.1fx slower than %s (%s)",
			r.tool.Label, r.factor, r.baseline.Label, r.scenario.Label)
	}
	return fmt.Sprintf("%s is %.1fx faster than %s (%s)",
		r.tool.Label, 1/r.factor, r.baseline.Label, r.scenario.Label)
}

// speedRatios derives per-scenario speed comparisons against the baseline
// tool. A ratio is computed only when both operands are present and strictly
// positive; every other pair is omitted entirely, never rendered as infinity
// or a divide-by-zero artifact. A measured zero is a valid sample value but
// has no meaningful speed factor on either side of the division.
func speedRatios(result *model.Result) []ratio {
	baseline, ok := result.BaselineTool()
	if !ok {
		return nil
	}

	var ratios []ratio
	for _, scenario := range result.Scenarios() {
		base, ok := result.Sample(baseline.Key, scenario.Key).ElapsedSeconds.Value()
		if !ok || base <= 0 {
			continue
		}
		for _, tool := range result.Tools() {
			if tool.Key == baseline.Key {
				continue
			}
			elapsed, ok := result.Sample(tool.Key, scenario.Key).ElapsedSeconds.Value()
			if !ok || elapsed <= 0 {
				continue
			}
			ratios = append(ratios, ratio{
				tool:     tool,
				baseline: baseline,
				scenario: scenario,
				factor:   elapsed / base,
			})
		}
	}
	return ratios
}
