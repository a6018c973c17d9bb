package model

import "slices"

// Tool identifies a measured scanning tool.
// The Key joins samples, manifest entries, and configuration; the Label is
// what reports display. Identity is established at configuration time and
// never mutated afterwards.
type Tool struct {
	// Key is the stable identifier, e.g. "nmap".
	Key string

	// Label is the human-readable name, e.g. "Nmap".
	Label string
}

// Scenario identifies a named test condition under which tools were measured.
type Scenario struct {
	// Key is the stable identifier, e.g. "common_ports".
	Key string

	// Label is the human-readable description, e.g. "Common ports (15)".
	Label string
}

// PairKey addresses one (tool, scenario) cell of a Result.
type PairKey struct {
	Tool     string
	Scenario string
}

// Result is the complete set of samples for one report-generation run.
//
// Design decision: The sample map and orderings are unexported and only
// reachable through value-returning accessors. The aggregator exclusively
// owns construction; table and chart renderers hold a read reference and may
// run in either order (or concurrently) because nothing here mutates after
// NewResult returns.
type Result struct {
	// Timestamp is when the benchmark run was captured, as reported by the
	// manifest. Empty in degraded mode.
	Timestamp string

	// Target is the scanned host, as reported by the manifest.
	Target string

	// Baseline is the tool key used as the denominator for ratio lines.
	Baseline string

	// Degraded indicates the manifest was absent and samples were built from
	// raw profiling artifacts alone.
	Degraded bool

	tools     []Tool
	scenarios []Scenario
	samples   map[PairKey]Sample
}

// NewResult builds a Result from fixed tool/scenario orderings and the
// aggregated samples. The inputs are copied; callers must not rely on
// mutating them afterwards.
func NewResult(tools []Tool, scenarios []Scenario, samples map[PairKey]Sample) *Result {
	copied := make(map[PairKey]Sample, len(samples))
	for k, v := range samples {
		copied[k] = v
	}
	return &Result{
		tools:     slices.Clone(tools),
		scenarios: slices.Clone(scenarios),
		samples:   copied,
	}
}

// Tools returns the configured tool ordering.
func (r *Result) Tools() []Tool {
	return slices.Clone(r.tools)
}

// Scenarios returns the configured scenario ordering.
func (r *Result) Scenarios() []Scenario {
	return slices.Clone(r.scenarios)
}

// Sample returns the sample for the given tool and scenario keys.
// Unknown pairs yield an empty Sample, which renders as placeholders.
func (r *Result) Sample(toolKey, scenarioKey string) Sample {
	return r.samples[PairKey{Tool: toolKey, Scenario: scenarioKey}]
}

// PairCount returns the number of configured (tool, scenario) pairs.
// Table renderers emit exactly one row per pair.
func (r *Result) PairCount() int {
	return len(r.tools) * len(r.scenarios)
}

// BaselineTool returns the tool configured as the ratio denominator.
func (r *Result) BaselineTool() (Tool, bool) {
	for _, t := range r.tools {
		if t.Key == r.Baseline {
			return t, true
		}
	}
	return Tool{}, false
}
