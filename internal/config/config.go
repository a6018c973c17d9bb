package config

import (
	"fmt"
	"path/filepath"

	"github.com/adrg/xdg"
	"github.com/nao1215/scanbench/internal/model"
	"github.com/nao1215/scanbench/internal/parser"
)

// Default configuration values.
// These mirror the layout the benchmark harness writes its artifacts into,
// so running scanbench next to a fresh benchmark run needs no configuration.
const (
	// AppName is the application name used for XDG directory paths.
	AppName = "scanbench"

	// DefaultResultsDir is where the benchmark harness drops its artifacts.
	DefaultResultsDir = "benchmark_results"

	// DefaultManifestFile is the harness summary manifest inside the results
	// directory. Its per-field values take precedence over raw artifacts.
	DefaultManifestFile = "summary.json"

	// DefaultBaseline is the tool used as the denominator for ratio lines.
	// Nmap is the reference point the research compares against.
	DefaultBaseline = "nmap"

	// DefaultParallelism bounds concurrent artifact parsing. Artifacts are
	// small text files, so a modest limit keeps file-descriptor usage low
	// without serializing the whole aggregation.
	DefaultParallelism = 4
)

// Output artifact file names, relative to Config.OutputDir.
// These names are fixed so that the research document can reference them.
const (
	// MarkdownTableFile is the Markdown comparison table.
	MarkdownTableFile = "comparison_table.md"

	// TextReportFile is the fixed-width plain-text report.
	TextReportFile = "detailed_research_report.txt"

	// TimeChartFile is the execution-time grouped bar chart.
	TimeChartFile = "time_comparison.png"

	// MemoryChartFile is the memory-usage grouped bar chart.
	MemoryChartFile = "memory_comparison.png"

	// CPUChartFile is the CPU-usage grouped bar chart.
	CPUChartFile = "cpu_comparison.png"

	// ArchitectureDiagramFile is the fixed system-topology diagram.
	ArchitectureDiagramFile = "architecture_diagram.png"
)

// Target is one (tool, scenario, artifact) triple the aggregator parses.
type Target struct {
	// Tool is the tool key this artifact was captured for.
	Tool string

	// Scenario is the scenario key this artifact was captured under.
	Scenario string

	// Artifact is the artifact file path relative to ResultsDir.
	Artifact string

	// Format selects the parser strategy for the artifact.
	Format parser.Format

	// ManifestKey is the test-case key in the summary manifest.
	ManifestKey string
}

// Config holds all options for one report generation.
//
// Design decision: We use a single flat struct instead of nested sub-configs.
// The option count is manageable, and keeping everything in one value avoids
// package-level state for the output paths.
type Config struct {
	// ResultsDir is the directory containing the captured artifacts.
	ResultsDir string

	// OutputDir is the directory report artifacts are written into.
	// When empty, XDGOutputDir() is used.
	OutputDir string

	// ManifestFile is the manifest file name inside ResultsDir.
	ManifestFile string

	// ConfigFilePath is an explicit config file path. If empty, .scanbench
	// is searched in the current directory and then the home directory.
	ConfigFilePath string

	// Verbose enables slog.LevelDebug output.
	Verbose bool

	// EchoText additionally prints the plain-text report to stdout.
	EchoText bool

	// Parallelism is the maximum number of artifacts parsed concurrently.
	Parallelism int

	// Baseline is the tool key used as the ratio denominator.
	Baseline string

	// Tools is the fixed tool ordering for tables and charts.
	Tools []model.Tool

	// Scenarios is the fixed scenario ordering for tables and charts.
	Scenarios []model.Scenario

	// Formats maps tool keys to their artifact format.
	Formats map[string]parser.Format

	// Targets is the full list of (tool, scenario, artifact) triples.
	Targets []Target
}

// NewConfig creates a Config with the default tool set, scenario set, and
// artifact layout of the benchmark harness.
func NewConfig() *Config {
	cfg := &Config{
		ResultsDir:   DefaultResultsDir,
		ManifestFile: DefaultManifestFile,
		Parallelism:  DefaultParallelism,
		Baseline:     DefaultBaseline,
		Tools:        DefaultTools(),
		Scenarios:    DefaultScenarios(),
		Formats:      DefaultFormats(),
	}
	cfg.Targets = GenerateTargets(cfg.Tools, cfg.Scenarios, cfg.Formats)
	return cfg
}

// DefaultTools returns the measured tools in display order.
func DefaultTools() []model.Tool {
	return []model.Tool{
		{Key: "pentool", Label: "Pentool"},
		{Key: "nmap", Label: "Nmap"},
		{Key: "masscan", Label: "Masscan"},
	}
}

// DefaultScenarios returns the test scenarios in display order.
func DefaultScenarios() []model.Scenario {
	return []model.Scenario{
		{Key: "common_ports", Label: "Common ports (15)"},
		{Key: "port_range", Label: "Port range (1-1000)"},
		{Key: "localhost", Label: "Localhost (1-1000)"},
		{Key: "service_detection", Label: "Service detection"},
	}
}

// DefaultFormats returns the artifact format per default tool.
// Nmap and Masscan runs are wrapped by the verbose profiling utility;
// pentool's own harness writes the compact digest.
func DefaultFormats() map[string]parser.Format {
	return map[string]parser.Format{
		"pentool": parser.FormatCompact,
		"nmap":    parser.FormatVerbose,
		"masscan": parser.FormatVerbose,
	}
}

// GenerateTargets builds the (tool, scenario, artifact) triples following the
// harness naming convention "<tool>_<scenario>_metrics.txt" with manifest key
// "<tool>_<scenario>". Tools without a configured format default to verbose.
func GenerateTargets(tools []model.Tool, scenarios []model.Scenario, formats map[string]parser.Format) []Target {
	targets := make([]Target, 0, len(tools)*len(scenarios))
	for _, tool := range tools {
		format, ok := formats[tool.Key]
		if !ok {
			format = parser.FormatVerbose
		}
		for _, scenario := range scenarios {
			targets = append(targets, Target{
				Tool:        tool.Key,
				Scenario:    scenario.Key,
				Artifact:    fmt.Sprintf("%s_%s_metrics.txt", tool.Key, scenario.Key),
				Format:      format,
				ManifestKey: fmt.Sprintf("%s_%s", tool.Key, scenario.Key),
			})
		}
	}
	return targets
}

// ManifestPath returns the full path of the summary manifest.
func (c *Config) ManifestPath() string {
	return filepath.Join(c.ResultsDir, c.ManifestFile)
}

// ArtifactPath returns the full path of a target's artifact file.
func (c *Config) ArtifactPath(t Target) string {
	return filepath.Join(c.ResultsDir, t.Artifact)
}

// XDGOutputDir returns the default report output directory following the
// XDG Base Directory Specification.
// On Linux: ~/.local/share/scanbench/reports
func XDGOutputDir() string {
	return filepath.Join(xdg.DataHome, AppName, "reports")
}

// Validate checks if the configuration is valid.
func (c *Config) Validate() error {
	if c.ResultsDir == "" {
		return ErrNoResultsDir
	}
	if c.OutputDir == "" {
		return ErrNoOutputDir
	}
	if len(c.Tools) == 0 {
		return ErrNoTools
	}
	if len(c.Scenarios) == 0 {
		return ErrNoScenarios
	}
	if len(c.Targets) == 0 {
		return ErrNoTargets
	}
	if c.Parallelism <= 0 {
		return ErrInvalidParallelism
	}
	if !c.hasTool(c.Baseline) {
		return fmt.Errorf("%w: %q", ErrUnknownBaseline, c.Baseline)
	}
	for _, t := range c.Targets {
		if !t.Format.Valid() {
			return fmt.Errorf("%w: %q (target %s/%s)", ErrInvalidFormat, t.Format, t.Tool, t.Scenario)
		}
		if !c.hasTool(t.Tool) {
			return fmt.Errorf("%w: target references tool %q", ErrUnknownTarget, t.Tool)
		}
		if !c.hasScenario(t.Scenario) {
			return fmt.Errorf("%w: target references scenario %q", ErrUnknownTarget, t.Scenario)
		}
	}
	return nil
}

// hasTool reports whether the tool key is configured.
func (c *Config) hasTool(key string) bool {
	for _, t := range c.Tools {
		if t.Key == key {
			return true
		}
	}
	return false
}

// hasScenario reports whether the scenario key is configured.
func (c *Config) hasScenario(key string) bool {
	for _, s := range c.Scenarios {
		if s.Key == key {
			return true
		}
	}
	return false
}
