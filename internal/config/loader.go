package config

import (
	"errors"
	"os"
	"path/filepath"

	"github.com/nao1215/scanbench/internal/model"
	"github.com/nao1215/scanbench/internal/parser"
	"gopkg.in/yaml.v3"
)

// DefaultConfigFile is the default configuration file name.
const DefaultConfigFile = ".scanbench"

// ErrConfigNotFound is returned when the configuration file does not exist.
var ErrConfigNotFound = errors.New("configuration file not found")

// File represents the structure of the .scanbench configuration file.
// Every field is optional; unset fields keep their defaults.
type File struct {
	// ResultsDir overrides the artifact input directory.
	ResultsDir string `yaml:"resultsDir,omitempty"`

	// OutputDir overrides the report output directory.
	OutputDir string `yaml:"outputDir,omitempty"`

	// Manifest overrides the summary manifest file name.
	Manifest string `yaml:"manifest,omitempty"`

	// Baseline overrides the ratio denominator tool.
	Baseline string `yaml:"baseline,omitempty"`

	// Parallelism overrides the concurrent parse limit.
	Parallelism int `yaml:"parallelism,omitempty"`

	// Tools replaces the measured tool list.
	Tools []ToolConfig `yaml:"tools,omitempty"`

	// Scenarios replaces the scenario list.
	Scenarios []ScenarioConfig `yaml:"scenarios,omitempty"`

	// Targets replaces the generated (tool, scenario, artifact) triples.
	// When omitted, targets are derived from the tools and scenarios using
	// the harness naming convention.
	Targets []TargetConfig `yaml:"targets,omitempty"`
}

// ToolConfig declares one measured tool in the configuration file.
type ToolConfig struct {
	Key    string `yaml:"key"`
	Label  string `yaml:"label,omitempty"`
	Format string `yaml:"format,omitempty"`
}

// ScenarioConfig declares one test scenario in the configuration file.
type ScenarioConfig struct {
	Key   string `yaml:"key"`
	Label string `yaml:"label,omitempty"`
}

// TargetConfig declares one explicit artifact triple in the configuration file.
type TargetConfig struct {
	Tool        string `yaml:"tool"`
	Scenario    string `yaml:"scenario"`
	Artifact    string `yaml:"artifact"`
	Format      string `yaml:"format,omitempty"`
	ManifestKey string `yaml:"manifestKey,omitempty"`
}

// LoadConfigFile loads a configuration file from a YAML file.
// If the file does not exist, it returns ErrConfigNotFound. Callers should
// handle this based on whether the path was explicitly specified by the user.
func LoadConfigFile(path string) (*File, error) {
	data, err := os.ReadFile(path) //nolint:gosec // User-provided config path is intentional
	if err != nil {
		if os.IsNotExist(err) {
			return nil, ErrConfigNotFound
		}
		return nil, err
	}

	var cf File
	if err := yaml.Unmarshal(data, &cf); err != nil {
		return nil, err
	}
	return &cf, nil
}

// FindConfigFile searches for the configuration file in the following order:
// 1. If configPath is specified, use it directly
// 2. Look for .scanbench in the current directory
// 3. Look for .scanbench in the user's home directory
//
// Returns the path to the configuration file if found, or empty string.
func FindConfigFile(configPath string) string {
	if configPath != "" {
		if _, err := os.Stat(configPath); err == nil {
			return configPath
		}
		return ""
	}

	cwd, err := os.Getwd()
	if err == nil {
		cwdConfig := filepath.Join(cwd, DefaultConfigFile)
		if _, err := os.Stat(cwdConfig); err == nil {
			return cwdConfig
		}
	}

	home, err := os.UserHomeDir()
	if err == nil {
		homeConfig := filepath.Join(home, DefaultConfigFile)
		if _, err := os.Stat(homeConfig); err == nil {
			return homeConfig
		}
	}

	return ""
}

// ApplyTo merges the file's settings into cfg. Scalar fields override only
// when set; tool/scenario lists replace the defaults wholesale, and targets
// are regenerated from the harness naming convention unless the file lists
// them explicitly.
func (cf *File) ApplyTo(cfg *Config) {
	if cf.ResultsDir != "" {
		cfg.ResultsDir = cf.ResultsDir
	}
	if cf.OutputDir != "" {
		cfg.OutputDir = cf.OutputDir
	}
	if cf.Manifest != "" {
		cfg.ManifestFile = cf.Manifest
	}
	if cf.Baseline != "" {
		cfg.Baseline = cf.Baseline
	}
	if cf.Parallelism > 0 {
		cfg.Parallelism = cf.Parallelism
	}

	listsReplaced := false
	if len(cf.Tools) > 0 {
		cfg.Tools = make([]model.Tool, 0, len(cf.Tools))
		cfg.Formats = make(map[string]parser.Format, len(cf.Tools))
		for _, t := range cf.Tools {
			label := t.Label
			if label == "" {
				label = t.Key
			}
			cfg.Tools = append(cfg.Tools, model.Tool{Key: t.Key, Label: label})

			format := parser.Format(t.Format)
			if t.Format == "" {
				format = parser.FormatVerbose
			}
			cfg.Formats[t.Key] = format
		}
		listsReplaced = true
	}
	if len(cf.Scenarios) > 0 {
		cfg.Scenarios = make([]model.Scenario, 0, len(cf.Scenarios))
		for _, s := range cf.Scenarios {
			label := s.Label
			if label == "" {
				label = s.Key
			}
			cfg.Scenarios = append(cfg.Scenarios, model.Scenario{Key: s.Key, Label: label})
		}
		listsReplaced = true
	}

	switch {
	case len(cf.Targets) > 0:
		cfg.Targets = make([]Target, 0, len(cf.Targets))
		for _, t := range cf.Targets {
			target := Target{
				Tool:        t.Tool,
				Scenario:    t.Scenario,
				Artifact:    t.Artifact,
				Format:      parser.Format(t.Format),
				ManifestKey: t.ManifestKey,
			}
			if t.Format == "" {
				if format, ok := cfg.Formats[t.Tool]; ok {
					target.Format = format
				} else {
					target.Format = parser.FormatVerbose
				}
			}
			if t.ManifestKey == "" {
				target.ManifestKey = t.Tool + "_" + t.Scenario
			}
			cfg.Targets = append(cfg.Targets, target)
		}
	case listsReplaced:
		cfg.Targets = GenerateTargets(cfg.Tools, cfg.Scenarios, cfg.Formats)
	}
}
