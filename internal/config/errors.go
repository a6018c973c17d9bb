package config

import "errors"

// Configuration validation errors.
//
// Design decision: We use package-level sentinel errors rather than creating
// new error instances in Validate(). This allows callers to use errors.Is()
// for programmatic error handling while still providing human-readable
// messages.
var (
	// ErrNoResultsDir is returned when no results directory is configured.
	ErrNoResultsDir = errors.New("no results directory: set --results or resultsDir in the config file")

	// ErrNoOutputDir is returned when no output directory is configured.
	ErrNoOutputDir = errors.New("no output directory: set --output or outputDir in the config file")

	// ErrNoTools is returned when the tool list is empty.
	ErrNoTools = errors.New("no tools configured: at least one tool is required")

	// ErrNoScenarios is returned when the scenario list is empty.
	ErrNoScenarios = errors.New("no scenarios configured: at least one scenario is required")

	// ErrNoTargets is returned when no (tool, scenario, artifact) triples exist.
	ErrNoTargets = errors.New("no targets configured: nothing to aggregate")

	// ErrInvalidParallelism is returned when the parallelism is not positive.
	ErrInvalidParallelism = errors.New("invalid parallelism: must be positive")

	// ErrUnknownBaseline is returned when the baseline tool is not in the
	// configured tool list.
	ErrUnknownBaseline = errors.New("unknown baseline tool")

	// ErrInvalidFormat is returned when a target carries an unknown artifact
	// format tag.
	ErrInvalidFormat = errors.New("invalid artifact format")

	// ErrUnknownTarget is returned when a target references a tool or
	// scenario that is not configured.
	ErrUnknownTarget = errors.New("unknown target reference")
)
