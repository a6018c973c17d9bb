package parser

import (
	"fmt"

	"github.com/nao1215/scanbench/internal/model"
)

// Format identifies the layout of a profiling artifact.
type Format string

const (
	// FormatVerbose is the multi-line output of the wall-clock profiling
	// utility (GNU time -v).
	FormatVerbose Format = "verbose"

	// FormatCompact is the harness digest format: one "Key: value" line per
	// metric (Time, Memory, CPU).
	FormatCompact Format = "compact"
)

// Valid reports whether f is a known artifact format.
func (f Format) Valid() bool {
	return f == FormatVerbose || f == FormatCompact
}

// Parser extracts a metric sample from the raw text of one artifact.
// Fields the text does not expose are left absent in the returned sample;
// parsing never fails as a whole.
type Parser interface {
	// Parse extracts every metric the artifact text exposes.
	Parse(text string) model.Sample
}

// ForFormat returns the Parser for the given artifact format.
func ForFormat(f Format) (Parser, error) {
	switch f {
	case FormatVerbose:
		return &VerboseParser{}, nil
	case FormatCompact:
		return &CompactParser{}, nil
	default:
		return nil, fmt.Errorf("unknown artifact format: %q", f)
	}
}
