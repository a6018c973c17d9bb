package parser

import (
	"encoding/json"
	"fmt"
	"os"
)

// Manifest is the JSON summary artifact written by the benchmark harness.
// It carries pre-aggregated timing and open-port counts per test case, keyed
// by "<tool>_<scenario>". Fields the manifest reports take precedence, field
// by field, over values re-derived from raw profiling artifacts.
type Manifest struct {
	// Timestamp is when the benchmark run was captured.
	Timestamp string `json:"timestamp"`

	// Target is the scanned host.
	Target string `json:"target"`

	// Tests maps test-case keys to their summarized measurements.
	Tests map[string]ManifestEntry `json:"tests"`
}

// ManifestEntry is one test case's summary in the manifest.
//
// Design decision: Pointer fields distinguish "the manifest did not report
// this" from "the manifest reported zero". Only reported fields override the
// raw-artifact values during aggregation.
type ManifestEntry struct {
	// TimeMS is the run duration in milliseconds.
	TimeMS *int64 `json:"time_ms,omitempty"`

	// OpenPorts is the number of open ports found.
	OpenPorts *int64 `json:"open_ports,omitempty"`
}

// Entry returns the manifest entry for the given test-case key.
func (m *Manifest) Entry(key string) (ManifestEntry, bool) {
	entry, ok := m.Tests[key]
	return entry, ok
}

// LoadManifest reads and decodes the manifest file at path.
// A missing file is returned as-is (os.IsNotExist) so the caller can enter
// degraded mode rather than abort.
func LoadManifest(path string) (*Manifest, error) {
	data, err := os.ReadFile(path) //nolint:gosec // User-provided manifest path is intentional
	if err != nil {
		return nil, err
	}

	var m Manifest
	if err := json.Unmarshal(data, &m); err != nil {
		return nil, fmt.Errorf("failed to decode manifest %s: %w", path, err)
	}
	if m.Tests == nil {
		m.Tests = make(map[string]ManifestEntry)
	}
	return &m, nil
}
