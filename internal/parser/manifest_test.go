package parser

import (
	"os"
	"path/filepath"
	"testing"
)

// TestLoadManifest tests manifest decoding and the missing-file behavior.
func TestLoadManifest(t *testing.T) {
	t.Parallel()

	t.Run("decodes a full manifest", func(t *testing.T) {
		t.Parallel()

		path := filepath.Join(t.TempDir(), "summary.json")
		content := `{
  "timestamp": "2025-01-15T10:30:00Z",
  "target": "192.168.1.1",
  "tests": {
    "nmap_common_ports": {"time_ms": 1480, "open_ports": 3},
    "pentool_common_ports": {"time_ms": 950}
  }
}`
		if err := os.WriteFile(path, []byte(content), 0600); err != nil {
			t.Fatalf("failed to write manifest fixture: %v", err)
		}

		m, err := LoadManifest(path)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		if m.Timestamp != "2025-01-15T10:30:00Z" {
			t.Errorf("expected timestamp '2025-01-15T10:30:00Z', got %q", m.Timestamp)
		}
		if m.Target != "192.168.1.1" {
			t.Errorf("expected target '192.168.1.1', got %q", m.Target)
		}

		entry, ok := m.Entry("nmap_common_ports")
		if !ok {
			t.Fatal("expected entry for nmap_common_ports")
		}
		if entry.TimeMS == nil || *entry.TimeMS != 1480 {
			t.Errorf("expected time_ms 1480, got %v", entry.TimeMS)
		}
		if entry.OpenPorts == nil || *entry.OpenPorts != 3 {
			t.Errorf("expected open_ports 3, got %v", entry.OpenPorts)
		}
	})

	t.Run("omitted fields stay nil", func(t *testing.T) {
		t.Parallel()

		path := filepath.Join(t.TempDir(), "summary.json")
		content := `{"tests": {"masscan_localhost": {"open_ports": 0}}}`
		if err := os.WriteFile(path, []byte(content), 0600); err != nil {
			t.Fatalf("failed to write manifest fixture: %v", err)
		}

		m, err := LoadManifest(path)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		entry, ok := m.Entry("masscan_localhost")
		if !ok {
			t.Fatal("expected entry for masscan_localhost")
		}
		if entry.TimeMS != nil {
			t.Errorf("expected time_ms to be nil, got %v", *entry.TimeMS)
		}
		if entry.OpenPorts == nil || *entry.OpenPorts != 0 {
			t.Errorf("expected open_ports 0 to be present, got %v", entry.OpenPorts)
		}
	})

	t.Run("missing file returns os.IsNotExist error", func(t *testing.T) {
		t.Parallel()

		_, err := LoadManifest(filepath.Join(t.TempDir(), "missing.json"))
		if !os.IsNotExist(err) {
			t.Errorf("expected os.IsNotExist error, got %v", err)
		}
	})

	t.Run("invalid JSON returns error", func(t *testing.T) {
		t.Parallel()

		path := filepath.Join(t.TempDir(), "summary.json")
		if err := os.WriteFile(path, []byte("{not json"), 0600); err != nil {
			t.Fatalf("failed to write manifest fixture: %v", err)
		}

		if _, err := LoadManifest(path); err == nil {
			t.Error("expected error for invalid JSON, got nil")
		}
	})

	t.Run("unknown entry key reports absence", func(t *testing.T) {
		t.Parallel()

		path := filepath.Join(t.TempDir(), "summary.json")
		if err := os.WriteFile(path, []byte(`{"tests": {}}`), 0600); err != nil {
			t.Fatalf("failed to write manifest fixture: %v", err)
		}

		m, err := LoadManifest(path)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if _, ok := m.Entry("nope"); ok {
			t.Error("expected no entry for unknown key")
		}
	})
}
