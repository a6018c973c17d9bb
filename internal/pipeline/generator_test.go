package pipeline

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/nao1215/scanbench/internal/aggregate"
	"github.com/nao1215/scanbench/internal/config"
)

// generatorLogger silences the degraded-mode warnings the tests trigger
// deliberately.
func generatorLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// TestGeneratorRun tests the end-to-end report generation.
func TestGeneratorRun(t *testing.T) {
	t.Parallel()

	t.Run("writes all six outputs", func(t *testing.T) {
		t.Parallel()

		cfg := stepConfig(t)
		manifest := `{
  "timestamp": "2025-01-15T10:30:00Z",
  "target": "192.168.1.1",
  "tests": {"nmap_localhost": {"time_ms": 1200, "open_ports": 2}}
}`
		if err := os.WriteFile(cfg.ManifestPath(), []byte(manifest), 0600); err != nil {
			t.Fatalf("failed to write manifest fixture: %v", err)
		}
		artifact := "\tElapsed (wall clock) time (h:mm:ss or m:ss): 0:01.20\n" +
			"\tMaximum resident set size (kbytes): 15680\n"
		if err := os.WriteFile(filepath.Join(cfg.ResultsDir, "nmap_localhost_metrics.txt"), []byte(artifact), 0600); err != nil {
			t.Fatalf("failed to write artifact fixture: %v", err)
		}

		g := NewGenerator(cfg, WithGeneratorLogger(generatorLogger()))
		if err := g.Run(context.Background()); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		for _, file := range []string{
			config.MarkdownTableFile,
			config.TextReportFile,
			config.TimeChartFile,
			config.MemoryChartFile,
			config.CPUChartFile,
			config.ArchitectureDiagramFile,
		} {
			if _, err := os.Stat(filepath.Join(cfg.OutputDir, file)); err != nil {
				t.Errorf("expected output file %s: %v", file, err)
			}
		}
	})

	t.Run("creates the output directory", func(t *testing.T) {
		t.Parallel()

		cfg := stepConfig(t)
		cfg.OutputDir = filepath.Join(cfg.OutputDir, "nested", "reports")
		if err := os.WriteFile(cfg.ManifestPath(), []byte(`{"tests": {}}`), 0600); err != nil {
			t.Fatalf("failed to write manifest fixture: %v", err)
		}

		g := NewGenerator(cfg, WithGeneratorLogger(generatorLogger()))
		if err := g.Run(context.Background()); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if _, err := os.Stat(cfg.OutputDir); err != nil {
			t.Errorf("expected output directory to be created: %v", err)
		}
	})

	t.Run("no input at all is fatal", func(t *testing.T) {
		t.Parallel()

		cfg := stepConfig(t)
		cfg.OutputDir = filepath.Join(cfg.OutputDir, "reports")
		g := NewGenerator(cfg, WithGeneratorLogger(generatorLogger()))

		if err := g.Run(context.Background()); !errors.Is(err, aggregate.ErrNoInput) {
			t.Errorf("expected ErrNoInput, got %v", err)
		}

		// A failed run must not leave an empty output directory behind.
		if _, err := os.Stat(cfg.OutputDir); !os.IsNotExist(err) {
			t.Errorf("expected output directory to be absent, got %v", err)
		}
	})
}
