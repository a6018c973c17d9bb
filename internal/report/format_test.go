package report

import (
	"strings"
	"testing"

	"github.com/nao1215/scanbench/internal/model"
)

// TestFormatHelpers verifies cell rendering with present, zero, and absent
// values.
func TestFormatHelpers(t *testing.T) {
	t.Parallel()

	t.Run("formatSeconds", func(t *testing.T) {
		t.Parallel()

		if got := formatSeconds(model.SomeFloat(1.479), "N/A"); got != "1.48" {
			t.Errorf("expected '1.48', got %q", got)
		}
		if got := formatSeconds(model.SomeFloat(0), "N/A"); got != "0.00" {
			t.Errorf("expected measured zero to render '0.00', got %q", got)
		}
		if got := formatSeconds(model.OptionalFloat{}, "N/A"); got != "N/A" {
			t.Errorf("expected placeholder for absent value, got %q", got)
		}
	})

	t.Run("formatMillis", func(t *testing.T) {
		t.Parallel()

		if got := formatMillis(model.SomeFloat(1.4796), "N/A"); got != "1480" {
			t.Errorf("expected '1480', got %q", got)
		}
		if got := formatMillis(model.OptionalFloat{}, "-"); got != "-" {
			t.Errorf("expected placeholder for absent value, got %q", got)
		}
	})

	t.Run("formatMemoryMB", func(t *testing.T) {
		t.Parallel()

		if got := formatMemoryMB(model.SomeInt(15680), "N/A"); got != "15.3" {
			t.Errorf("expected '15.3', got %q", got)
		}
		if got := formatMemoryMB(model.OptionalInt{}, "N/A"); got != "N/A" {
			t.Errorf("expected placeholder for absent value, got %q", got)
		}
	})

	t.Run("formatCount", func(t *testing.T) {
		t.Parallel()

		if got := formatCount(model.SomeInt(0), "N/A"); got != "0" {
			t.Errorf("expected measured zero to render '0', got %q", got)
		}
		if got := formatCount(model.OptionalInt{}, "N/A"); got != "N/A" {
			t.Errorf("expected placeholder for absent value, got %q", got)
		}
	})
}

// reportFixture builds a two-tool, two-scenario result with a mix of full,
// partial, and empty cells.
func reportFixture() *model.Result {
	tools := []model.Tool{
		{Key: "pentool", Label: "Pentool"},
		{Key: "nmap", Label: "Nmap"},
	}
	scenarios := []model.Scenario{
		{Key: "common_ports", Label: "Common ports (15)"},
		{Key: "localhost", Label: "Localhost (1-1000)"},
	}
	samples := map[model.PairKey]model.Sample{
		{Tool: "pentool", Scenario: "common_ports"}: {
			ElapsedSeconds: model.SomeFloat(0.95),
			PeakMemoryKB:   model.SomeInt(8192),
			CPUPercent:     model.SomeInt(75),
			OpenPorts:      model.SomeInt(3),
		},
		{Tool: "nmap", Scenario: "common_ports"}: {
			ElapsedSeconds: model.SomeFloat(1.48),
			PeakMemoryKB:   model.SomeInt(15680),
			CPUPercent:     model.SomeInt(42),
			OpenPorts:      model.SomeInt(3),
		},
		{Tool: "pentool", Scenario: "localhost"}: {
			ElapsedSeconds: model.SomeFloat(2.5),
		},
		// nmap/localhost intentionally has no sample at all.
	}

	r := model.NewResult(tools, scenarios, samples)
	r.Baseline = "nmap"
	r.Timestamp = "2025-01-15T10:30:00Z"
	r.Target = "192.168.1.1"
	return r
}

// TestSpeedRatios tests ratio derivation against the baseline tool.
func TestSpeedRatios(t *testing.T) {
	t.Parallel()

	t.Run("ratio computed only when both operands are present", func(t *testing.T) {
		t.Parallel()

		ratios := speedRatios(reportFixture())
		if len(ratios) != 1 {
			t.Fatalf("expected 1 ratio, got %d", len(ratios))
		}

		r := ratios[0]
		if r.tool.Key != "pentool" || r.scenario.Key != "common_ports" {
			t.Errorf("unexpected ratio pair: %s/%s", r.tool.Key, r.scenario.Key)
		}
		want := 0.95 / 1.48
		if diff := r.factor - want; diff > 1e-9 || diff < -1e-9 {
			t.Errorf("expected factor %v, got %v", want, r.factor)
		}
	})

	t.Run("faster tool renders as faster", func(t *testing.T) {
		t.Parallel()

		ratios := speedRatios(reportFixture())
		line := ratios[0].String()
		if !strings.Contains(line, "faster than Nmap") {
			t.Errorf("expected 'faster than Nmap' in %q", line)
		}
	})

	t.Run("slower tool renders as slower", func(t *testing.T) {
		t.Parallel()

		r := ratio{
			tool:     model.Tool{Label: "Masscan"},
			baseline: model.Tool{Label: "Nmap"},
			scenario: model.Scenario{Label: "Localhost"},
			factor:   2.5,
		}
		if got := r.String(); !strings.Contains(got, "2.5x slower than Nmap") {
			t.Errorf("expected '2.5x slower than Nmap' in %q", got)
		}
	})

	t.Run("zero baseline time omits the scenario", func(t *testing.T) {
		t.Parallel()

		samples := map[model.PairKey]model.Sample{
			{Tool: "nmap", Scenario: "localhost"}:    {ElapsedSeconds: model.SomeFloat(0)},
			{Tool: "pentool", Scenario: "localhost"}: {ElapsedSeconds: model.SomeFloat(1.0)},
		}
		r := model.NewResult(
			[]model.Tool{{Key: "pentool"}, {Key: "nmap"}},
			[]model.Scenario{{Key: "localhost"}},
			samples,
		)
		r.Baseline = "nmap"

		if ratios := speedRatios(r); len(ratios) != 0 {
			t.Errorf("expected no ratios for zero baseline time, got %d", len(ratios))
		}
	})

	t.Run("zero tool time omits the pair", func(t *testing.T) {
		t.Parallel()

		// A manifest can legitimately report time_ms 0, so a measured zero
		// must be skipped rather than divided into the baseline.
		samples := map[model.PairKey]model.Sample{
			{Tool: "nmap", Scenario: "localhost"}:    {ElapsedSeconds: model.SomeFloat(1.0)},
			{Tool: "pentool", Scenario: "localhost"}: {ElapsedSeconds: model.SomeFloat(0)},
		}
		r := model.NewResult(
			[]model.Tool{{Key: "pentool", Label: "Pentool"}, {Key: "nmap", Label: "Nmap"}},
			[]model.Scenario{{Key: "localhost", Label: "Localhost"}},
			samples,
		)
		r.Baseline = "nmap"

		ratios := speedRatios(r)
		for _, ratio := range ratios {
			line := ratio.String()
			if strings.Contains(line, "Inf") || strings.Contains(line, "NaN") {
				t.Errorf("ratio line must never render infinity: %q", line)
			}
		}
		if len(ratios) != 0 {
			t.Errorf("expected no ratios for zero tool time, got %d", len(ratios))
		}
	})

	t.Run("missing baseline tool yields no ratios", func(t *testing.T) {
		t.Parallel()

		r := reportFixture()
		r.Baseline = "zmap"
		if ratios := speedRatios(r); ratios != nil {
			t.Errorf("expected nil ratios for unknown baseline, got %d", len(ratios))
		}
	})
}
