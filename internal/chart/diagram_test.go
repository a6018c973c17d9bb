package chart

import (
	"bytes"
	"testing"
)

// TestDiagramRendererRender tests architecture-diagram rendering.
func TestDiagramRendererRender(t *testing.T) {
	t.Parallel()

	t.Run("renders a PNG with default size", func(t *testing.T) {
		t.Parallel()

		buf, err := NewDiagramRenderer().Render()
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(buf) == 0 {
			t.Error("expected non-empty diagram")
		}
		if !bytes.HasPrefix(buf, pngMagic) {
			t.Error("expected PNG signature")
		}
	})

	t.Run("output is deterministic", func(t *testing.T) {
		t.Parallel()

		// The diagram depends only on fixed constants, so two renders must
		// produce identical bytes.
		a, err := NewDiagramRenderer().Render()
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		b, err := NewDiagramRenderer().Render()
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !bytes.Equal(a, b) {
			t.Error("expected identical output across renders")
		}
	})

	t.Run("custom size is honored", func(t *testing.T) {
		t.Parallel()

		buf, err := NewDiagramRenderer(WithDiagramSize(600, 450)).Render()
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !bytes.HasPrefix(buf, pngMagic) {
			t.Error("expected PNG signature")
		}
	})
}
