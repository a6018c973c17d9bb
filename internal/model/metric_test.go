package model

import "testing"

// TestOptionalFloat verifies the absent/present distinction for float values.
func TestOptionalFloat(t *testing.T) {
	t.Parallel()

	t.Run("zero value is absent", func(t *testing.T) {
		t.Parallel()

		var o OptionalFloat
		if o.Valid() {
			t.Error("expected zero OptionalFloat to be absent")
		}
		if _, ok := o.Value(); ok {
			t.Error("expected Value to report absence")
		}
		if got := o.Or(7.5); got != 7.5 {
			t.Errorf("expected Or default 7.5, got %v", got)
		}
	})

	t.Run("SomeFloat is present", func(t *testing.T) {
		t.Parallel()

		o := SomeFloat(1.48)
		if !o.Valid() {
			t.Error("expected SomeFloat to be present")
		}
		if v, ok := o.Value(); !ok || v != 1.48 {
			t.Errorf("expected value 1.48, got %v (present=%v)", v, ok)
		}
		if got := o.Or(9.9); got != 1.48 {
			t.Errorf("expected Or to return held value 1.48, got %v", got)
		}
	})

	t.Run("measured zero is distinct from absent", func(t *testing.T) {
		t.Parallel()

		o := SomeFloat(0)
		if !o.Valid() {
			t.Error("expected measured zero to be present")
		}
	})
}

// TestOptionalInt verifies the absent/present distinction for integer values.
func TestOptionalInt(t *testing.T) {
	t.Parallel()

	t.Run("zero value is absent", func(t *testing.T) {
		t.Parallel()

		var o OptionalInt
		if o.Valid() {
			t.Error("expected zero OptionalInt to be absent")
		}
		if got := o.Or(3); got != 3 {
			t.Errorf("expected Or default 3, got %d", got)
		}
	})

	t.Run("SomeInt is present", func(t *testing.T) {
		t.Parallel()

		o := SomeInt(15680)
		if v, ok := o.Value(); !ok || v != 15680 {
			t.Errorf("expected value 15680, got %d (present=%v)", v, ok)
		}
	})

	t.Run("measured zero is distinct from absent", func(t *testing.T) {
		t.Parallel()

		o := SomeInt(0)
		if !o.Valid() {
			t.Error("expected measured zero to be present")
		}
	})
}

// TestSampleIsEmpty verifies emptiness detection across field combinations.
func TestSampleIsEmpty(t *testing.T) {
	t.Parallel()

	t.Run("zero sample is empty", func(t *testing.T) {
		t.Parallel()

		var s Sample
		if !s.IsEmpty() {
			t.Error("expected zero Sample to be empty")
		}
	})

	t.Run("any present field makes it non-empty", func(t *testing.T) {
		t.Parallel()

		tests := []struct {
			name   string
			sample Sample
		}{
			{name: "elapsed", sample: Sample{ElapsedSeconds: SomeFloat(1.0)}},
			{name: "memory", sample: Sample{PeakMemoryKB: SomeInt(64)}},
			{name: "cpu", sample: Sample{CPUPercent: SomeInt(50)}},
			{name: "open ports", sample: Sample{OpenPorts: SomeInt(0)}},
		}

		for _, tt := range tests {
			tt := tt
			t.Run(tt.name, func(t *testing.T) {
				t.Parallel()
				if tt.sample.IsEmpty() {
					t.Error("expected sample with a present field to be non-empty")
				}
			})
		}
	})
}
