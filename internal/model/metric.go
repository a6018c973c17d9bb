package model

// OptionalFloat is a float64 value that may be absent.
//
// Design decision: We use an explicit optional type instead of a sentinel
// value (e.g. 0 or -1) because a missing measurement and a measured zero are
// different facts. A report cell for a missing value must render a placeholder,
// never "0". The shape follows the database/sql Null* types.
type OptionalFloat struct {
	value float64
	valid bool
}

// SomeFloat returns an OptionalFloat holding v.
func SomeFloat(v float64) OptionalFloat {
	return OptionalFloat{value: v, valid: true}
}

// Value returns the held value and whether it is present.
func (o OptionalFloat) Value() (float64, bool) {
	return o.value, o.valid
}

// Valid reports whether a value is present.
func (o OptionalFloat) Valid() bool {
	return o.valid
}

// Or returns the held value, or def when absent.
func (o OptionalFloat) Or(def float64) float64 {
	if o.valid {
		return o.value
	}
	return def
}

// OptionalInt is an int64 value that may be absent.
// It is used for memory (kbytes), CPU percentage, and open-port counts.
type OptionalInt struct {
	value int64
	valid bool
}

// SomeInt returns an OptionalInt holding v.
func SomeInt(v int64) OptionalInt {
	return OptionalInt{value: v, valid: true}
}

// Value returns the held value and whether it is present.
func (o OptionalInt) Value() (int64, bool) {
	return o.value, o.valid
}

// Valid reports whether a value is present.
func (o OptionalInt) Valid() bool {
	return o.valid
}

// Or returns the held value, or def when absent.
func (o OptionalInt) Or(def int64) int64 {
	if o.valid {
		return o.value
	}
	return def
}

// Sample holds the measurements extracted for one (tool, scenario) pair.
// A Sample with every field absent is valid: it represents a test case that
// was configured but produced no artifact, and renders as placeholders.
//
// CPUPercent may exceed 100 for multi-core processes. The stored value is
// never clamped; clipping to a display axis is a chart-rendering decision.
type Sample struct {
	// ElapsedSeconds is the wall-clock duration of the tool run.
	ElapsedSeconds OptionalFloat

	// PeakMemoryKB is the maximum resident set size in kbytes.
	PeakMemoryKB OptionalInt

	// CPUPercent is the CPU share the run received.
	CPUPercent OptionalInt

	// OpenPorts is the number of open ports the tool reported.
	OpenPorts OptionalInt
}

// IsEmpty reports whether no field of the sample is present.
func (s Sample) IsEmpty() bool {
	return !s.ElapsedSeconds.Valid() &&
		!s.PeakMemoryKB.Valid() &&
		!s.CPUPercent.Valid() &&
		!s.OpenPorts.Valid()
}
