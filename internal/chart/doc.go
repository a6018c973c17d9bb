// Package chart renders the visual report artifacts as PNG images.
//
// The Synthesizer draws one grouped bar chart per metric kind (time, memory,
// CPU) with bar groups in the fixed scenario order and one bar per tool
// inside each group. Absent measurements are drawn as zero-height bars
// without value labels so that group alignment is preserved across tools.
//
// The DiagramRenderer draws the fixed system-architecture topology from
// hand-authored constants, independent of any measured data.
//
// Rendering returns encoded image bytes; persisting them is the caller's
// responsibility.
package chart
