// Package pipeline orchestrates report generation.
//
// The Generator runs the aggregation stage first (the only stage that can
// fail the whole run, when no input exists at all), then executes the render
// steps through a best-effort pipeline: each step persists one report
// artifact under its fixed file name, and a failing step never prevents the
// remaining artifacts from being written. Step failures are collected and
// joined into the final status so the caller can map them to an exit code.
//
// Design decision: We use a pipeline of named steps instead of direct
// function calls because:
// 1. It allows easy addition/removal of report artifacts
// 2. It provides consistent error handling and logging across steps
// 3. It supports cancellation via context
package pipeline
