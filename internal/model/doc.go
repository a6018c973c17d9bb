// Package model defines the core data types for benchmark report generation.
//
// The central types are Sample (one measurement set for a tool/scenario pair)
// and Result (the complete, read-only collection of samples for one report
// run). Metric fields use explicit optional-value types so that "not measured"
// is never confused with "measured zero" anywhere downstream.
package model
