// Package aggregate builds the complete result set for one report run.
//
// The aggregator parses every configured (tool, scenario, artifact) triple
// independently, merges in the summary manifest where present, and produces
// the read-only model.Result the table and chart renderers consume. Failures
// are isolated per triple: a missing or malformed artifact yields an empty
// sample for that cell, never an aborted aggregation.
package aggregate
