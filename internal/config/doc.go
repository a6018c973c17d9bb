// Package config holds all configuration for report generation.
//
// Configuration is resolved in three layers: built-in defaults that mirror
// the benchmark harness conventions, an optional .scanbench YAML file, and
// CLI flags. The resulting Config is passed through the application via
// dependency injection; no package-level mutable state survives across
// report-generation invocations.
package config
