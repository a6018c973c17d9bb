// Package main provides the entry point for the scanbench CLI.
//
// scanbench turns raw network-scanner benchmark artifacts into comparison
// reports: a Markdown table, a plain-text report, grouped bar charts, and an
// architecture diagram.
//
// Usage:
//
//	scanbench report
//	scanbench report -r benchmark_results -o reports
//
// See --help for all available options.
package main

// main is the entry point for scanbench.
func main() {
	Execute()
}
