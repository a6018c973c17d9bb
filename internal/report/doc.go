// Package report renders the aggregated result set as comparison tables.
//
// Two formats are provided: GitHub Flavored Markdown for the research
// document, and a fixed-width plain-text report for terminal review. Both
// render one row per configured (tool, scenario) pair in the fixed ordering,
// with explicit placeholder tokens for absent measurements so that "not
// measured" is never displayed as zero.
//
// Writers are pure: they write to the io.Writer given at construction and
// never touch the filesystem themselves.
package report
