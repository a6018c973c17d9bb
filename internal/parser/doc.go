// Package parser extracts typed metrics from profiling artifacts.
//
// Two artifact formats exist: the verbose multi-line output of a wall-clock
// profiling utility (GNU time -v), and a compact "Key: value" digest written
// by the benchmark harness. Each format has its own Parser implementation
// selected by a Format tag; there is no speculative parsing of both forms
// against every artifact.
//
// Extraction is local to the matching line: format drift anywhere else in an
// artifact never breaks it. A malformed numeric token on a matched line
// leaves that one field absent and does not abort the remaining fields.
package parser
