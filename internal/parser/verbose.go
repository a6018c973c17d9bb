package parser

import (
	"bufio"
	"strconv"
	"strings"

	"github.com/nao1215/scanbench/internal/model"
)

// Labels emitted by the wall-clock profiling utility. Matching is by fixed
// label text anywhere on the line; the value is the token after the final
// ": " separator, so the parenthesized unit hints in the labels never
// interfere with extraction.
const (
	verboseElapsedLabel = "Elapsed (wall clock) time"
	verboseMemoryLabel  = "Maximum resident set size (kbytes)"
	verboseCPULabel     = "Percent of CPU this job got"
)

// VerboseParser extracts metrics from the verbose multi-line output of the
// wall-clock profiling utility (GNU time -v).
type VerboseParser struct{}

// Parse scans the artifact line by line and extracts elapsed time, peak
// memory, and CPU percentage from their labeled lines.
func (p *VerboseParser) Parse(text string) model.Sample {
	var sample model.Sample

	scanner := bufio.NewScanner(strings.NewReader(text))
	for scanner.Scan() {
		line := scanner.Text()
		switch {
		case strings.Contains(line, verboseElapsedLabel):
			if v, err := ParseDuration(lineValue(line)); err == nil {
				sample.ElapsedSeconds = model.SomeFloat(v)
			}
		case strings.Contains(line, verboseMemoryLabel):
			if v, err := strconv.ParseInt(lineValue(line), 10, 64); err == nil && v >= 0 {
				sample.PeakMemoryKB = model.SomeInt(v)
			}
		case strings.Contains(line, verboseCPULabel):
			token := strings.TrimSuffix(lineValue(line), "%")
			if v, err := strconv.ParseInt(token, 10, 64); err == nil && v >= 0 {
				sample.CPUPercent = model.SomeInt(v)
			}
		}
	}
	return sample
}

// lineValue returns the value part of a "Label: value" line.
// The split is on the last ": " so that values containing bare colons
// (duration tokens like "0:01.23") survive intact.
func lineValue(line string) string {
	idx := strings.LastIndex(line, ": ")
	if idx < 0 {
		return ""
	}
	return strings.TrimSpace(line[idx+2:])
}
