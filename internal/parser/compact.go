package parser

import (
	"bufio"
	"strconv"
	"strings"

	"github.com/nao1215/scanbench/internal/model"
)

// Keys of the harness digest format, each on its own line.
const (
	compactTimeKey   = "Time:"
	compactMemoryKey = "Memory:"
	compactCPUKey    = "CPU:"
)

// CompactParser extracts metrics from the harness digest format:
//
//	Time: 0:01.23
//	Memory: 15680 KB
//	CPU: 98%
type CompactParser struct{}

// Parse scans the artifact line by line and extracts the Time, Memory, and
// CPU fields.
func (p *CompactParser) Parse(text string) model.Sample {
	var sample model.Sample

	scanner := bufio.NewScanner(strings.NewReader(text))
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		switch {
		case strings.HasPrefix(line, compactTimeKey):
			token := strings.TrimSpace(strings.TrimPrefix(line, compactTimeKey))
			if v, err := ParseDuration(token); err == nil {
				sample.ElapsedSeconds = model.SomeFloat(v)
			}
		case strings.HasPrefix(line, compactMemoryKey):
			token := strings.TrimSpace(strings.TrimPrefix(line, compactMemoryKey))
			token = strings.TrimSpace(strings.TrimSuffix(token, "KB"))
			if v, err := strconv.ParseInt(token, 10, 64); err == nil && v >= 0 {
				sample.PeakMemoryKB = model.SomeInt(v)
			}
		case strings.HasPrefix(line, compactCPUKey):
			token := strings.TrimSpace(strings.TrimPrefix(line, compactCPUKey))
			token = strings.TrimSuffix(token, "%")
			if v, err := strconv.ParseInt(token, 10, 64); err == nil && v >= 0 {
				sample.CPUPercent = model.SomeInt(v)
			}
		}
	}
	return sample
}
