package parser

import (
	"fmt"
	"strconv"
	"strings"
)

// ParseDuration converts a profiling-utility duration token into seconds.
//
// Accepted forms: "SS.ms", "MM:SS.ms", and "HH:MM:SS.ms". One colon means
// minutes:seconds, two mean hours:minutes:seconds, none means seconds only.
// The result is hours*3600 + minutes*60 + seconds.
func ParseDuration(token string) (float64, error) {
	token = strings.TrimSpace(token)
	if token == "" {
		return 0, fmt.Errorf("empty duration token")
	}

	parts := strings.Split(token, ":")
	if len(parts) > 3 {
		return 0, fmt.Errorf("invalid duration token %q: too many separators", token)
	}

	var seconds float64
	for _, part := range parts {
		v, err := strconv.ParseFloat(part, 64)
		if err != nil {
			return 0, fmt.Errorf("invalid duration token %q: %w", token, err)
		}
		if v < 0 {
			return 0, fmt.Errorf("invalid duration token %q: negative component", token)
		}
		seconds = seconds*60 + v
	}
	return seconds, nil
}
