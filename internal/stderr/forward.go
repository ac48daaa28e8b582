package stderr

import (
	"bufio"
	"io"
	"strings"
)

// noise lists substrings of lines that carry no actionable information.
var noise = []string{
	"underrun occurred",
	"Unknown PCM",
	"cannot find card",
}

// IsNoise reports whether line should be dropped rather than shown.
func IsNoise(line string) bool {
	for _, n := range noise {
		if strings.Contains(line, n) {
			return true
		}
	}
	return false
}

// forward copies non-empty, non-noise lines from r to out until r is
// exhausted. Lines are dropped when out is full.
func forward(r io.Reader, out chan<- string) {
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || IsNoise(line) {
			continue
		}
		select {
		case out <- line:
		default:
			// Channel full, drop message to avoid blocking
		}
	}
}
