package pack

import (
	"fmt"
	"os"
	"strings"
)

// ReadIgnoreFile loads newline-delimited glob patterns from a file. Blank
// lines and lines starting with '#' are skipped.
func ReadIgnoreFile(path string) ([]string, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read ignore file %s: %w", path, err)
	}
	var patterns []string
	for _, line := range strings.Split(string(content), "\n") {
		s := strings.TrimSpace(line)
		if s == "" || strings.HasPrefix(s, "#") {
			continue
		}
		patterns = append(patterns, s)
	}
	return patterns, nil
}
