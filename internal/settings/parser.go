package settings

import (
	"fmt"
	"os"
	"strings"
)

// Parse extracts a key/value mapping from raw config text.
//
// Each line is split on the first "=" only; both sides are trimmed of
// surrounding whitespace. Lines without an "=" (comments, blanks,
// malformed lines) are skipped, not errors — parsing never rewrites a
// file, so those lines stay on disk untouched. If a key repeats, the
// last occurrence wins.
func Parse(text string) map[string]string {
	result := make(map[string]string)

	for _, line := range strings.Split(text, "\n") {
		key, value, found := strings.Cut(line, "=")
		if !found {
			continue
		}
		result[strings.TrimSpace(key)] = strings.TrimSpace(value)
	}

	return result
}

// ParseFile reads a config file and parses it per Parse.
func ParseFile(path string) (map[string]string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading config file: %w", err)
	}
	return Parse(string(data)), nil
}
