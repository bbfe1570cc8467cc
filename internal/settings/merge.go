package settings

import (
	"sort"
	"strings"
)

// MergeLines applies a key/value mapping onto a config file's raw lines
// and reports how many lines changed.
//
// For each key (in sorted order, so merges are deterministic), the first
// line whose leading-whitespace-stripped text begins with the key and
// contains an "=" is replaced wholesale with the canonical form
// "key = value". Whatever trailed the original value on that line,
// comments included, is discarded. Keys with no matching line are
// appended at the end.
//
// The match is a prefix test, not an exact-key test: a key that is a
// prefix of a longer key name ("fov" vs "fovscale") can hit the wrong
// line when the shorter key is absent. This mirrors the line-matching
// strategy the config files were built around; see DESIGN.md before
// changing it, since an exact match changes observable merge results.
//
// The input slice is not modified; the merged lines are returned.
func MergeLines(lines []string, values map[string]string) ([]string, int) {
	merged := make([]string, len(lines))
	copy(merged, lines)

	keys := make([]string, 0, len(values))
	for key := range values {
		keys = append(keys, key)
	}
	sort.Strings(keys)

	changed := 0
	for _, key := range keys {
		canonical := key + " = " + values[key]

		index := findAssignmentLine(merged, key)
		if index >= 0 {
			if merged[index] != canonical {
				merged[index] = canonical
				changed++
			}
			continue
		}

		merged = append(merged, canonical)
		changed++
	}

	return merged, changed
}

// findAssignmentLine returns the index of the first line that starts with
// key (after stripping leading whitespace) and contains an "=", or -1.
func findAssignmentLine(lines []string, key string) int {
	for i, line := range lines {
		stripped := strings.TrimLeft(line, " \t")
		if strings.HasPrefix(stripped, key) && strings.Contains(stripped, "=") {
			return i
		}
	}
	return -1
}
