package settings

import "strings"

// DefaultCategories is the built-in list of setting-name tokens selected
// for export. Matching is by substring, so "fov" also selects keys like
// "cg_fovScale".
var DefaultCategories = []string{
	"mouse",
	"fov",
	"brightness",
	"hdr",
	"adssensitivity",
	"gamepad",
	"sprint",
}

// Filter returns the subset of settings whose lower-cased key contains at
// least one category token as a substring. An empty category list yields
// an empty result. Pure; the input map is never modified.
func Filter(settings map[string]string, categories []string) map[string]string {
	result := make(map[string]string)

	for key, value := range settings {
		lower := strings.ToLower(key)
		for _, category := range categories {
			if strings.Contains(lower, strings.ToLower(category)) {
				result[key] = value
				break
			}
		}
	}

	return result
}
