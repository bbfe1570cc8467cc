package settings

import (
	"reflect"
	"testing"
)

func TestMergeLinesReplacesMatchingLine(t *testing.T) {
	lines := []string{
		"// engine settings",
		"fov = 90",
		"mouseSensitivity = 4.5",
		"",
	}

	merged, changed := MergeLines(lines, map[string]string{"fov": "110"})

	want := []string{
		"// engine settings",
		"fov = 110",
		"mouseSensitivity = 4.5",
		"",
	}
	if !reflect.DeepEqual(merged, want) {
		t.Errorf("merged = %q, want %q", merged, want)
	}
	if changed != 1 {
		t.Errorf("changed = %d, want 1", changed)
	}
}

func TestMergeLinesCanonicalizesSpacingAndDropsTrailer(t *testing.T) {
	lines := []string{
		"  fov=90 // wide",
	}

	merged, changed := MergeLines(lines, map[string]string{"fov": "90"})

	// The whole line is replaced with the canonical form; the trailing
	// comment and original spacing are discarded.
	if merged[0] != "fov = 90" {
		t.Errorf("merged[0] = %q, want %q", merged[0], "fov = 90")
	}
	if changed != 1 {
		t.Errorf("changed = %d, want 1", changed)
	}
}

func TestMergeLinesAppendsMissingKey(t *testing.T) {
	lines := []string{"fov = 90"}

	merged, changed := MergeLines(lines, map[string]string{"hdrColorspace": "auto"})

	want := []string{"fov = 90", "hdrColorspace = auto"}
	if !reflect.DeepEqual(merged, want) {
		t.Errorf("merged = %q, want %q", merged, want)
	}
	if changed != 1 {
		t.Errorf("changed = %d, want 1", changed)
	}
}

func TestMergeLinesNoChangeWhenAlreadyCanonical(t *testing.T) {
	lines := []string{"fov = 90", "mouseSensitivity = 4.5"}

	merged, changed := MergeLines(lines, map[string]string{"fov": "90"})

	if changed != 0 {
		t.Errorf("changed = %d, want 0", changed)
	}
	if !reflect.DeepEqual(merged, lines) {
		t.Errorf("merged = %q, want unchanged %q", merged, lines)
	}
}

func TestMergeLinesIdempotent(t *testing.T) {
	lines := []string{"fov = 90", "// comment", "playerName = johndoe"}
	values := map[string]string{"fov": "110", "sprintBehavior": "toggle"}

	once, changedOnce := MergeLines(lines, values)
	twice, changedTwice := MergeLines(once, values)

	if changedOnce == 0 {
		t.Fatal("first merge should report changes")
	}
	if changedTwice != 0 {
		t.Errorf("second merge changed %d lines, want 0", changedTwice)
	}
	if !reflect.DeepEqual(once, twice) {
		t.Errorf("second merge altered output: %q vs %q", once, twice)
	}
}

func TestMergeLinesDoesNotModifyInput(t *testing.T) {
	lines := []string{"fov = 90"}
	original := []string{"fov = 90"}

	_, _ = MergeLines(lines, map[string]string{"fov": "110"})

	if !reflect.DeepEqual(lines, original) {
		t.Errorf("input slice was modified: %q", lines)
	}
}

// A key that prefixes a longer key name matches the longer key's line
// when its own line is absent. Documented behavior, not a bug fix target:
// the merge strategy is a line-prefix scan.
func TestMergeLinesPrefixCollision(t *testing.T) {
	lines := []string{"fovscale = 1.2"}

	merged, changed := MergeLines(lines, map[string]string{"fov": "90"})

	want := []string{"fov = 90"}
	if !reflect.DeepEqual(merged, want) {
		t.Errorf("merged = %q, want %q (prefix match replaces the fovscale line)", merged, want)
	}
	if changed != 1 {
		t.Errorf("changed = %d, want 1", changed)
	}
}

func TestMergeLinesDeterministicAppendOrder(t *testing.T) {
	values := map[string]string{
		"sprintBehavior":   "toggle",
		"adsSensitivity":   "0.8",
		"gamepadVibration": "off",
	}

	merged, _ := MergeLines([]string{"fov = 90"}, values)

	// Appended keys come out in sorted order regardless of map iteration.
	want := []string{
		"fov = 90",
		"adsSensitivity = 0.8",
		"gamepadVibration = off",
		"sprintBehavior = toggle",
	}
	if !reflect.DeepEqual(merged, want) {
		t.Errorf("merged = %q, want %q", merged, want)
	}
}
