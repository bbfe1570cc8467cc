package settings

import (
	"os"
	"path/filepath"
	"testing"
)

func TestParse(t *testing.T) {
	tests := []struct {
		name string
		text string
		want map[string]string
	}{
		{
			name: "basic assignments",
			text: "fov = 90\nsensitivity = 4.5",
			want: map[string]string{"fov": "90", "sensitivity": "4.5"},
		},
		{
			name: "inconsistent spacing is trimmed",
			text: "  fov=90\nsensitivity   =   4.5  \nmouseAccel =0",
			want: map[string]string{"fov": "90", "sensitivity": "4.5", "mouseAccel": "0"},
		},
		{
			name: "lines without assignment are skipped",
			text: "// engine settings\n\nfov = 90\nnot a setting",
			want: map[string]string{"fov": "90"},
		},
		{
			name: "split on first equals only",
			text: "binding = key=F5",
			want: map[string]string{"binding": "key=F5"},
		},
		{
			name: "last occurrence of a duplicate key wins",
			text: "fov = 90\nfov = 110",
			want: map[string]string{"fov": "110"},
		},
		{
			name: "empty value",
			text: "customClass =",
			want: map[string]string{"customClass": ""},
		},
		{
			name: "empty input",
			text: "",
			want: map[string]string{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Parse(tt.text)
			if len(got) != len(tt.want) {
				t.Fatalf("Parse() = %v, want %v", got, tt.want)
			}
			for key, want := range tt.want {
				if got[key] != want {
					t.Errorf("Parse()[%q] = %q, want %q", key, got[key], want)
				}
			}
		})
	}
}

func TestParseFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "g.johndoe.txt0")
	content := "fov = 90\nmouseSensitivity = 4.5\n// comment\n"
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("failed to write fixture: %v", err)
	}

	got, err := ParseFile(path)
	if err != nil {
		t.Fatalf("ParseFile failed: %v", err)
	}
	if got["fov"] != "90" || got["mouseSensitivity"] != "4.5" {
		t.Errorf("unexpected parse result: %v", got)
	}
	if len(got) != 2 {
		t.Errorf("expected 2 keys, got %d: %v", len(got), got)
	}
}

func TestParseFileMissing(t *testing.T) {
	_, err := ParseFile(filepath.Join(t.TempDir(), "nope.txt0"))
	if err == nil {
		t.Fatal("expected error for missing file")
	}
}
