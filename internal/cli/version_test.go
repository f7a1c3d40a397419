package cli

import "testing"

func TestDisplayVersion(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"1.2.3", "v1.2.3"},
		{"v1.2.3", "v1.2.3"},
		{"v2.0.0-rc.1", "v2.0.0-rc.1"},
		{"dev", "dev"},
		{"", ""},
	}
	for _, tt := range tests {
		if got := displayVersion(tt.in); got != tt.want {
			t.Errorf("displayVersion(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestVersionString(t *testing.T) {
	got := versionString("", "abc123", "2026-01-01")
	want := "dev (commit: abc123, built: 2026-01-01)"
	if got != want {
		t.Errorf("versionString = %q, want %q", got, want)
	}
}
