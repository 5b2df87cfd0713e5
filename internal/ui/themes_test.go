package ui

import (
	"bytes"
	"os"
	"testing"
)

func TestRingColor(t *testing.T) {
	t.Parallel()
	n := uint64(len(DarkTheme.Rings))
	if DarkTheme.RingColor(1) != DarkTheme.Rings[1] {
		t.Error("ring 1 should use the second palette entry")
	}
	if DarkTheme.RingColor(n+2) != DarkTheme.RingColor(2) {
		t.Error("palette should cycle")
	}
	if NoColorTheme.RingColor(3) != "" {
		t.Error("NoColorTheme should not color rings")
	}
}

func TestSetTheme(t *testing.T) {
	saved := GetCurrentTheme()
	defer SetCurrentTheme(saved)

	for name, want := range map[string]string{"light": "light", "none": "none", "neon": "dark"} {
		SetTheme(name)
		if got := GetCurrentTheme().Name; got != want {
			t.Errorf("SetTheme(%q) selected %q, want %q", name, got, want)
		}
	}
}

func TestInitTheme(t *testing.T) {
	saved := GetCurrentTheme()
	defer SetCurrentTheme(saved)

	InitTheme(false, &bytes.Buffer{})
	if GetCurrentTheme().Name != "none" {
		t.Error("a buffer is not a terminal, colors should be disabled")
	}

	InitTheme(true, os.Stdout)
	if ColorBold() != "" || ColorReset() != "" {
		t.Error("noColor should disable every escape code")
	}
}

func TestIsTerminal(t *testing.T) {
	t.Parallel()
	if IsTerminal(&bytes.Buffer{}) {
		t.Error("a buffer is not a terminal")
	}
	f, err := os.CreateTemp(t.TempDir(), "out")
	if err != nil {
		t.Fatal(err)
	}
	defer f.Close()
	if IsTerminal(f) {
		t.Error("a regular file is not a terminal")
	}
}
