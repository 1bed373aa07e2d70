package theme

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLookupBounds(t *testing.T) {
	p := Default()

	if p.Lookup(-0.5) != p.Colors[0] {
		t.Error("negative norm should clamp to the first color")
	}
	if p.Lookup(0) != p.Colors[0] {
		t.Error("norm 0 should return the first color")
	}
	if p.Lookup(1) != p.Colors[len(p.Colors)-1] {
		t.Error("norm 1 should return the last color")
	}
	if p.Lookup(2.0) != p.Colors[len(p.Colors)-1] {
		t.Error("norm above 1 should clamp to the last color")
	}
}

func TestLookupInterpolates(t *testing.T) {
	p := &Palette{Colors: []RGB{{0, 0, 0}, {200, 100, 50}}}

	mid := p.Lookup(0.5)
	want := RGB{100, 50, 25}
	if mid != want {
		t.Errorf("Lookup(0.5) = %v, want %v", mid, want)
	}
}

func TestLoadGPL(t *testing.T) {
	path := filepath.Join(t.TempDir(), "test.gpl")
	content := `GIMP Palette
Name: Two Tone
Columns: 2
# a comment
0 0 0	black
255 255 255	white
`
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}

	p, err := LoadGPL(path)
	if err != nil {
		t.Fatal(err)
	}
	if p.Name != "Two Tone" {
		t.Errorf("name = %q", p.Name)
	}
	if len(p.Colors) != 2 || p.Colors[1] != (RGB{255, 255, 255}) {
		t.Errorf("colors = %v", p.Colors)
	}
}

func TestLoadGPLOrDefaultFallsBack(t *testing.T) {
	if p := LoadGPLOrDefault(""); p.Name != Default().Name {
		t.Error("empty path should yield the built-in palette")
	}
	if p := LoadGPLOrDefault("/nonexistent/path.gpl"); p.Name != Default().Name {
		t.Error("missing file should yield the built-in palette")
	}
}

func TestThemeColorFormat(t *testing.T) {
	th := New(&Palette{Colors: []RGB{{255, 0, 16}}})
	if got := string(th.Complete()); got != "#ff0010" {
		t.Errorf("Complete() = %q, want #ff0010", got)
	}
}
