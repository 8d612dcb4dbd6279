// internal/defs/palette_test.go
package defs

import (
	"image/color"
	"os"
	"path/filepath"
	"testing"
)

func TestDefaultPalette_Complete(t *testing.T) {
	palette := DefaultPalette()
	if !palette.Complete() {
		t.Fatal("default palette does not cover all tokens")
	}
	for _, token := range AllPaletteTokens {
		c := palette.Color(token)
		if c.A == 0 {
			t.Errorf("token %s maps to a fully transparent color", token)
		}
	}
}

func TestPalette_ColorFallback(t *testing.T) {
	palette := DefaultPalette()
	got := palette.Color(PaletteToken("no-such-token"))
	want := palette[MusclePinkTissue]
	if got != want {
		t.Errorf("expected fallback to pink tissue %v, got %v", want, got)
	}
}

func TestLoadPalette_Override(t *testing.T) {
	path := filepath.Join(t.TempDir(), "palette.json")
	data := `[{"token":"necrotic-dark","r":10,"g":20,"b":30,"a":255}]`
	if err := os.WriteFile(path, []byte(data), 0o644); err != nil {
		t.Fatal(err)
	}

	palette, err := LoadPalette(path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !palette.Complete() {
		t.Error("palette lost coverage after override")
	}
	want := color.RGBA{10, 20, 30, 255}
	if got := palette.Color(MuscleNecroticDark); got != want {
		t.Errorf("expected %v, got %v", want, got)
	}
	// Непереопределённый токен остался прежним
	if got := palette.Color(MusclePinkTissue); got != DefaultPalette()[MusclePinkTissue] {
		t.Errorf("untouched token changed: %v", got)
	}
}

func TestLoadPalette_UnknownToken(t *testing.T) {
	path := filepath.Join(t.TempDir(), "palette.json")
	data := `[{"token":"no-such-token","r":1,"g":2,"b":3,"a":255}]`
	if err := os.WriteFile(path, []byte(data), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := LoadPalette(path); err == nil {
		t.Fatal("expected error for unknown token")
	}
}

func TestLoadPalette_MissingFile(t *testing.T) {
	if _, err := LoadPalette(filepath.Join(t.TempDir(), "absent.json")); err == nil {
		t.Fatal("expected error for missing file")
	}
}
