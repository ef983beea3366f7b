package prefs

import (
	"path/filepath"
	"testing"
)

func TestLoadMissingFile(t *testing.T) {
	p := Load(filepath.Join(t.TempDir(), "absent.toml"))
	if p.Theme != defaultTheme || p.Alignment != defaultAlignment {
		t.Fatalf("Load missing = %+v, want defaults", p)
	}
}

func TestSaveThenLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "prefs.toml")
	want := Prefs{Theme: "Nord", Alignment: "center"}
	if err := Save(path, want); err != nil {
		t.Fatalf("Save: %v", err)
	}
	if got := Load(path); got != want {
		t.Fatalf("round trip = %+v, want %+v", got, want)
	}
}

func TestLoadSanitizesBadAlignment(t *testing.T) {
	path := filepath.Join(t.TempDir(), "prefs.toml")
	if err := Save(path, Prefs{Theme: "Nord", Alignment: "diagonal"}); err != nil {
		t.Fatalf("Save: %v", err)
	}
	got := Load(path)
	if got.Alignment != defaultAlignment {
		t.Fatalf("alignment = %q, want sanitized default", got.Alignment)
	}
	if got.Theme != "Nord" {
		t.Fatalf("theme = %q, want Nord", got.Theme)
	}
}
