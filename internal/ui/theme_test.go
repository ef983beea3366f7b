package ui

import "testing"

func TestGetTheme(t *testing.T) {
	if got := GetTheme("Nord"); got.Name != "Nord" {
		t.Errorf("GetTheme(Nord).Name = %q", got.Name)
	}
	if got := GetTheme("nope"); got.Name != "Dracula" {
		t.Errorf("unknown theme = %q, want Dracula fallback", got.Name)
	}
}

func TestNextThemeCycles(t *testing.T) {
	seen := map[string]bool{}
	name := themeOrder[0]
	for range themeOrder {
		seen[name] = true
		name = NextTheme(name)
	}
	if name != themeOrder[0] {
		t.Errorf("cycle did not wrap, ended at %q", name)
	}
	if len(seen) != len(themeOrder) {
		t.Errorf("visited %d themes, want %d", len(seen), len(themeOrder))
	}
	if NextTheme("nope") != themeOrder[0] {
		t.Error("unknown theme should restart the cycle")
	}
}

func TestThemeNamesMatchRegistry(t *testing.T) {
	for _, name := range ThemeNames() {
		if _, ok := themes[name]; !ok {
			t.Errorf("theme %q listed but not registered", name)
		}
	}
	if len(ThemeNames()) != len(themes) {
		t.Errorf("%d names for %d registered themes", len(ThemeNames()), len(themes))
	}
}
