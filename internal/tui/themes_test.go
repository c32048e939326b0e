package tui

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/charmbracelet/lipgloss"
)

func snapshotThemeState() ([]Theme, int) {
	themeMu.RLock()
	defer themeMu.RUnlock()

	copyThemes := make([]Theme, len(themes))
	copy(copyThemes, themes)
	return copyThemes, activeThemeIdx
}

func restoreThemeState(saved []Theme, savedIdx int) {
	themeMu.Lock()
	defer themeMu.Unlock()

	themes = make([]Theme, len(saved))
	copy(themes, saved)
	if savedIdx < 0 || savedIdx >= len(themes) {
		savedIdx = defaultThemeIndex(themes)
	}
	activeThemeIdx = savedIdx
	applyTheme(themes[activeThemeIdx])
}

func writeThemeFile(t *testing.T, dir, filename, content string) {
	t.Helper()
	if err := os.MkdirAll(dir, 0o755); err != nil {
		t.Fatalf("mkdir: %v", err)
	}
	path := filepath.Join(dir, filename)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write theme file %s: %v", path, err)
	}
}

func externalThemeJSON(name, accent string) string {
	return `{
  "name": "` + name + `",
  "base": "#111111",
  "surface0": "#232323",
  "surface1": "#303030",
  "text": "#E8E8E8",
  "subtext": "#BDBDBD",
  "dim": "#7F7F7F",
  "accent": "` + accent + `",
  "blue": "#CFCFCF",
  "green": "#ABABAB",
  "yellow": "#9A9A9A",
  "red": "#878787",
  "teal": "#B3B3B3",
  "lavender": "#C4C4C4"
}`
}

func TestBuiltinThemesAreComplete(t *testing.T) {
	for _, th := range builtinThemes() {
		if err := th.validate(); err != nil {
			t.Errorf("builtin theme %q invalid: %v", th.Name, err)
		}
	}
	if got := builtinThemes()[defaultThemeIndex(builtinThemes())].Name; got != defaultThemeName {
		t.Fatalf("default theme = %q, want %q", got, defaultThemeName)
	}
}

func TestCycleThemeAppliesPalette(t *testing.T) {
	savedThemes, savedIdx := snapshotThemeState()
	defer restoreThemeState(savedThemes, savedIdx)

	before := ActiveTheme().Name
	name := CycleTheme()
	if name == before {
		t.Fatalf("CycleTheme stayed on %q", name)
	}
	if colorAccent != ActiveTheme().Accent {
		t.Fatalf("accent = %q, want the active theme's %q", colorAccent, ActiveTheme().Accent)
	}
	if !strings.Contains(ThemeName(), name) {
		t.Fatalf("ThemeName() = %q, want it to contain %q", ThemeName(), name)
	}
}

func TestSetThemeByName(t *testing.T) {
	savedThemes, savedIdx := snapshotThemeState()
	defer restoreThemeState(savedThemes, savedIdx)

	if !SetThemeByName("nord") {
		t.Fatal("SetThemeByName should match case-insensitively")
	}
	if ActiveTheme().Name != "Nord" {
		t.Fatalf("active = %q, want Nord", ActiveTheme().Name)
	}
	if SetThemeByName("does-not-exist") {
		t.Fatal("unknown theme should not be applied")
	}
	if ActiveTheme().Name != "Nord" {
		t.Fatal("failed lookup should keep the active theme")
	}
}

func TestLoadThemesFromConfigDir(t *testing.T) {
	savedThemes, savedIdx := snapshotThemeState()
	defer restoreThemeState(savedThemes, savedIdx)
	t.Setenv(themeDirEnvVar, "")

	configDir := t.TempDir()
	themesDir := filepath.Join(configDir, "themes")
	writeThemeFile(t, themesDir, "mono.json", externalThemeJSON("Mono", "#EEEEEE"))
	writeThemeFile(t, themesDir, "notes.txt", "ignored")

	if err := LoadThemes(configDir); err != nil {
		t.Fatalf("LoadThemes: %v", err)
	}
	if !SetThemeByName("Mono") {
		t.Fatal("external theme should be selectable")
	}
	if colorAccent != lipgloss.Color("#EEEEEE") {
		t.Fatalf("accent = %q, want #EEEEEE", colorAccent)
	}
	if got := len(AvailableThemes()); got != len(builtinThemes())+1 {
		t.Fatalf("themes = %d, want builtins + 1", got)
	}
}

func TestLoadThemesOverridesBuiltinByName(t *testing.T) {
	savedThemes, savedIdx := snapshotThemeState()
	defer restoreThemeState(savedThemes, savedIdx)

	dir := t.TempDir()
	writeThemeFile(t, dir, "nord.json", externalThemeJSON("Nord", "#ABCDEF"))
	t.Setenv(themeDirEnvVar, dir)

	if err := LoadThemes(""); err != nil {
		t.Fatalf("LoadThemes: %v", err)
	}
	if got := len(AvailableThemes()); got != len(builtinThemes()) {
		t.Fatalf("themes = %d, want override in place", got)
	}
	SetThemeByName("Nord")
	if ActiveTheme().Accent != lipgloss.Color("#ABCDEF") {
		t.Fatalf("Nord accent = %q, want override", ActiveTheme().Accent)
	}
}

func TestLoadThemesReportsInvalidFiles(t *testing.T) {
	savedThemes, savedIdx := snapshotThemeState()
	defer restoreThemeState(savedThemes, savedIdx)

	dir := t.TempDir()
	writeThemeFile(t, dir, "broken.json", "{not json")
	writeThemeFile(t, dir, "partial.json", `{"name": "Partial", "accent": "#FFFFFF"}`)
	writeThemeFile(t, dir, "good.json", externalThemeJSON("Good", "#123456"))
	t.Setenv(themeDirEnvVar, dir)

	err := LoadThemes("")
	if err == nil {
		t.Fatal("expected errors for invalid theme files")
	}
	for _, want := range []string{"broken.json", "partial.json", "missing required color fields"} {
		if !strings.Contains(err.Error(), want) {
			t.Errorf("error %q should mention %q", err, want)
		}
	}
	if !SetThemeByName("Good") {
		t.Fatal("valid files should still load next to invalid ones")
	}
}

func TestLoadThemesKeepsActiveTheme(t *testing.T) {
	savedThemes, savedIdx := snapshotThemeState()
	defer restoreThemeState(savedThemes, savedIdx)
	t.Setenv(themeDirEnvVar, "")

	SetThemeByName("Dracula")
	if err := LoadThemes(t.TempDir()); err != nil {
		t.Fatalf("LoadThemes: %v", err)
	}
	if ActiveTheme().Name != "Dracula" {
		t.Fatalf("active = %q, want Dracula kept", ActiveTheme().Name)
	}
}
