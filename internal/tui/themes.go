package tui

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"sync"

	"github.com/charmbracelet/lipgloss"
)

// OPENCHART_THEME_DIR can point to one or more additional theme directories
// (path-list separated, e.g. ":" on unix, ";" on Windows).
const themeDirEnvVar = "OPENCHART_THEME_DIR"

// Theme is the terminal palette. External themes are JSON files with
// matching snake_case fields.
type Theme struct {
	Name string `json:"name"`
	Icon string `json:"icon"`

	Base     lipgloss.Color `json:"base"`
	Surface0 lipgloss.Color `json:"surface0"`
	Surface1 lipgloss.Color `json:"surface1"`
	Text     lipgloss.Color `json:"text"`
	Subtext  lipgloss.Color `json:"subtext"`
	Dim      lipgloss.Color `json:"dim"`

	Accent   lipgloss.Color `json:"accent"`
	Blue     lipgloss.Color `json:"blue"`
	Green    lipgloss.Color `json:"green"`
	Yellow   lipgloss.Color `json:"yellow"`
	Red      lipgloss.Color `json:"red"`
	Teal     lipgloss.Color `json:"teal"`
	Lavender lipgloss.Color `json:"lavender"`
}

const defaultThemeName = "Catppuccin Mocha"

var (
	themeMu        sync.RWMutex
	themes         []Theme
	activeThemeIdx int
)

func init() {
	themes = builtinThemes()
	activeThemeIdx = defaultThemeIndex(themes)
	applyTheme(themes[activeThemeIdx])
}

func builtinThemes() []Theme {
	return []Theme{
		{
			Name: "Catppuccin Mocha", Icon: "🐱",
			Base: "#1E1E2E", Surface0: "#313244", Surface1: "#45475A",
			Text: "#CDD6F4", Subtext: "#A6ADC8", Dim: "#585B70",
			Accent: "#CBA6F7", Blue: "#89B4FA", Green: "#A6E3A1", Yellow: "#F9E2AF",
			Red: "#F38BA8", Teal: "#94E2D5", Lavender: "#B4BEFE",
		},
		{
			Name: "Gruvbox", Icon: "🌻",
			Base: "#282828", Surface0: "#3C3836", Surface1: "#504945",
			Text: "#EBDBB2", Subtext: "#D5C4A1", Dim: "#665C54",
			Accent: "#D3869B", Blue: "#83A598", Green: "#B8BB26", Yellow: "#FABD2F",
			Red: "#FB4934", Teal: "#8EC07C", Lavender: "#D3869B",
		},
		{
			Name: "Nord", Icon: "❄",
			Base: "#2E3440", Surface0: "#3B4252", Surface1: "#434C5E",
			Text: "#ECEFF4", Subtext: "#D8DEE9", Dim: "#4C566A",
			Accent: "#B48EAD", Blue: "#81A1C1", Green: "#A3BE8C", Yellow: "#EBCB8B",
			Red: "#BF616A", Teal: "#8FBCBB", Lavender: "#B48EAD",
		},
		{
			Name: "Dracula", Icon: "🧛",
			Base: "#282A36", Surface0: "#44475A", Surface1: "#6272A4",
			Text: "#F8F8F2", Subtext: "#BFBFBF", Dim: "#6272A4",
			Accent: "#BD93F9", Blue: "#8BE9FD", Green: "#50FA7B", Yellow: "#F1FA8C",
			Red: "#FF5555", Teal: "#8BE9FD", Lavender: "#BD93F9",
		},
		{
			Name: "Solarized Light", Icon: "🌅",
			Base: "#FDF6E3", Surface0: "#EEE8D5", Surface1: "#DDD6C1",
			Text: "#586E75", Subtext: "#657B83", Dim: "#93A1A1",
			Accent: "#D33682", Blue: "#268BD2", Green: "#859900", Yellow: "#B58900",
			Red: "#DC322F", Teal: "#2AA198", Lavender: "#6C71C4",
		},
	}
}

func defaultThemeIndex(all []Theme) int {
	for i, t := range all {
		if strings.EqualFold(t.Name, defaultThemeName) {
			return i
		}
	}
	return 0
}

func applyTheme(t Theme) {
	colorBase = t.Base
	colorSurface0 = t.Surface0
	colorSurface1 = t.Surface1
	colorText = t.Text
	colorSubtext = t.Subtext
	colorDim = t.Dim
	colorAccent = t.Accent
	colorBlue = t.Blue
	colorGreen = t.Green
	colorYellow = t.Yellow
	colorRed = t.Red
	colorTeal = t.Teal
	colorLavender = t.Lavender
	rebuildStyles()
}

func (t *Theme) colorFields() []struct {
	name  string
	value *lipgloss.Color
} {
	return []struct {
		name  string
		value *lipgloss.Color
	}{
		{"base", &t.Base}, {"surface0", &t.Surface0}, {"surface1", &t.Surface1},
		{"text", &t.Text}, {"subtext", &t.Subtext}, {"dim", &t.Dim},
		{"accent", &t.Accent}, {"blue", &t.Blue}, {"green", &t.Green},
		{"yellow", &t.Yellow}, {"red", &t.Red}, {"teal", &t.Teal}, {"lavender", &t.Lavender},
	}
}

func normalizeTheme(in Theme) Theme {
	in.Name = strings.TrimSpace(in.Name)
	in.Icon = strings.TrimSpace(in.Icon)
	if in.Icon == "" {
		in.Icon = "🎨"
	}
	for _, f := range in.colorFields() {
		*f.value = lipgloss.Color(strings.TrimSpace(string(*f.value)))
	}
	return in
}

func (t Theme) validate() error {
	if t.Name == "" {
		return fmt.Errorf("missing required field: name")
	}
	var missing []string
	for _, f := range t.colorFields() {
		if strings.TrimSpace(string(*f.value)) == "" {
			missing = append(missing, f.name)
		}
	}
	if len(missing) > 0 {
		return fmt.Errorf("missing required color fields: %s", strings.Join(missing, ", "))
	}
	return nil
}

func themeSearchDirs(configDir string) []string {
	seen := make(map[string]bool)
	var out []string
	add := func(path string) {
		path = strings.TrimSpace(path)
		if path == "" {
			return
		}
		clean := filepath.Clean(path)
		if seen[clean] {
			return
		}
		seen[clean] = true
		out = append(out, clean)
	}

	if configDir != "" {
		add(filepath.Join(configDir, "themes"))
	}
	for _, part := range filepath.SplitList(os.Getenv(themeDirEnvVar)) {
		add(part)
	}
	return out
}

func loadThemesFromDir(dir string) ([]Theme, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("read theme dir %s: %w", dir, err)
	}
	sort.Slice(entries, func(i, j int) bool {
		return strings.ToLower(entries[i].Name()) < strings.ToLower(entries[j].Name())
	})

	var loaded []Theme
	var errs []error
	for _, entry := range entries {
		if entry.IsDir() || !strings.EqualFold(filepath.Ext(entry.Name()), ".json") {
			continue
		}
		path := filepath.Join(dir, entry.Name())
		data, err := os.ReadFile(path)
		if err != nil {
			errs = append(errs, fmt.Errorf("read %s: %w", path, err))
			continue
		}
		var t Theme
		if err := json.Unmarshal(data, &t); err != nil {
			errs = append(errs, fmt.Errorf("parse %s: %w", path, err))
			continue
		}
		t = normalizeTheme(t)
		if err := t.validate(); err != nil {
			errs = append(errs, fmt.Errorf("validate %s: %w", path, err))
			continue
		}
		loaded = append(loaded, t)
	}
	return loaded, errors.Join(errs...)
}

// mergeThemes appends extra to base; a theme with an existing name replaces
// the built-in in place.
func mergeThemes(base, extra []Theme) []Theme {
	merged := append([]Theme(nil), base...)
	index := make(map[string]int, len(merged))
	for i, t := range merged {
		index[strings.ToLower(t.Name)] = i
	}
	for _, t := range extra {
		k := strings.ToLower(t.Name)
		if i, ok := index[k]; ok {
			merged[i] = t
			continue
		}
		index[k] = len(merged)
		merged = append(merged, t)
	}
	return merged
}

func setActiveThemeByNameLocked(name string) bool {
	name = strings.TrimSpace(name)
	if name == "" {
		return false
	}
	for i, t := range themes {
		if strings.EqualFold(t.Name, name) {
			activeThemeIdx = i
			applyTheme(t)
			return true
		}
	}
	return false
}

// LoadThemes rebuilds the catalog from built-ins plus JSON files found in
// <configDir>/themes and every OPENCHART_THEME_DIR entry. Invalid files are
// skipped and reported together; the active theme is kept when it survives.
func LoadThemes(configDir string) error {
	themeMu.Lock()
	defer themeMu.Unlock()

	current := themes[activeThemeIdx].Name
	next := builtinThemes()
	var errs []error
	for _, dir := range themeSearchDirs(configDir) {
		loaded, err := loadThemesFromDir(dir)
		if err != nil {
			errs = append(errs, err)
		}
		next = mergeThemes(next, loaded)
	}

	themes = next
	if !setActiveThemeByNameLocked(current) {
		activeThemeIdx = defaultThemeIndex(themes)
		applyTheme(themes[activeThemeIdx])
	}
	return errors.Join(errs...)
}

func AvailableThemes() []Theme {
	themeMu.RLock()
	defer themeMu.RUnlock()
	return append([]Theme(nil), themes...)
}

func ActiveTheme() Theme {
	themeMu.RLock()
	defer themeMu.RUnlock()
	return themes[activeThemeIdx]
}

// CycleTheme activates the next theme and returns its name.
func CycleTheme() string {
	themeMu.Lock()
	defer themeMu.Unlock()
	activeThemeIdx = (activeThemeIdx + 1) % len(themes)
	applyTheme(themes[activeThemeIdx])
	return themes[activeThemeIdx].Name
}

func ThemeName() string {
	t := ActiveTheme()
	return t.Icon + " " + t.Name
}

func SetThemeByName(name string) bool {
	themeMu.Lock()
	defer themeMu.Unlock()
	return setActiveThemeByNameLocked(name)
}
