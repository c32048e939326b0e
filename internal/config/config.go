package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"sync"

	"github.com/janekbaraniewski/openchart/internal/core"
)

const (
	defaultTheme          = "Catppuccin Mocha"
	defaultCanvasWidth    = 960
	defaultCanvasHeight   = 540
	defaultBackground     = "#ffffff"
	defaultTerminalWidth  = 80
	defaultTerminalHeight = 20
	defaultDebounceMillis = 250
)

type CanvasConfig struct {
	Width      int    `json:"width"`
	Height     int    `json:"height"`
	Background string `json:"background"`
}

type TerminalConfig struct {
	Width  int `json:"width"`
	Height int `json:"height"`
}

type WatchConfig struct {
	DebounceMillis int `json:"debounce_ms"`
}

// Config holds user settings. Chart options themselves are not persisted;
// DefaultKind only picks the kind used when none is given.
type Config struct {
	Theme       string         `json:"theme"`
	DefaultKind core.ChartKind `json:"default_kind"`
	Canvas      CanvasConfig   `json:"canvas"`
	Terminal    TerminalConfig `json:"terminal"`
	Watch       WatchConfig    `json:"watch"`
}

func DefaultConfig() Config {
	return Config{
		Theme:       defaultTheme,
		DefaultKind: core.KindBar,
		Canvas: CanvasConfig{
			Width:      defaultCanvasWidth,
			Height:     defaultCanvasHeight,
			Background: defaultBackground,
		},
		Terminal: TerminalConfig{
			Width:  defaultTerminalWidth,
			Height: defaultTerminalHeight,
		},
		Watch: WatchConfig{DebounceMillis: defaultDebounceMillis},
	}
}

func ConfigDir() string {
	if dir := os.Getenv("OPENCHART_CONFIG_DIR"); dir != "" {
		return dir
	}
	if runtime.GOOS == "windows" {
		return filepath.Join(os.Getenv("APPDATA"), "openchart")
	}
	home, _ := os.UserHomeDir()
	return filepath.Join(home, ".config", "openchart")
}

func ConfigPath() string {
	return filepath.Join(ConfigDir(), "settings.json")
}

func Load() (Config, error) {
	return LoadFrom(ConfigPath())
}

func LoadFrom(path string) (Config, error) {
	cfg := DefaultConfig()

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return cfg, fmt.Errorf("reading config: %w", err)
	}

	if err := json.Unmarshal(data, &cfg); err != nil {
		return DefaultConfig(), fmt.Errorf("parsing config %s: %w", path, err)
	}
	return cfg.normalized(), nil
}

func (c Config) normalized() Config {
	def := DefaultConfig()
	if c.Theme == "" {
		c.Theme = def.Theme
	}
	if !c.DefaultKind.IsValid() {
		c.DefaultKind = core.ParseChartKind(string(c.DefaultKind))
	}
	if c.Canvas.Width <= 0 {
		c.Canvas.Width = def.Canvas.Width
	}
	if c.Canvas.Height <= 0 {
		c.Canvas.Height = def.Canvas.Height
	}
	if c.Canvas.Background == "" {
		c.Canvas.Background = def.Canvas.Background
	}
	if c.Terminal.Width <= 0 {
		c.Terminal.Width = def.Terminal.Width
	}
	if c.Terminal.Height <= 0 {
		c.Terminal.Height = def.Terminal.Height
	}
	if c.Watch.DebounceMillis <= 0 {
		c.Watch.DebounceMillis = def.Watch.DebounceMillis
	}
	return c
}

// saveMu guards read-modify-write cycles on the config file.
var saveMu sync.Mutex

func Save(cfg Config) error {
	return SaveTo(ConfigPath(), cfg)
}

func SaveTo(path string, cfg Config) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("creating config dir: %w", err)
	}

	data, err := json.MarshalIndent(cfg, "", "  ")
	if err != nil {
		return fmt.Errorf("marshaling config: %w", err)
	}
	data = append(data, '\n')

	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("writing config: %w", err)
	}
	return nil
}

// SaveTheme persists a theme name into the config file (read-modify-write).
func SaveTheme(theme string) error {
	return SaveThemeTo(ConfigPath(), theme)
}

func SaveThemeTo(path string, theme string) error {
	saveMu.Lock()
	defer saveMu.Unlock()

	cfg, err := LoadFrom(path)
	if err != nil {
		cfg = DefaultConfig()
	}
	cfg.Theme = theme
	return SaveTo(path, cfg)
}
