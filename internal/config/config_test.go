package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/janekbaraniewski/openchart/internal/core"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	if cfg.DefaultKind != core.KindBar {
		t.Errorf("default kind = %q, want bar", cfg.DefaultKind)
	}
	if cfg.Canvas.Width != 960 || cfg.Canvas.Height != 540 {
		t.Errorf("default canvas = %dx%d, want 960x540", cfg.Canvas.Width, cfg.Canvas.Height)
	}
	if cfg.Watch.DebounceMillis != 250 {
		t.Errorf("default debounce = %d, want 250", cfg.Watch.DebounceMillis)
	}
}

func TestLoadFrom_MissingFile(t *testing.T) {
	cfg, err := LoadFrom(filepath.Join(t.TempDir(), "settings.json"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.Theme != DefaultConfig().Theme {
		t.Error("should return defaults for missing file")
	}
}

func TestLoadFrom_ValidFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "settings.json")
	content := `{
  "theme": "Nord",
  "default_kind": "donut",
  "canvas": {"width": 1280, "height": 0},
  "terminal": {"width": 120}
}`
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("writing test config: %v", err)
	}

	cfg, err := LoadFrom(path)
	if err != nil {
		t.Fatalf("LoadFrom() error: %v", err)
	}
	if cfg.Theme != "Nord" {
		t.Errorf("theme = %q, want Nord", cfg.Theme)
	}
	if cfg.DefaultKind != core.KindDoughnut {
		t.Errorf("default kind = %q, want doughnut", cfg.DefaultKind)
	}
	if cfg.Canvas.Width != 1280 {
		t.Errorf("canvas width = %d, want 1280", cfg.Canvas.Width)
	}
	if cfg.Canvas.Height != 540 {
		t.Errorf("zero canvas height should normalize to 540, got %d", cfg.Canvas.Height)
	}
	if cfg.Terminal.Width != 120 || cfg.Terminal.Height != 20 {
		t.Errorf("terminal = %dx%d, want 120x20", cfg.Terminal.Width, cfg.Terminal.Height)
	}
}

func TestLoadFrom_InvalidJSON(t *testing.T) {
	path := filepath.Join(t.TempDir(), "settings.json")
	if err := os.WriteFile(path, []byte("{not json"), 0o644); err != nil {
		t.Fatal(err)
	}
	cfg, err := LoadFrom(path)
	if err == nil {
		t.Fatal("expected parse error")
	}
	if cfg.Theme != DefaultConfig().Theme {
		t.Error("parse failure should still return defaults")
	}
}

func TestSaveThemeTo_RoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "settings.json")
	cfg := DefaultConfig()
	cfg.Canvas.Width = 640
	if err := SaveTo(path, cfg); err != nil {
		t.Fatalf("SaveTo: %v", err)
	}
	if err := SaveThemeTo(path, "Dracula"); err != nil {
		t.Fatalf("SaveThemeTo: %v", err)
	}

	got, err := LoadFrom(path)
	if err != nil {
		t.Fatalf("LoadFrom: %v", err)
	}
	if got.Theme != "Dracula" {
		t.Errorf("theme = %q, want Dracula", got.Theme)
	}
	if got.Canvas.Width != 640 {
		t.Errorf("canvas width = %d, want 640 kept across theme save", got.Canvas.Width)
	}
}

func TestConfigDir_EnvOverride(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("OPENCHART_CONFIG_DIR", dir)
	if got := ConfigPath(); got != filepath.Join(dir, "settings.json") {
		t.Errorf("ConfigPath = %q", got)
	}
}

func TestParsePreset(t *testing.T) {
	tests := []struct {
		name string
		ext  string
		data string
	}{
		{"yaml", ".yaml", "type: pie\nenable_3d: true\nshadow_3d_depth: 30\ncolor: '#ff0000'\n"},
		{"yml", "yml", "type: pie\nenable_3d: true\nshadow_3d_depth: 30\ncolor: '#ff0000'\n"},
		{"toml", ".toml", "type = \"pie\"\nenable_3d = true\nshadow_3d_depth = 30\ncolor = \"#ff0000\"\n"},
		{"json", ".json", `{"type": "pie", "enable_3d": true, "shadow_3d_depth": 30, "color": "#ff0000"}`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg, err := ParsePreset(tt.ext, []byte(tt.data))
			if err != nil {
				t.Fatalf("ParsePreset: %v", err)
			}
			if cfg.Type != core.KindPie || !cfg.Enable3D || cfg.Color != "#ff0000" {
				t.Errorf("cfg = %+v", cfg)
			}
			if cfg.Shadow3DDepth != 25 {
				t.Errorf("depth = %d, want clamped to 25", cfg.Shadow3DDepth)
			}
			if cfg.AggregateFunction != core.AggSum || cfg.Shadow3DPosition != core.ShadowBottomRight {
				t.Errorf("omitted fields should keep defaults, got %+v", cfg)
			}
		})
	}
}

func TestParsePreset_Strict(t *testing.T) {
	cases := map[string]string{
		".yaml": "type: bar\nbogus: 1\n",
		".toml": "type = \"bar\"\nbogus = 1\n",
		".json": `{"type": "bar", "bogus": 1}`,
	}
	for ext, data := range cases {
		if _, err := ParsePreset(ext, []byte(data)); err == nil {
			t.Errorf("%s: unknown key accepted", ext)
		}
	}

	if _, err := ParsePreset(".ini", nil); !errors.Is(err, ErrUnknownPresetFormat) {
		t.Errorf("ini err = %v, want ErrUnknownPresetFormat", err)
	}
}

func TestLoadPreset(t *testing.T) {
	path := filepath.Join(t.TempDir(), "top5.yaml")
	data := "type: column\naggregate_by: region\ntop_n: 5\ngroup_others: true\nlog_min: 0.5\n"
	if err := os.WriteFile(path, []byte(data), 0o644); err != nil {
		t.Fatal(err)
	}
	cfg, err := LoadPreset(path)
	if err != nil {
		t.Fatalf("LoadPreset: %v", err)
	}
	if cfg.TopN != 5 || !cfg.GroupOthers || cfg.AggregateBy != "region" {
		t.Errorf("cfg = %+v", cfg)
	}
	if cfg.LogMin == nil || *cfg.LogMin != 0.5 {
		t.Errorf("log_min = %v, want 0.5", cfg.LogMin)
	}

	if _, err := LoadPreset(filepath.Join(t.TempDir(), "missing.yaml")); !errors.Is(err, os.ErrNotExist) {
		t.Errorf("missing preset err = %v", err)
	}
}

func TestParsePreset_Empty(t *testing.T) {
	cfg, err := ParsePreset(".yaml", nil)
	if err != nil {
		t.Fatalf("empty yaml: %v", err)
	}
	if cfg.Type != core.KindBar {
		t.Errorf("empty preset type = %q, want bar", cfg.Type)
	}
}
