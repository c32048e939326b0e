package config

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"

	"github.com/janekbaraniewski/openchart/internal/core"
)

var ErrUnknownPresetFormat = errors.New("unknown preset format")

// LoadPreset reads a chart preset. The format follows the extension: .yaml,
// .yml, .toml or .json. Unknown keys are rejected. Fields the preset leaves
// out keep their defaults.
func LoadPreset(path string) (core.ChartConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return core.ChartConfig{}, fmt.Errorf("reading preset: %w", err)
	}
	cfg, err := ParsePreset(filepath.Ext(path), data)
	if err != nil {
		return core.ChartConfig{}, fmt.Errorf("parsing preset %s: %w", path, err)
	}
	return cfg, nil
}

// ParsePreset decodes data in the format named by ext.
func ParsePreset(ext string, data []byte) (core.ChartConfig, error) {
	cfg := core.DefaultChartConfig()
	switch strings.ToLower(strings.TrimPrefix(ext, ".")) {
	case "yaml", "yml":
		dec := yaml.NewDecoder(bytes.NewReader(data))
		dec.KnownFields(true)
		if err := dec.Decode(&cfg); err != nil && !errors.Is(err, io.EOF) {
			return core.ChartConfig{}, err
		}
	case "toml":
		dec := toml.NewDecoder(bytes.NewReader(data))
		dec.DisallowUnknownFields()
		if err := dec.Decode(&cfg); err != nil {
			return core.ChartConfig{}, err
		}
	case "json":
		dec := json.NewDecoder(bytes.NewReader(data))
		dec.DisallowUnknownFields()
		if err := dec.Decode(&cfg); err != nil && !errors.Is(err, io.EOF) {
			return core.ChartConfig{}, err
		}
	default:
		return core.ChartConfig{}, fmt.Errorf("%w: %q", ErrUnknownPresetFormat, ext)
	}
	return cfg.Normalize(), nil
}
