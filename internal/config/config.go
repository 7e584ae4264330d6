// Package config loads the command line tool's settings from a YAML file.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/eggfriedrice24/tcad/export"
)

// FileName is the name of the config file looked up in the working directory
// when no path is given.
const FileName = "tcad.yaml"

// Config holds export defaults and paths. Zero values in a file fall back to
// the defaults of [Default].
type Config struct {
	Paper       string `yaml:"paper"`
	OutputDir   string `yaml:"output_dir,omitempty"`
	RecoveryDir string `yaml:"recovery_dir,omitempty"`
	LogLevel    string `yaml:"log_level"`

	SVG struct {
		ArrowMarker bool `yaml:"arrow_marker"`
	} `yaml:"svg"`
	DXF struct {
		SanitizeLayers bool `yaml:"sanitize_layers"`
	} `yaml:"dxf"`
	PNG struct {
		PixelsPerMM float64 `yaml:"pixels_per_mm"`
	} `yaml:"png"`
}

// Default returns the settings used when there is no config file: A4 paper,
// warnings only, and [export.DefaultPixelsPerMM].
func Default() Config {
	var c Config
	c.Paper = export.A4.Name
	c.LogLevel = "warn"
	c.PNG.PixelsPerMM = export.DefaultPixelsPerMM
	return c
}

// Load reads the config file at path on top of [Default]. A missing file is
// not an error and yields the defaults; a file that can't be parsed is.
func Load(path string) (Config, error) {
	c := Default()
	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return c, nil
	}
	if err != nil {
		return c, fmt.Errorf("config: %w", err)
	}
	if err := yaml.Unmarshal(data, &c); err != nil {
		return Default(), fmt.Errorf("config: %s: %w", path, err)
	}
	if c.PNG.PixelsPerMM <= 0 {
		c.PNG.PixelsPerMM = export.DefaultPixelsPerMM
	}
	return c, nil
}

// Save writes c to path as YAML, creating the parent directory if needed.
func Save(path string, c Config) error {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("config: %w", err)
		}
	}
	data, err := yaml.Marshal(&c)
	if err != nil {
		return fmt.Errorf("config: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("config: %w", err)
	}
	return nil
}

// ExportOptions returns the export options described by c.
func (c Config) ExportOptions() []export.Option {
	return []export.Option{
		export.WithPaper(c.Paper),
		export.WithArrowMarker(c.SVG.ArrowMarker),
		export.WithSanitizedLayers(c.DXF.SanitizeLayers),
		export.WithPixelsPerMM(c.PNG.PixelsPerMM),
	}
}

// Level parses LogLevel. Unknown names mean [slog.LevelWarn].
func (c Config) Level() slog.Level {
	switch strings.ToLower(strings.TrimSpace(c.LogLevel)) {
	case "debug":
		return slog.LevelDebug
	case "info":
		return slog.LevelInfo
	case "error":
		return slog.LevelError
	default:
		return slog.LevelWarn
	}
}
