package config

import (
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/eggfriedrice24/tcad/export"
)

func TestLoadMissing(t *testing.T) {
	c, err := Load(filepath.Join(t.TempDir(), FileName))
	require.NoError(t, err)
	assert.Equal(t, Default(), c)
}

func TestLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), FileName)
	doc := `paper: letter
output_dir: out
log_level: DEBUG
svg:
  arrow_marker: true
dxf:
  sanitize_layers: true
png:
  pixels_per_mm: 2.5
`
	require.NoError(t, os.WriteFile(path, []byte(doc), 0o644))

	c, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "letter", c.Paper)
	assert.Equal(t, "out", c.OutputDir)
	assert.Equal(t, slog.LevelDebug, c.Level())

	o := export.NewOptions(c.ExportOptions()...)
	assert.Equal(t, export.Letter, o.Paper)
	assert.True(t, o.ArrowMarker)
	assert.True(t, o.SanitizeLayers)
	assert.Equal(t, 2.5, o.PixelsPerMM)
}

func TestLoadPartial(t *testing.T) {
	path := filepath.Join(t.TempDir(), FileName)
	require.NoError(t, os.WriteFile(path, []byte("png:\n  pixels_per_mm: -3\n"), 0o644))

	c, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "A4", c.Paper)
	assert.Equal(t, export.DefaultPixelsPerMM, c.PNG.PixelsPerMM)
	assert.Equal(t, slog.LevelWarn, c.Level())
}

func TestLoadInvalid(t *testing.T) {
	path := filepath.Join(t.TempDir(), FileName)
	require.NoError(t, os.WriteFile(path, []byte("paper: [unterminated"), 0o644))

	c, err := Load(path)
	assert.Error(t, err)
	assert.Equal(t, Default(), c)
}

func TestSaveLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", FileName)
	c := Default()
	c.Paper = "Letter"
	c.RecoveryDir = "/tmp/tcad"
	c.SVG.ArrowMarker = true
	require.NoError(t, Save(path, c))

	got, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, c, got)
}

func TestLevel(t *testing.T) {
	for in, want := range map[string]slog.Level{
		"debug":  slog.LevelDebug,
		" Info ": slog.LevelInfo,
		"warn":   slog.LevelWarn,
		"error":  slog.LevelError,
		"":       slog.LevelWarn,
		"loud":   slog.LevelWarn,
	} {
		c := Config{LogLevel: in}
		assert.Equal(t, want, c.Level(), in)
	}
}
