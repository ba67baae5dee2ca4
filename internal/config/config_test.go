package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"ssac/internal/ir"
)

func TestDefault(t *testing.T) {
	cfg := Default()

	assert.Equal(t, ir.ModeMinimal, cfg.Optimize.Mode)
	assert.Equal(t, ir.RootsNone, cfg.Optimize.Roots)
	assert.Equal(t, DefaultMaxRounds, cfg.Optimize.MaxRounds)
	assert.False(t, cfg.Optimize.Verify)
	assert.Equal(t, DefaultDebounce, cfg.Debounce)
	assert.Empty(t, cfg.Path)
}

func TestParseFullConfig(t *testing.T) {
	cfg, err := Parse([]byte(`
[compiler]
version = ">= 0.1.0, < 1.0.0"

[optimize]
mode = "fixed-point"
max-rounds = 4
roots = "final-versions"
live-out = ["z", "total"]
verify = true

[log]
verbosity = 2

[watch]
debounce = "50ms"
`))
	require.NoError(t, err)

	assert.Equal(t, ir.PipelineOptions{
		Mode:      ir.ModeFixedPoint,
		MaxRounds: 4,
		Roots:     ir.RootsFinalVersions,
		LiveOut:   []string{"z", "total"},
		Verify:    true,
	}, cfg.Optimize)
	assert.Equal(t, 2, cfg.Verbosity)
	assert.Equal(t, 50*time.Millisecond, cfg.Debounce)
}

func TestParseKeepsDefaults(t *testing.T) {
	cfg, err := Parse([]byte("[optimize]\nverify = true\n"))
	require.NoError(t, err)

	assert.Equal(t, ir.ModeMinimal, cfg.Optimize.Mode)
	assert.Equal(t, DefaultMaxRounds, cfg.Optimize.MaxRounds)
	assert.True(t, cfg.Optimize.Verify)
	assert.Equal(t, DefaultDebounce, cfg.Debounce)

	empty, err := Parse(nil)
	require.NoError(t, err)
	assert.Equal(t, Default(), empty)
}

func TestParseInvalid(t *testing.T) {
	tests := []struct {
		name    string
		content string
		message string
	}{
		{"malformed toml", "[optimize\nmode = 1", ""},
		{"unknown mode", "[optimize]\nmode = \"aggressive\"", "unknown optimization mode"},
		{"unknown roots", "[optimize]\nroots = \"all\"", "unknown root policy"},
		{"negative rounds", "[optimize]\nmax-rounds = -1", "max-rounds"},
		{"negative verbosity", "[log]\nverbosity = -3", "verbosity"},
		{"bad debounce", "[watch]\ndebounce = \"soon\"", "debounce"},
		{"bad constraint", "[compiler]\nversion = \"not a version\"", "invalid compiler version constraint"},
		{"unsatisfied constraint", "[compiler]\nversion = \">= 2.0.0\"", "does not satisfy"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse([]byte(tt.content))
			require.Error(t, err)
			if tt.message != "" {
				assert.Contains(t, err.Error(), tt.message)
			}
		})
	}
}

func TestLoad(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, FileName)
	require.NoError(t, os.WriteFile(path, []byte("[optimize]\nmode = \"fixed-point\"\n"), 0o644))

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, path, cfg.Path)
	assert.Equal(t, ir.ModeFixedPoint, cfg.Optimize.Mode)

	_, err = Load(filepath.Join(dir, "missing.toml"))
	assert.Error(t, err)

	require.NoError(t, os.WriteFile(path, []byte("[optimize]\nmode = \"bogus\"\n"), 0o644))
	_, err = Load(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), path)
}

func TestFind(t *testing.T) {
	root := t.TempDir()
	nested := filepath.Join(root, "a", "b")
	require.NoError(t, os.MkdirAll(nested, 0o755))

	path := filepath.Join(root, FileName)
	require.NoError(t, os.WriteFile(path, []byte("[log]\nverbosity = 1\n"), 0o644))

	cfg, err := Find(nested)
	require.NoError(t, err)
	assert.Equal(t, path, cfg.Path)
	assert.Equal(t, 1, cfg.Verbosity)
}
