package internal

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewConfigDefaults(t *testing.T) {
	cfg, err := NewConfig(&Options{Descriptors: []string{"hero.json"}})
	require.NoError(t, err)

	assert.Equal(t, TargetSplit, cfg.Target)
	assert.Equal(t, DefaultHeader, cfg.Header)
	assert.Equal(t, DefaultSource, cfg.Source)
	assert.Equal(t, DefaultSentinel, cfg.Sentinel)
	assert.Equal(t, []string{"hero.json"}, cfg.DescriptorPaths())
}

func TestNewConfigPrecedence(t *testing.T) {
	dir := t.TempDir()
	path := writeFile(t, dir, "sheetgen.yaml", `
base: ../res
target: header
header: include/sprites.h
sentinel: GENERATED BELOW
descriptors:
  - tile_wall.json
`)

	cfg, err := NewConfig(&Options{
		Values:      map[string]string{"-config": path, "-header": "override.h"},
		Descriptors: []string{"hero.json", "/abs/boss.json"},
	})
	require.NoError(t, err)

	assert.Equal(t, TargetHeader, cfg.Target)
	assert.Equal(t, "override.h", cfg.Header)
	assert.Equal(t, "GENERATED BELOW", cfg.Sentinel)
	assert.Equal(t, DefaultSource, cfg.Source)
	assert.Equal(t, []string{
		filepath.Join("../res", "tile_wall.json"),
		filepath.Join("../res", "hero.json"),
		"/abs/boss.json",
	}, cfg.DescriptorPaths())
}

func TestNewConfigErrors(t *testing.T) {
	dir := t.TempDir()
	badKey := writeFile(t, dir, "bad.yaml", "destination: x.h\n")

	tests := []struct {
		name     string
		opts     *Options
		expected error
	}{
		{
			name:     "no descriptors",
			opts:     &Options{Values: map[string]string{}},
			expected: ErrUsage,
		},
		{
			name:     "invalid target",
			opts:     &Options{Values: map[string]string{"-target": "nested"}, Descriptors: []string{"a.json"}},
			expected: ErrUsage,
		},
		{
			name:     "empty sentinel",
			opts:     &Options{Values: map[string]string{"-sentinel": ""}, Descriptors: []string{"a.json"}},
			expected: ErrUsage,
		},
		{
			name:     "go target without package",
			opts:     &Options{Values: map[string]string{"-target": "go", "-package": ""}, Descriptors: []string{"a.json"}},
			expected: ErrUsage,
		},
		{
			name:     "missing config file",
			opts:     &Options{Values: map[string]string{"-config": filepath.Join(dir, "nope.yaml")}, Descriptors: []string{"a.json"}},
			expected: ErrMissingInput,
		},
		{
			name:     "unknown config key",
			opts:     &Options{Values: map[string]string{"-config": badKey}, Descriptors: []string{"a.json"}},
			expected: ErrUsage,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewConfig(tt.opts)
			require.Error(t, err)
			assert.ErrorIs(t, err, tt.expected)
		})
	}
}

func TestLoadConfigFileEmpty(t *testing.T) {
	path := writeFile(t, t.TempDir(), "empty.yaml", "")
	cfg, err := LoadConfigFile(path)
	require.NoError(t, err)
	assert.Equal(t, &Config{}, cfg)
}
