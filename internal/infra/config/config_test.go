package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParse(t *testing.T) {
	tests := []struct {
		name    string
		yaml    string
		wantErr bool
		errMsg  string
		check   func(t *testing.T, cfg *Config)
	}{
		{
			name: "values with defaults",
			yaml: `
data:
  values: ["Q1", "Q2", "Q3"]
`,
			check: func(t *testing.T, cfg *Config) {
				assert.Equal(t, "info", cfg.Log.Level)
				assert.Equal(t, "stderr", cfg.Log.Output)
				assert.Equal(t, "Year", cfg.Data.Field)
				assert.Equal(t, []any{"Q1", "Q2", "Q3"}, cfg.Categories())
			},
		},
		{
			name: "range",
			yaml: `
data:
  field: Decade
  range: {from: 1950, to: 1990, step: 10}
`,
			check: func(t *testing.T, cfg *Config) {
				assert.Equal(t, "Decade", cfg.Data.Field)
				assert.Equal(t, []any{1950, 1960, 1970, 1980, 1990}, cfg.Categories())
			},
		},
		{
			name: "objects are kept as property bags",
			yaml: `
data:
  range: {from: 2000, to: 2002}
objects:
  transitionSettings:
    autoStart: true
    timeInterval: 750
`,
			check: func(t *testing.T, cfg *Config) {
				assert.Equal(t, 1, cfg.Data.Range.Step)
				assert.Equal(t, true, cfg.Objects["transitionSettings"]["autoStart"])
				assert.Equal(t, 750, cfg.Objects["transitionSettings"]["timeInterval"])
			},
		},
		{
			name:    "no data",
			yaml:    `log: {level: debug}`,
			wantErr: true,
			errMsg:  "either values or range",
		},
		{
			name: "inverted range",
			yaml: `
data:
  range: {from: 2020, to: 2010}
`,
			wantErr: true,
			errMsg:  "must not be before",
		},
		{
			name: "bad log level",
			yaml: `
log: {level: chatty}
data: {values: [a]}
`,
			wantErr: true,
			errMsg:  "Level",
		},
		{
			name:    "malformed yaml",
			yaml:    "data: [",
			wantErr: true,
			errMsg:  "failed to parse config file",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg, err := Parse([]byte(tt.yaml))
			if tt.wantErr {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.errMsg)
				return
			}
			require.NoError(t, err)
			tt.check(t, cfg)
		})
	}
}

func TestParse_EnvOverrides(t *testing.T) {
	t.Setenv(EnvLogLevel, "debug")
	t.Setenv(EnvTimeIntervalMs, "2500")

	cfg, err := Parse([]byte("data: {values: [a, b]}"))
	require.NoError(t, err)

	assert.Equal(t, "debug", cfg.Log.Level)
	assert.Equal(t, 2500, cfg.Objects["transitionSettings"]["timeInterval"])
}

func TestParse_InvalidIntervalEnv(t *testing.T) {
	t.Setenv(EnvTimeIntervalMs, "fast")

	_, err := Parse([]byte("data: {values: [a]}"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), EnvTimeIntervalMs)
}

func TestLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "playaxis.yaml")
	require.NoError(t, os.WriteFile(path, []byte("data: {values: [x]}"), 0o644))

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, []any{"x"}, cfg.Categories())

	_, err = Load(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)
}
