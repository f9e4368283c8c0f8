package main

import (
	"bytes"
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tir2sum-maker/motor-prep-analyzer/internal/config"
	"github.com/tir2sum-maker/motor-prep-analyzer/internal/logging"
)

func TestBuildEngine(t *testing.T) {
	cfg := config.DefaultConfig().Analysis
	cfg.MatchDuration = 80

	engine, err := buildEngine(cfg)
	require.NoError(t, err)
	assert.Equal(t, 80.0, engine.MatchDuration)
	assert.Equal(t, 6.0, engine.MonthsBetween)
	assert.Equal(t, 1.80, engine.Reference(17).Sprint10m.Mean)
}

func TestBuildEngine_ReferenceFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "norms.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`
ages:
  17:
    sprint_10m: {mean: 1.7, sd: 0.1}
    sprint_30m: {mean: 4.0, sd: 0.1}
    cod: {mean: 2.2, sd: 0.1}
`), 0o644))

	cfg := config.DefaultConfig().Analysis
	cfg.ReferenceFile = path

	engine, err := buildEngine(cfg)
	require.NoError(t, err)
	assert.Equal(t, 1.7, engine.Reference(15).Sprint10m.Mean, "custom table falls back to its own entry")

	cfg.ReferenceFile = filepath.Join(t.TempDir(), "missing.yaml")
	_, err = buildEngine(cfg)
	assert.Error(t, err)
}

func TestSetup_CommandLine(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	e, err := setup(options{dbPath: filepath.Join(home, "squad.db")}, false)
	require.NoError(t, err)
	defer e.closer()

	assert.FileExists(t, filepath.Join(home, ".motorprep", "config.json"), "first run writes the example config")
	assert.FileExists(t, filepath.Join(home, "squad.db"))

	roster, err := e.roster.ListPlayers(context.Background())
	require.NoError(t, err)
	assert.Empty(t, roster)
}

func TestSetup_InvalidConfig(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.json")
	require.NoError(t, os.WriteFile(path, []byte(`{"analysis": {"workers": 0}}`), 0o600))

	_, err := setup(options{configPath: path}, false)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "analysis.workers")
}

func TestExitOnError(t *testing.T) {
	var buf bytes.Buffer
	log := logging.New("error", "text", &buf)

	code := -1
	log.ExitFunc = func(c int) { code = c }

	exitOnError(log, nil)
	assert.Equal(t, -1, code)
	assert.Empty(t, buf.String())

	exitOnError(log, errors.New("player abc not found"))
	assert.Equal(t, 1, code)
	assert.Contains(t, buf.String(), "level=fatal")
	assert.Contains(t, buf.String(), "player abc not found")
}
