package main

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/juju/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseCfg(t *testing.T) {
	cfg, err := ParseCfg([]byte(`{ "Workers": 2, "Items": ["a", "b", "c"], "DelayMs": 0 }`))
	require.NoError(t, err)

	assert.Equal(t, 2, cfg.Workers)
	assert.Equal(t, []string{"a", "b", "c"}, cfg.Items)
	assert.Equal(t, time.Duration(0), cfg.Delay)
}

func TestParseCfg_Defaults(t *testing.T) {
	cfg, err := ParseCfg([]byte(`{}`))
	require.NoError(t, err)

	assert.Equal(t, NewCfg(), cfg)
}

func TestParseCfg_Invalid(t *testing.T) {
	_, err := ParseCfg([]byte(`{ "Workers": "many" }`))
	assert.True(t, errors.Is(err, errors.NotValid))

	_, err = ParseCfg([]byte(`{ "Workers": 0 }`))
	assert.True(t, errors.Is(err, errors.NotValid))

	_, err = ParseCfg([]byte(`[]`))
	assert.True(t, errors.Is(err, errors.NotValid))
}

func TestLoadCfg(t *testing.T) {
	path := filepath.Join(t.TempDir(), "cfg.json")
	require.NoError(t, os.WriteFile(path, []byte(`{ "Items": ["x"] }`), 0o600))

	cfg, err := LoadCfg(path)
	require.NoError(t, err)
	assert.Equal(t, []string{"x"}, cfg.Items)

	_, err = LoadCfg(filepath.Join(t.TempDir(), "missing.json"))
	assert.Error(t, err)
}

func TestRun(t *testing.T) {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	cfg := NewCfg().WithWorkers(3).WithDelay(0).WithItems([]string{"a", "b", "a", "c", "b", "a"})
	assert.NoError(t, run(ctx, cfg))
}

func TestRun_NoItems(t *testing.T) {
	assert.NoError(t, run(context.Background(), NewCfg()))
}
