package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func writeTempConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "run.yaml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))
	return path
}

// TestResolveConfig_Defaults: no flags, no file — the classic workflow values.
func TestResolveConfig_Defaults(t *testing.T) {
	cfg, err := resolveConfig(nil)
	require.NoError(t, err)
	require.Equal(t, defaultConfig(), cfg)
}

// TestResolveConfig_FlagsOnly: explicit flags replace defaults.
func TestResolveConfig_FlagsOnly(t *testing.T) {
	cfg, err := resolveConfig([]string{"-n", "20", "-steps", "500", "-seed", "9"})
	require.NoError(t, err)
	require.Equal(t, 20, cfg.ChainLength)
	require.Equal(t, 500, cfg.Steps)
	require.Equal(t, int64(9), cfg.Seed)
	require.Equal(t, defaultConfig().SampleEvery, cfg.SampleEvery)
}

// TestResolveConfig_FileThenFlags: file values overlay defaults, explicit
// flags overlay the file.
func TestResolveConfig_FileThenFlags(t *testing.T) {
	path := writeTempConfig(t, "chain_length: 16\nsteps: 4000\nhp_sequence: HPPH\n")

	cfg, err := resolveConfig([]string{"-config", path, "-steps", "100"})
	require.NoError(t, err)
	require.Equal(t, 16, cfg.ChainLength, "file value applies")
	require.Equal(t, 100, cfg.Steps, "explicit flag wins over file")
	require.Equal(t, "HPPH", cfg.HPSequence)
	require.Equal(t, defaultConfig().Seed, cfg.Seed, "untouched keys keep defaults")
}

// TestResolveConfig_UnknownKeyRejected: typos must fail loudly, not run
// silently on defaults.
func TestResolveConfig_UnknownKeyRejected(t *testing.T) {
	path := writeTempConfig(t, "chain_lenght: 16\n")
	_, err := resolveConfig([]string{"-config", path})
	require.Error(t, err)
}

// TestResolveConfig_MissingFile surfaces the read error.
func TestResolveConfig_MissingFile(t *testing.T) {
	_, err := resolveConfig([]string{"-config", filepath.Join(t.TempDir(), "absent.yaml")})
	require.Error(t, err)
}
