package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestDefault(t *testing.T) {
	cfg := Default()
	require.Equal(t, []string{"MemGen_16_10", "PLL"}, cfg.EmptyLeafCells)
}

func TestLoadOverridesDefault(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "vnetlist.yaml")
	require.NoError(t, os.WriteFile(path, []byte("emptyLeafCells:\n  - CustomMacro\n"), 0o644))

	cfg, err := Load(path)
	require.NoError(t, err)
	require.Equal(t, []string{"CustomMacro"}, cfg.EmptyLeafCells)
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	require.Error(t, err)
}

func TestLoadMalformedYAML(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "bad.yaml")
	require.NoError(t, os.WriteFile(path, []byte("emptyLeafCells: [unterminated"), 0o644))

	_, err := Load(path)
	require.Error(t, err)
}
