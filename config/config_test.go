package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, body string) string {
	path := filepath.Join(t.TempDir(), "crabsim.yaml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))
	return path
}

func TestLoad(t *testing.T) {
	t.Run("no file gives defaults", func(t *testing.T) {
		cfg, err := Load("")
		require.NoError(t, err)
		require.Equal(t, Default(), cfg)
		require.Equal(t, '#', cfg.CubeGlyph())
	})

	t.Run("file overrides some fields", func(t *testing.T) {
		path := writeConfig(t, `
log_level: debug
combat:
  short_circuit: true
cubes:
  ticks: 3
  dimensions: [2, 5]
`)
		cfg, err := Load(path)
		require.NoError(t, err)

		require.True(t, cfg.Combat.ShortCircuit)
		require.Equal(t, Default().Combat.MaxRounds, cfg.Combat.MaxRounds)
		require.Equal(t, 3, cfg.Cubes.Ticks)
		require.Equal(t, [2]int{2, 5}, cfg.Cubes.Dimensions)
		require.Equal(t, Default().Tiles, cfg.Tiles)

		level, err := cfg.Level()
		require.NoError(t, err)
		require.Equal(t, zerolog.DebugLevel, level)
	})

	t.Run("environment overrides the file", func(t *testing.T) {
		t.Setenv("CRABSIM_SHORT_CIRCUIT", "false")
		t.Setenv("CRABSIM_RECORDS_DIR", "out")
		path := writeConfig(t, "combat:\n  short_circuit: true\n")

		cfg, err := Load(path)
		require.NoError(t, err)
		require.False(t, cfg.Combat.ShortCircuit)
		require.Equal(t, "out", cfg.Combat.RecordsDir)
	})

	failures := map[string]string{
		"bad yaml":        "combat: [",
		"bad level":       "log_level: loud\n",
		"zero max rounds": "combat:\n  max_rounds: 0\n",
		"flat cubes":      "cubes:\n  dimensions: [1, 3]\n",
		"inactive glyph":  "cubes:\n  glyph: \".\"\n",
		"zero max ticks":  "seating:\n  max_ticks: 0\n",
	}
	for name, body := range failures {
		t.Run(name, func(t *testing.T) {
			_, err := Load(writeConfig(t, body))
			require.Error(t, err)
		})
	}

	t.Run("missing file", func(t *testing.T) {
		_, err := Load(filepath.Join(t.TempDir(), "absent.yaml"))
		require.Error(t, err)
	})
}
