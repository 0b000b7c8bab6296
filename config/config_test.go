package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/tabopt/config"
	"github.com/katalvlaran/tabopt/solver"
)

func TestLoad_Defaults(t *testing.T) {
	cfg, err := config.Load("")
	require.NoError(t, err)
	require.Equal(t, config.Default(), cfg)
	require.Equal(t, solver.DefaultOptions(), cfg.SolverOptions())
}

func TestLoad_FileAndEnv(t *testing.T) {
	path := filepath.Join(t.TempDir(), "tabopt.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`
log_level: debug
log_format: json
journal_path: /tmp/solves.csv
tolerance: 1e-8
`), 0o600))
	t.Setenv("TABOPT_LOG_LEVEL", "warn")
	t.Setenv("TABOPT_ROUND_SCALE", "1000")

	cfg, err := config.Load(path)
	require.NoError(t, err)
	require.Equal(t, "warn", cfg.LogLevel, "environment beats the file")
	require.Equal(t, "json", cfg.LogFormat)
	require.Equal(t, "/tmp/solves.csv", cfg.JournalPath)
	require.Equal(t, 1e-8, cfg.Tolerance)
	require.Equal(t, 1000.0, cfg.RoundScale)
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := config.Load(filepath.Join(t.TempDir(), "absent.yaml"))
	require.Error(t, err)
}

func TestValidate(t *testing.T) {
	good := config.Default()
	require.NoError(t, good.Validate())

	bad := good
	bad.LogLevel = "loud"
	bad.LogFormat = "xml"
	bad.Tolerance = 0
	bad.RoundScale = -1
	err := bad.Validate()
	require.Error(t, err)
	for _, field := range []string{"log_level", "log_format", "tolerance", "round_scale"} {
		require.Contains(t, err.Error(), field)
	}
}

func TestDecode_RejectsInvalid(t *testing.T) {
	v := config.New()
	v.Set(config.KeyLogFormat, "xml")
	_, err := config.Decode(v)
	require.Error(t, err)
}
