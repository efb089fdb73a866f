package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))
	return path
}

func TestLoadConfigDefaults(t *testing.T) {
	cfg, err := LoadConfig(filepath.Join(t.TempDir(), "missing.yaml"))
	require.NoError(t, err)
	require.Equal(t, "3001", cfg.Server.Port)
	require.Equal(t, 3, cfg.Scheduler.TopK)
	require.Equal(t, 1.0, cfg.Weights.Grading)

	sc := cfg.SchedulerConfiguration()
	require.Equal(t, 10*time.Second, sc.Timeout)
	require.Equal(t, int64(0), sc.MaxCombinations)
}

func TestLoadConfigFileAndEnv(t *testing.T) {
	path := writeConfig(t, `
server:
  port: "9000"
scheduler:
  top_k: 7
  max_combinations: 100000
  timeout: 2s
weights:
  homework: 0.5
logging:
  level: debug
  pretty: false
`)
	t.Setenv("WIZARD_TOP_K", "4")
	t.Setenv("WIZARD_WEIGHT_TEAM", "2.5")
	t.Setenv("WIZARD_LOG_PRETTY", "yes")

	cfg, err := LoadConfig(path)
	require.NoError(t, err)
	require.Equal(t, "9000", cfg.Server.Port)
	require.Equal(t, 4, cfg.Scheduler.TopK)
	require.Equal(t, int64(100000), cfg.Scheduler.MaxCombinations)
	require.Equal(t, "debug", cfg.Logging.Level)
	require.True(t, cfg.Logging.Pretty)

	w := cfg.PreferenceWeights()
	require.Equal(t, 0.5, w.Homework)
	require.Equal(t, 2.5, w.TeamProject)
	require.Equal(t, 1.0, w.Grading)

	require.Equal(t, 2*time.Second, cfg.SchedulerConfiguration().Timeout)
}

func TestLoadConfigInvalid(t *testing.T) {
	_, err := LoadConfig(writeConfig(t, "scheduler:\n  timeout: soon\n"))
	require.ErrorIs(t, err, ErrInvalidConfig)

	_, err = LoadConfig(writeConfig(t, "weights:\n  grading: -1\n"))
	require.ErrorIs(t, err, ErrInvalidConfig)

	_, err = LoadConfig(writeConfig(t, "server: [unclosed"))
	require.Error(t, err)

	t.Setenv("WIZARD_TOP_K", "many")
	_, err = LoadConfig("")
	require.Error(t, err)
}
