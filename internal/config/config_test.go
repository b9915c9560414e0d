package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestLoadMissingFile(t *testing.T) {
	t.Setenv("JYADMIN_CONFIG_DIR", t.TempDir())
	t.Setenv("JYADMIN_API_URL", "")
	t.Setenv("JYADMIN_TIMEOUT_SECONDS", "")

	cfg, err := Load()
	require.NoError(t, err)
	require.Equal(t, DefaultBaseURL, cfg.BaseURL())
	require.Equal(t, 30*time.Second, cfg.Timeout())
}

func TestSaveLoadRoundTrip(t *testing.T) {
	t.Setenv("JYADMIN_CONFIG_DIR", t.TempDir())
	t.Setenv("JYADMIN_API_URL", "")
	t.Setenv("JYADMIN_TIMEOUT_SECONDS", "")

	require.NoError(t, Save(Config{APIBaseURL: "http://localhost:9000/", TimeoutSeconds: 5}))

	cfg, err := Load()
	require.NoError(t, err)
	require.Equal(t, "http://localhost:9000", cfg.BaseURL(), "trailing slash is trimmed")
	require.Equal(t, 5*time.Second, cfg.Timeout())
}

func TestEnvOverrides(t *testing.T) {
	t.Setenv("JYADMIN_CONFIG_DIR", t.TempDir())
	require.NoError(t, Save(Config{APIBaseURL: "http://file-wins"}))

	t.Setenv("JYADMIN_API_URL", "http://env-wins")
	t.Setenv("JYADMIN_TIMEOUT_SECONDS", "12")

	cfg, err := Load()
	require.NoError(t, err)
	require.Equal(t, "http://env-wins", cfg.BaseURL())
	require.Equal(t, 12*time.Second, cfg.Timeout())
}

func TestBadTimeoutEnvIgnored(t *testing.T) {
	t.Setenv("JYADMIN_CONFIG_DIR", t.TempDir())
	t.Setenv("JYADMIN_API_URL", "")
	t.Setenv("JYADMIN_TIMEOUT_SECONDS", "not-a-number")

	cfg, err := Load()
	require.NoError(t, err)
	require.Equal(t, 30*time.Second, cfg.Timeout())
}
