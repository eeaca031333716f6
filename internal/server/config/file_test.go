package config

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeTempJSON(t *testing.T, dir, name string, data map[string]any) string {
	t.Helper()
	if dir == "" {
		dir = t.TempDir()
	}
	if name == "" {
		name = "cfg.json"
	}
	path := filepath.Join(dir, name)
	b, err := json.Marshal(data)
	require.NoError(t, err)
	require.NoError(t, os.WriteFile(path, b, 0o600))
	return path
}

func Test_parseFile_SourcesAndPrecedence(t *testing.T) {
	origArgs := os.Args
	t.Cleanup(func() { os.Args = origArgs })

	dir := t.TempDir()
	pathFlag := writeTempJSON(t, dir, "flag.json", map[string]any{
		"grpc_addr":           "www.example:9000",
		"http_addr":           "www.example:9001",
		"database_dsn":        "postgres://db",
		"secret_key":          "my_secret_key",
		"session_window":      "10m",
		"rotation_interval":   "15s",
		"sweep_interval":      "2m",
		"attendance_timezone": "Europe/Riga",
		"public_base_url":     "https://attend.example",
		"redis_addr":          "redis:6379",
		"redis_password":      "pw",
		"redis_db":            2,
		"log_backend":         "zap",
		"log_level":           "debug",
		"subscriber_buffer":   64,
	})

	t.Run("loads from json", func(t *testing.T) {
		os.Args = []string{"testbin", "-config", pathFlag}

		cfg := &Config{}
		require.NoError(t, parseFile(cfg))

		assert.Equal(t, "www.example:9000", cfg.GRPCAddr)
		assert.Equal(t, "www.example:9001", cfg.HTTPAddr)
		assert.Equal(t, "postgres://db", cfg.DatabaseDSN)
		assert.Equal(t, "my_secret_key", cfg.SecretKey)
		assert.Equal(t, 10*time.Minute, cfg.SessionWindow)
		assert.Equal(t, 15*time.Second, cfg.RotationInterval)
		assert.Equal(t, 2*time.Minute, cfg.SweepInterval)
		assert.Equal(t, "Europe/Riga", cfg.AttendanceTimezone)
		assert.Equal(t, "https://attend.example", cfg.PublicBaseURL)
		assert.Equal(t, "redis:6379", cfg.RedisAddr)
		assert.Equal(t, "pw", cfg.RedisPassword)
		assert.Equal(t, 2, cfg.RedisDB)
		assert.Equal(t, "zap", cfg.LogBackend)
		assert.Equal(t, "debug", cfg.LogLevel)
		assert.Equal(t, 64, cfg.SubscriberBuffer)
	})

	t.Run("environment overrides file", func(t *testing.T) {
		os.Args = []string{"testbin", "-config", pathFlag}
		t.Setenv("QRATTEND_GRPC_ADDR", ":6000")
		t.Setenv("QRATTEND_ROTATION_INTERVAL", "45s")

		cfg := &Config{}
		require.NoError(t, parseFile(cfg))

		assert.Equal(t, ":6000", cfg.GRPCAddr)
		assert.Equal(t, 45*time.Second, cfg.RotationInterval)
		assert.Equal(t, "www.example:9001", cfg.HTTPAddr)
	})

	t.Run("no config and no env → no changes", func(t *testing.T) {
		os.Args = []string{"testbin"}

		cfg := &Config{}
		cfg.LoadDefaults()
		want := *cfg
		require.NoError(t, parseFile(cfg))

		assert.Equal(t, want, *cfg)
	})

	t.Run("invalid JSON → error", func(t *testing.T) {
		bad := filepath.Join(dir, "bad.json")
		require.NoError(t, os.WriteFile(bad, []byte(`{ this is not valid json`), 0o600))

		os.Args = []string{"testbin", "-config", bad}

		cfg := &Config{}
		require.Error(t, parseFile(cfg))
	})

	t.Run("missing file → error", func(t *testing.T) {
		os.Args = []string{"testbin", "-c", filepath.Join(dir, "absent.json")}

		cfg := &Config{}
		require.Error(t, parseFile(cfg))
	})
}

func Test_loadDotEnv(t *testing.T) {
	dir := t.TempDir()

	t.Run("missing file is ignored", func(t *testing.T) {
		require.NoError(t, loadDotEnv(filepath.Join(dir, "absent.env")))
	})

	t.Run("exports values that parseFile then sees", func(t *testing.T) {
		origArgs := os.Args
		t.Cleanup(func() { os.Args = origArgs })
		os.Args = []string{"testbin"}

		path := filepath.Join(dir, ".env")
		require.NoError(t, os.WriteFile(path, []byte("QRATTEND_PUBLIC_BASE_URL=https://dotenv.example\n"), 0o600))
		t.Setenv("QRATTEND_PUBLIC_BASE_URL", "")
		require.NoError(t, os.Unsetenv("QRATTEND_PUBLIC_BASE_URL"))

		require.NoError(t, loadDotEnv(path))

		cfg := &Config{}
		require.NoError(t, parseFile(cfg))
		assert.Equal(t, "https://dotenv.example", cfg.PublicBaseURL)
	})
}
