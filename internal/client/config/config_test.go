package config

import (
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	var c Config
	c.LoadDefaults()

	assert.Equal(t, "127.0.0.1:50051", c.ServerEndpointAddr)
	assert.Equal(t, 3*time.Second, c.OnlineCheckInterval)
	assert.Empty(t, c.AccessToken)
}

func TestLoadConfig_FlagsWinOverEnv(t *testing.T) {
	origArgs := os.Args
	t.Cleanup(func() { os.Args = origArgs })

	t.Setenv("QRATTEND_CLI_SERVER_ENDPOINT_ADDR", "env:1")
	t.Setenv("QRATTEND_CLI_ACCESS_TOKEN", "env-token")
	os.Args = []string{"testbin", "-a", "flag:2"}

	cfg, err := LoadConfig()
	require.NoError(t, err)
	assert.Equal(t, "flag:2", cfg.ServerEndpointAddr)
	assert.Equal(t, "env-token", cfg.AccessToken)
	assert.Equal(t, 3*time.Second, cfg.OnlineCheckInterval)
}
