package config

import (
	"fmt"
	"strings"

	"github.com/dmitrijs2005/qrattend/internal/flagx"
	"github.com/spf13/viper"
)

// EnvPrefix prefixes the environment variables the CLI reads, e.g.
// QRATTEND_CLI_ACCESS_TOKEN.
const EnvPrefix = "QRATTEND_CLI"

const (
	keyServerEndpointAddr  = "server_endpoint_addr"
	keyOnlineCheckInterval = "online_check_interval"
	keyAccessToken         = "access_token"
)

// parseFile overlays Config with values from QRATTEND_CLI_* variables and
// the file named by -c/-config. Keys that are not set keep their values.
func parseFile(cfg *Config) error {
	v := viper.New()
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if path := flagx.ConfigPath(); path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return fmt.Errorf("read config %s: %w", path, err)
		}
	}

	if v.IsSet(keyServerEndpointAddr) {
		cfg.ServerEndpointAddr = v.GetString(keyServerEndpointAddr)
	}
	if v.IsSet(keyOnlineCheckInterval) {
		cfg.OnlineCheckInterval = v.GetDuration(keyOnlineCheckInterval)
	}
	if v.IsSet(keyAccessToken) {
		cfg.AccessToken = v.GetString(keyAccessToken)
	}
	return nil
}
