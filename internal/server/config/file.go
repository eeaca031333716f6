package config

import (
	"errors"
	"fmt"
	"io/fs"
	"strings"

	"github.com/dmitrijs2005/qrattend/internal/flagx"
	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// EnvPrefix prefixes every environment variable the server reads,
// e.g. QRATTEND_DATABASE_DSN.
const EnvPrefix = "QRATTEND"

// File and environment keys.
const (
	keyGRPCAddr           = "grpc_addr"
	keyHTTPAddr           = "http_addr"
	keyDatabaseDSN        = "database_dsn"
	keySecretKey          = "secret_key"
	keySessionWindow      = "session_window"
	keyRotationInterval   = "rotation_interval"
	keySweepInterval      = "sweep_interval"
	keyAttendanceTimezone = "attendance_timezone"
	keyPublicBaseURL      = "public_base_url"
	keyRedisAddr          = "redis_addr"
	keyRedisPassword      = "redis_password"
	keyRedisDB            = "redis_db"
	keyLogBackend         = "log_backend"
	keyLogLevel           = "log_level"
	keySubscriberBuffer   = "subscriber_buffer"
)

// loadDotEnv exports variables from a dotenv file into the process
// environment. Variables already set are left untouched; a missing file is
// not an error.
func loadDotEnv(path string) error {
	err := godotenv.Load(path)
	if err == nil || errors.Is(err, fs.ErrNotExist) {
		return nil
	}
	return fmt.Errorf("load %s: %w", path, err)
}

// newViper returns a viper instance bound to QRATTEND_* variables and, when
// the -c/-config flag names one, to a JSON or YAML config file.
func newViper() (*viper.Viper, error) {
	v := viper.New()
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	path := flagx.ConfigPath()
	if path == "" {
		return v, nil
	}

	v.SetConfigFile(path)
	if err := v.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("read config %s: %w", path, err)
	}
	return v, nil
}

// parseFile overlays values found in the environment or config file onto
// config. Keys that are not set keep their current values. Durations accept
// Go duration strings such as "30s" or "5m".
func parseFile(config *Config) error {
	v, err := newViper()
	if err != nil {
		return err
	}

	str := func(key string, dst *string) {
		if v.IsSet(key) {
			*dst = v.GetString(key)
		}
	}

	str(keyGRPCAddr, &config.GRPCAddr)
	str(keyHTTPAddr, &config.HTTPAddr)
	str(keyDatabaseDSN, &config.DatabaseDSN)
	str(keySecretKey, &config.SecretKey)
	str(keyAttendanceTimezone, &config.AttendanceTimezone)
	str(keyPublicBaseURL, &config.PublicBaseURL)
	str(keyRedisAddr, &config.RedisAddr)
	str(keyRedisPassword, &config.RedisPassword)
	str(keyLogBackend, &config.LogBackend)
	str(keyLogLevel, &config.LogLevel)

	if v.IsSet(keySessionWindow) {
		config.SessionWindow = v.GetDuration(keySessionWindow)
	}
	if v.IsSet(keyRotationInterval) {
		config.RotationInterval = v.GetDuration(keyRotationInterval)
	}
	if v.IsSet(keySweepInterval) {
		config.SweepInterval = v.GetDuration(keySweepInterval)
	}
	if v.IsSet(keyRedisDB) {
		config.RedisDB = v.GetInt(keyRedisDB)
	}
	if v.IsSet(keySubscriberBuffer) {
		config.SubscriberBuffer = v.GetInt(keySubscriberBuffer)
	}

	return nil
}
