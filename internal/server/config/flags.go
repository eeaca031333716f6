package config

import (
	"flag"
	"os"

	"github.com/dmitrijs2005/qrattend/internal/flagx"
)

// parseFlags populates selected server Config fields from command-line flags.
//
// Supported flags:
//
//	-a string       gRPC bind address (e.g., ":50051")
//	-h string       HTTP bind address (e.g., ":8080")
//	-d string       PostgreSQL DSN
//	-s string       JWT HMAC secret key
//	-w duration     session window (e.g., "5m")
//	-i duration     token rotation interval (e.g., "30s")
//	-z string       attendance timezone (IANA name)
//	-u string       public base URL for scan links
//	-r string       Redis address for rotation leases
//	-log string     log backend, "slog" or "zap"
//	-level string   log level
//
// The function first filters os.Args to only the flags it recognizes using
// flagx.FilterArgs, so the -c/-config flag handled elsewhere does not collide.
func parseFlags(config *Config) error {
	args := flagx.FilterArgs(os.Args[1:], []string{"-a", "-h", "-d", "-s", "-w", "-i", "-z", "-u", "-r", "-log", "-level"})

	fs := flag.NewFlagSet("main", flag.ContinueOnError)

	fs.StringVar(&config.GRPCAddr, "a", config.GRPCAddr, "gRPC address and port")
	fs.StringVar(&config.HTTPAddr, "h", config.HTTPAddr, "HTTP address and port")
	fs.StringVar(&config.DatabaseDSN, "d", config.DatabaseDSN, "database DSN")
	fs.StringVar(&config.SecretKey, "s", config.SecretKey, "secret key")
	fs.DurationVar(&config.SessionWindow, "w", config.SessionWindow, "session window")
	fs.DurationVar(&config.RotationInterval, "i", config.RotationInterval, "token rotation interval")
	fs.StringVar(&config.AttendanceTimezone, "z", config.AttendanceTimezone, "attendance timezone")
	fs.StringVar(&config.PublicBaseURL, "u", config.PublicBaseURL, "public base URL")
	fs.StringVar(&config.RedisAddr, "r", config.RedisAddr, "redis address")
	fs.StringVar(&config.LogBackend, "log", config.LogBackend, "log backend (slog|zap)")
	fs.StringVar(&config.LogLevel, "level", config.LogLevel, "log level")

	return fs.Parse(args)
}
