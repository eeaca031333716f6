// Package config loads runtime configuration for the attendance CLI.
//
// Sources & precedence
//
//  1. Built-in defaults (see (*Config).LoadDefaults).
//  2. QRATTEND_CLI_* environment variables and an optional JSON or YAML file
//     selected via -c or -config (see parseFile).
//  3. Command-line flags (see parseFlags), which override earlier values.
//
// Supported flags
//
//	-a string     address:port of the backend gRPC endpoint
//	-i int        online status check interval (seconds)
//	-t string     teacher access token
//
// # File schema
//
//	{
//	  "server_endpoint_addr": "127.0.0.1:50051",
//	  "online_check_interval": "3s",
//	  "access_token": "eyJ..."
//	}
package config
