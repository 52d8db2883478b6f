// Package config loads runtime configuration for the loandesk CLI.
//
// Sources & precedence
//
//  1. Built-in defaults (see (*Config).LoadDefaults).
//  2. Optional JSON file (see parseJson) selected via flags: -c or -config.
//  3. Command-line flags (see parseFlags), which override earlier values.
//
// Supported flags
//
//	-l int      data-service latency (milliseconds, default 300)
//	-w int      workflow action latency (milliseconds, default 1000)
//	-t int      session lifetime (minutes, default 480)
//	-s string   session token secret key
//	-b string   broker id (default "1")
//	-m string   theme, light or dark
//	-f string   log backend, slog or zerolog
//	-v string   log level
//	-d string   YAML data fixture path
//
// # JSON schema
//
// Durations use timex.Duration, so values can be either strings like "300ms"
// or integer nanoseconds:
//
//	{
//	  "data_latency": "300ms",
//	  "action_latency": "1s",
//	  "session_ttl": "8h",
//	  "broker_id": "1",
//	  "theme": "dark",
//	  "log_format": "zerolog",
//	  "log_level": "debug",
//	  "fixture_path": "./demo.yaml"
//	}
//
// Note: This package does not read environment variables directly; use the
// JSON file or flags to configure values.
package config
