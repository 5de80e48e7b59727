// Package config loads runtime configuration for the user console.
//
// Sources & precedence
//
//  1. Built-in defaults (see (*Config).LoadDefaults).
//  2. Optional JSON file (see parseJson) selected via flags: -c or -config.
//  3. Command-line flags (see parseFlags), which override earlier values.
//
// Supported flags
//
//	-a string   URL of the user collection endpoint
//	-t int      per-request timeout in seconds (0 keeps the transport default)
//	-l string   log level: debug, info, warn, error
//	-f string   log format: text or json
//
// # JSON schema
//
// Durations use timex.Duration, so they can be strings like "5s" or integer
// nanoseconds:
//
//	{
//	  "endpoint": "http://localhost:3000/api/user",
//	  "request_timeout": "0s",
//	  "log_level": "info",
//	  "log_format": "text"
//	}
//
// The endpoint is handed to the directory client at construction; nothing in
// the console reads it from package state.
package config
