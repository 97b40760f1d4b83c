// Package config loads runtime configuration for the DialKeeper CLI.
//
// Sources & precedence
//
//  1. Built-in defaults (see (*Config).LoadDefaults).
//  2. Optional JSON or YAML file named by --config.
//  3. DIALKEEPER_* environment variables.
//  4. Command-line flags, applied by the CLI on top of Load's result.
//
// # File schema
//
// Durations use timex.Duration, so they may be strings like "5s" or integer
// nanoseconds:
//
//	{
//	  "server_endpoint_addr": "127.0.0.1:50051",
//	  "timeout": "5s",
//	  "session_file": "/home/me/.dialkeeper/session.db"
//	}
//
// # Environment
//
//	DIALKEEPER_SERVER    server address
//	DIALKEEPER_TIMEOUT   per-call timeout, e.g. 10s
//	DIALKEEPER_TOKEN     access token
//	DIALKEEPER_SESSION   session database path
package config
