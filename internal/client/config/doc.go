// Package config loads runtime configuration for the carbonnft CLI.
//
// Sources & precedence
//
//  1. Built-in defaults (see (*Config).LoadDefaults).
//  2. Optional JSON file selected with -c / --config.
//  3. Environment variables (API_KEY, CARBONNFT_DB, CARBONNFT_MINT_DELAY, ...).
//  4. Command-line flags registered with RegisterFlags, when set explicitly.
//
// # JSON schema
//
// Intervals use timex.Duration, so values can be strings like "2s" or
// integer nanoseconds:
//
//	{
//	  "database_path": "carbonnft.db",
//	  "api_key": "...",
//	  "mint_delay": "2s",
//	  "generation_timeout": "30s",
//	  "log_level": "info"
//	}
//
// Primary API
//
//   - type Config
//   - func RegisterFlags(*pflag.FlagSet)
//   - func Load(*pflag.FlagSet) (*Config, error)
//   - func (*Config) LoadDefaults()
package config
