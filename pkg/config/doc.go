// Package config handles configuration management for sysknife.
// Values come from embedded defaults, the user's TOML file and SYSKNIFE_*
// environment variables, in that order; command-line flags are applied on
// top by each command.
package config
