// Package config loads, normalizes, and validates klogd configuration.
//
// Configuration comes from a TOML file (explicit --config path, then
// ~/.config/klogd/config.toml, then ./klogd.toml) layered over compiled
// defaults, with KLOGD_* environment overrides applied during
// normalization. Integer overrides are parsed with the same whole-token
// rules the daemon applies everywhere else.
package config
