// Package config loads, normalizes, and validates Chronicle configuration data.
//
// It supplies repository defaults, expands user paths (including tilde
// shortcuts), and reads TOML files. The Config type centralizes every knob
// the CLI and pipeline need: input/output locations, the study timezone,
// plausibility thresholds, and the app denylist.
//
// Always obtain settings through this package so downstream code receives
// sanitized paths, trimmed denylist entries, and clear validation errors.
package config
