// Package config loads, normalizes, and validates Shuttersort configuration data.
//
// It supplies repository defaults, expands user paths (including tilde
// shortcuts), and reads TOML files. Configuration can live next to the source
// directory being sorted (shuttersort.toml) or in the user config directory;
// a missing file is equivalent to all defaults.
//
// Always obtain settings through this package so downstream code receives
// sanitized paths, a validated filename format, and canonical log settings.
package config
