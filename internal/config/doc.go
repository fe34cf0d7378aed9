// Package config loads, normalizes, and validates sortd configuration data.
//
// It supplies repository defaults, expands user paths (including tilde
// shortcuts), and reads TOML files. Category rules are declared as an
// ordered array of tables; declaration order is preserved so that the
// classifier can resolve overlapping extension sets first-match-wins.
//
// Always obtain settings through this package so downstream code receives
// sanitized paths, normalized extensions, and clear validation errors.
package config
