// Package config loads, normalizes, and validates specindex configuration data.
//
// It supplies repository defaults, expands user paths (including tilde
// shortcuts), reads TOML files, and honours the SPECINDEX_ROOT environment
// fallback. The Config type centralizes every knob the build needs: where the
// spec folders live, which marker files identify a spec, the shortname alias
// table, the current-work exceptions, and how aliases are materialized.
//
// Always obtain settings through this package so downstream code receives
// sanitized paths, canonical log formats, and clear validation errors.
package config
