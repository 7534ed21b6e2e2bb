// Package config loads, normalizes, and validates shelf configuration data.
//
// It supplies repository defaults (honouring XDG_DATA_HOME for the data
// directory), expands user paths including tilde shortcuts, and reads TOML
// files strictly so typos in keys surface as errors. Always obtain settings
// through this package so callers receive absolute paths and a known store
// format.
package config
