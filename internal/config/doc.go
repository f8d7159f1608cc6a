// Package config loads and validates scaleforge configuration from TOML.
// Paths are expanded and normalized at load time; build policy values are
// checked so a bad policy string fails the run before any source starts.
package config
