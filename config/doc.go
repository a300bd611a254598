// Package config loads the assistant's configuration from a YAML file with
// environment-variable overrides. Every field has a working default so the
// assistant runs with no config at all.
package config
