// Package config provides functionality for loading and managing application configuration.
//
// Settings are read from a YAML file through viper, overridden by environment
// variables prefixed with MOVIE_CATALOG_, and validated before use.
package config
