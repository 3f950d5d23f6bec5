// Package config provides functionality for loading and managing application configuration.
//
// Settings are plain structs with validation tags; each has a Validate method and
// the REST server configuration is loaded from a YAML file.
package config
