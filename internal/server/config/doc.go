// Package config provides the hhbook-server configuration.
//
//   - spec.go: ServerConfig struct definition
//   - default.go: Default configuration values
//   - verify.go: Validation of loaded values
//
// Configuration is loaded via internal/infra/confloader from a YAML file
// and HHBOOK_ environment variables.
package config
