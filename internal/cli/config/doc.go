// Package config provides the hhbook CLI configuration (~/.hhbook/cli.yaml).
//
// Values are read with koanf (file, then HHBOOK_CLI_* environment
// variables) and written back as YAML.
package config
