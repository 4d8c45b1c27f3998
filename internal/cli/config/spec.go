package config

import "fmt"

// Output formats accepted in the configuration.
var validOutputs = []string{"table", "json", "yaml"}

// CLIConfig is the configuration for the hhbook CLI.
type CLIConfig struct {
	// Document is the data file used when a command is given no path.
	Document string `koanf:"document" yaml:"document"`

	// Output is the default output format: table, json or yaml.
	Output string `koanf:"output" yaml:"output"`

	// Keep overrides the document's backup_count for prune and watch
	// when greater than zero.
	Keep int `koanf:"keep" yaml:"keep"`
}

// Default returns the default CLI configuration.
func Default() *CLIConfig {
	return &CLIConfig{
		Output: "table",
	}
}

// Validate checks the configuration values.
func (c *CLIConfig) Validate() error {
	if c.Keep < 0 {
		return fmt.Errorf("keep must be >= 0, got %d", c.Keep)
	}
	for _, o := range validOutputs {
		if c.Output == o {
			return nil
		}
	}
	return fmt.Errorf("output %q is not one of %v", c.Output, validOutputs)
}
