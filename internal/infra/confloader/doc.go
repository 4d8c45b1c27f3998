// Package confloader loads configuration for hhbook binaries with koanf.
//
// Priority (highest to lowest):
//
//  1. Command-line flags (applied by the caller through LoadMap)
//  2. Environment variables (HHBOOK_ prefix)
//  3. The YAML configuration file
//  4. Defaults already present in the target struct
package confloader
