// Package domain defines the core domain models for hhbook.
//
// Domain models are plain value types without IO dependencies. This
// package contains:
//
//   - Document: the persisted dataset (households, settings, version)
//   - Household and Person: the records reviewed by the application
//   - Errors: the error kinds surfaced by storage operations
package domain
