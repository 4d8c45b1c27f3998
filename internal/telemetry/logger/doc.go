// Package logger provides structured logging for hhbook.
//
//   - logger.go: log/slog handler configuration and the dynamic level
//   - context.go: context-aware logging with request IDs
//   - redact.go: masking of household personal data
//
// Records are JSON by default; text output is available for terminals.
package logger
