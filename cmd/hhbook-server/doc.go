// Package main provides the entry point for hhbook-server.
//
// hhbook-server is the local backend for the hhbook desktop UI. It
// serves the document and backup API on loopback, exposes Prometheus
// metrics and, when backup.watch is set, snapshots the configured data
// file whenever it changes.
//
// Usage:
//
//	hhbook-server [flags]
//	hhbook-server --config /path/to/server.yaml
//
// Every setting can also be given as an HHBOOK_ environment variable,
// for example HHBOOK_SERVER_HTTP_ADDR or HHBOOK_BACKUP_MIN_INTERVAL.
package main
