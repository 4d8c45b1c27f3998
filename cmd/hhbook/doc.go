// Package main provides the entry point for the hhbook CLI.
//
// hhbook works on local data files:
//
//   - doc: show, init and check a data file
//   - backup: create, list, prune, restore, delete and watch snapshots
//   - file: validate paths, show metadata, create directories
//   - system, config: platform info and CLI settings
//
// Usage:
//
//	hhbook [global flags] command [flags] [args]
//	hhbook -d ~/book.json backup list
//	hhbook -o yaml doc check ~/book.json
package main
