// Package command defines the hhbook CLI.
//
// The CLI works directly on local files through service.Service; it does
// not talk to hhbook-server. Commands that take a document path fall
// back to --document and then to the document key of the CLI config.
package command
