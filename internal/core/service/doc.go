// Package service is the entry point for every collaborator of the data
// file: the CLI, the local HTTP API and the auto-backup watcher.
//
// Service takes explicit paths on each call and keeps no document state.
// It delegates to the codec, the snapshot store and the fsmeta gateway,
// logging each operation and recording it in the metrics registry.
package service
