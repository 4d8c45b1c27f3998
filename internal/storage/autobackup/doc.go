// Package autobackup snapshots the data file whenever it changes on disk.
//
// The watcher observes the file's directory so that editors which save
// by renaming a temporary file are still seen. Each change is throttled,
// compared with the content of the last snapshot by a murmur3 128-bit
// fingerprint, decoded, and handed to the service as a checkpoint that
// honours the document's auto_backup and backup_count settings.
package autobackup
