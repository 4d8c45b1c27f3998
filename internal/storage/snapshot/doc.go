// Package snapshot manages timestamped backup copies of a data file.
//
// Snapshots live next to the document they were taken from and are
// named after its stem:
//
//	<stem>_backup_<YYYY-MM-DD_HH-MM-SS>.json
//
// The timestamp is the capture instant in UTC with one-second
// resolution. Two snapshots of the same stem taken within the same
// second share a name, and the later one replaces the earlier.
//
// A Store creates, lists, restores and deletes snapshots; Prune applies
// a RetentionPolicy to the snapshots of one stem. Every operation takes
// explicit paths and holds no handle between calls.
package snapshot
