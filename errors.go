// Package shelf manages a small catalog of books held in memory and
// persisted to a single pretty-printed JSON file on demand.
//
// A Library owns an ordered slice of Book values. Identifiers (ISBNs) are
// unique within a Library and every Book must carry a non-blank title,
// author, ISBN and category before it is admitted. Collection operations
// report failure through a boolean or an empty result; only persistence
// returns errors. Nothing is written to disk until Save is called.
//
// Save can optionally keep zstd-compressed snapshots of the file it is
// about to overwrite, so an earlier catalog can be restored with Restore.
package shelf

import "errors"

// Sentinel errors for programmatic handling. Every error returned by Save,
// Load and Restore matches exactly one of these via errors.Is; the
// underlying cause is wrapped after it.
var (
	ErrNoFile     = errors.New("catalog file does not exist")
	ErrLoad       = errors.New("catalog read failed")
	ErrSave       = errors.New("catalog write failed")
	ErrCorrupt    = errors.New("catalog is not a valid JSON book array")
	ErrNoBackup   = errors.New("snapshot not found")
	ErrDecompress = errors.New("decompression failed")
)
