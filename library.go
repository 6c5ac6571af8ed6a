// Core catalog type and its configuration.
//
// Library owns the ordered slice of books and the path it persists to.
// It is not safe for concurrent use; a single caller drives it from load
// through mutation to save.
package shelf

import (
	"iter"
	"log/slog"
	"path/filepath"
)

// DefaultPath is used when New is given an empty path.
const DefaultPath = "library.json"

// Config holds catalog configuration options.
type Config struct {
	HashAlgorithm int          // Snapshot checksum: 1=xxHash3, 2=FNV1a, 3=Blake2b
	Backups       int          // Compressed snapshots kept by Save (0 disables)
	SyncWrites    bool         // Call fsync after writing the catalog
	Indent        string       // JSON indentation (default two spaces)
	Logger        *slog.Logger // Receives persistence diagnostics (default discards)
}

// Library is an in-memory book catalog bound to a JSON file.
type Library struct {
	books  []Book
	path   string // Catalog path as given to New
	dir    string // Directory holding the catalog file and its snapshots
	name   string // Catalog filename within dir
	config Config
	log    *slog.Logger
}

// New returns an empty Library that loads from and saves to path. When
// path is a symlink the file it points to is used, and snapshots are kept
// next to that file.
func New(path string, config Config) *Library {
	if path == "" {
		path = DefaultPath
	}
	if config.HashAlgorithm < AlgXXHash3 || config.HashAlgorithm > AlgBlake2b {
		config.HashAlgorithm = AlgXXHash3
	}
	if config.Indent == "" {
		config.Indent = "  "
	}
	if config.Backups < 0 {
		config.Backups = 0
	}
	if config.Logger == nil {
		config.Logger = slog.New(slog.DiscardHandler)
	}

	target := path
	if resolved, err := filepath.EvalSymlinks(path); err == nil {
		target = resolved
	}

	return &Library{
		path:   path,
		dir:    filepath.Dir(target),
		name:   filepath.Base(target),
		config: config,
		log:    config.Logger.With("catalog", path),
	}
}

// Path returns the catalog file path.
func (l *Library) Path() string {
	return l.path
}

// Len returns the number of books in the catalog.
func (l *Library) Len() int {
	return len(l.books)
}

// All yields a copy of every book in insertion order. Modifying a yielded
// Book does not change the catalog.
func (l *Library) All() iter.Seq[Book] {
	return func(yield func(Book) bool) {
		for _, b := range l.books {
			if !yield(b) {
				return
			}
		}
	}
}

// index returns the position of the first book matching fn, or -1.
func (l *Library) index(fn func(Book) bool) int {
	for i, b := range l.books {
		if fn(b) {
			return i
		}
	}
	return -1
}
