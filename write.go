// Catalog persistence: Save.
//
// Save rewrites the whole file every time. There is no temporary file and
// rename, so a crash mid-write can leave a truncated catalog; the optional
// snapshot taken just before the write is the recovery path.
package shelf

import (
	"fmt"
	"os"

	json "github.com/goccy/go-json"
)

// Save writes the catalog to its path as an indented JSON array,
// replacing any existing content. When Config.Backups is positive the
// file being replaced is first kept as a compressed snapshot; a failed
// snapshot is logged and does not stop the save.
func (l *Library) Save() error {
	data, err := l.encode()
	if err != nil {
		return fmt.Errorf("%w: encode: %w", ErrSave, err)
	}

	root, err := os.OpenRoot(l.dir)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrSave, err)
	}
	defer root.Close()

	if l.config.Backups > 0 {
		if err := l.snapshot(root); err != nil {
			l.log.Warn("snapshot failed", "err", err)
		}
	}

	if err := l.write(root, data); err != nil {
		return fmt.Errorf("%w: %w", ErrSave, err)
	}

	l.log.Debug("catalog saved", "books", len(l.books), "bytes", len(data))
	return nil
}

// encode renders the catalog. An empty catalog is written as [] rather
// than null so the file always holds an array.
func (l *Library) encode() ([]byte, error) {
	books := l.books
	if books == nil {
		books = []Book{}
	}
	data, err := json.MarshalIndent(books, "", l.config.Indent)
	if err != nil {
		return nil, err
	}
	return append(data, '\n'), nil
}

func (l *Library) write(root *os.Root, data []byte) error {
	f, err := root.OpenFile(l.name, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, 0o644)
	if err != nil {
		return err
	}
	if _, err := f.Write(data); err != nil {
		f.Close()
		return err
	}
	if l.config.SyncWrites {
		if err := f.Sync(); err != nil {
			f.Close()
			return err
		}
	}
	return f.Close()
}
