// Catalog persistence: Load.
package shelf

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	json "github.com/goccy/go-json"
)

// Load replaces the in-memory catalog with the contents of its file. The
// catalog is left untouched on any error: ErrNoFile when the file does not
// exist, ErrLoad when it cannot be read and ErrCorrupt when it is not a
// JSON array of books. Loaded books are not re-validated and duplicate
// ISBNs in the file are kept as they are.
func (l *Library) Load() error {
	data, err := l.read()
	if errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("%w: %s", ErrNoFile, l.Path())
	}
	if err != nil {
		return fmt.Errorf("%w: %w", ErrLoad, err)
	}

	books, err := decodeCatalog(data)
	if err != nil {
		return err
	}

	l.books = books
	l.log.Debug("catalog loaded", "books", len(books))
	return nil
}

func (l *Library) read() ([]byte, error) {
	root, err := os.OpenRoot(l.dir)
	if err != nil {
		return nil, err
	}
	defer root.Close()
	return root.ReadFile(l.name)
}

// decodeCatalog parses a catalog document. A JSON null document decodes
// as an empty catalog and null elements are dropped.
func decodeCatalog(data []byte) ([]Book, error) {
	var entries []*Book
	if err := json.Unmarshal(data, &entries); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrCorrupt, err)
	}
	books := make([]Book, 0, len(entries))
	for _, b := range entries {
		if b != nil {
			books = append(books, *b)
		}
	}
	return books, nil
}
