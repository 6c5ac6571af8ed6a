// Book values and their on-disk JSON shape.
//
// A Book is a plain value. The Library stores copies and hands out copies,
// so mutating a Book obtained from the Library never affects the catalog.
package shelf

import (
	"fmt"
	"strings"

	json "github.com/goccy/go-json"
)

// Status labels rendered for a Book's availability.
const (
	StatusAvailable = "Available"
	StatusBorrowed  = "Borrowed"
)

// Book is a single catalog entry. ISBN is the unique key within a Library.
type Book struct {
	Title     string `json:"title" yaml:"title"`
	Author    string `json:"author" yaml:"author"`
	ISBN      string `json:"isbn" yaml:"isbn"`
	Category  string `json:"category" yaml:"category"`
	Available bool   `json:"available" yaml:"available"`
}

// NewBook returns an available Book. It does not validate; Library.Add does.
func NewBook(title, author, isbn, category string) Book {
	return Book{
		Title:     title,
		Author:    author,
		ISBN:      isbn,
		Category:  category,
		Available: true,
	}
}

// Valid reports whether all four text fields are non-blank.
func (b Book) Valid() bool {
	return strings.TrimSpace(b.Title) != "" &&
		strings.TrimSpace(b.Author) != "" &&
		strings.TrimSpace(b.ISBN) != "" &&
		strings.TrimSpace(b.Category) != ""
}

// Toggle flips availability and returns the new value.
func (b *Book) Toggle() bool {
	b.Available = !b.Available
	return b.Available
}

// Status returns StatusAvailable or StatusBorrowed.
func (b Book) Status() string {
	if b.Available {
		return StatusAvailable
	}
	return StatusBorrowed
}

func (b Book) String() string {
	return fmt.Sprintf("Title: %s\nAuthor: %s\nISBN: %s\nCategory: %s\nStatus: %s",
		b.Title, b.Author, b.ISBN, b.Category, b.Status())
}

// bookJSON mirrors Book with pointer availability so a missing key can be
// told apart from an explicit false. IsAvailable is the key written by the
// older PascalCase catalogs; key matching is case-insensitive so their
// PascalCase Title/Author/ISBN/Category keys land in the same fields.
type bookJSON struct {
	Title       string `json:"title"`
	Author      string `json:"author"`
	ISBN        string `json:"isbn"`
	Category    string `json:"category"`
	Available   *bool  `json:"available"`
	IsAvailable *bool  `json:"isAvailable"`
}

// UnmarshalJSON decodes a Book, defaulting Available to true when the
// document carries neither availability key.
func (b *Book) UnmarshalJSON(data []byte) error {
	if string(data) == "null" {
		return nil
	}

	var raw bookJSON
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}

	*b = Book{
		Title:     raw.Title,
		Author:    raw.Author,
		ISBN:      raw.ISBN,
		Category:  raw.Category,
		Available: true,
	}
	switch {
	case raw.Available != nil:
		b.Available = *raw.Available
	case raw.IsAvailable != nil:
		b.Available = *raw.IsAvailable
	}
	return nil
}
