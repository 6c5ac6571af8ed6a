// Book removal.
//
// Both removals delete only the first match in insertion order, so two
// books sharing a title need two calls.
package shelf

import (
	"slices"
	"strings"
)

// RemoveByTitle removes the first book whose title equals title, ignoring
// case. It reports whether a book was removed.
func (l *Library) RemoveByTitle(title string) bool {
	return l.remove(func(b Book) bool { return strings.EqualFold(b.Title, title) })
}

// RemoveByISBN removes the book with exactly this ISBN.
func (l *Library) RemoveByISBN(isbn string) bool {
	return l.remove(func(b Book) bool { return b.ISBN == isbn })
}

func (l *Library) remove(fn func(Book) bool) bool {
	i := l.index(fn)
	if i < 0 {
		return false
	}
	l.books = slices.Delete(l.books, i, i+1)
	return true
}
