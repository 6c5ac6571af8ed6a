// Lookup and in-place availability changes.
package shelf

// Get returns a copy of the book with exactly this ISBN.
func (l *Library) Get(isbn string) (Book, bool) {
	i := l.index(func(b Book) bool { return b.ISBN == isbn })
	if i < 0 {
		return Book{}, false
	}
	return l.books[i], true
}

// Toggle flips the availability of the book with this ISBN. It returns
// false when no such book exists.
func (l *Library) Toggle(isbn string) bool {
	i := l.index(func(b Book) bool { return b.ISBN == isbn })
	if i < 0 {
		return false
	}
	l.books[i].Toggle()
	return true
}
