// Book admission.
package shelf

// Add appends b to the catalog. It returns false, leaving the catalog
// untouched, when b is not Valid or a book with the same ISBN is already
// present. The first book to claim an ISBN keeps it.
func (l *Library) Add(b Book) bool {
	if !b.Valid() {
		return false
	}
	if l.index(func(e Book) bool { return e.ISBN == b.ISBN }) >= 0 {
		return false
	}

	l.books = append(l.books, b)
	return true
}
