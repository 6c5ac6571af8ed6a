// Search and ordered listing.
//
// Search lower-cases the term once and each field per book. The catalog is
// small enough that a linear scan with strings.ToLower is the whole cost;
// there is no index to maintain.
//
// A blank term matches nothing rather than everything. Listing the whole
// catalog is Sorted's job, and an accidental empty query from an
// interactive prompt should not dump every record.
package shelf

import (
	"slices"
	"strings"
)

// Search returns copies of every book whose title, author, ISBN or
// category contains term, ignoring case, in insertion order. A blank term
// yields an empty slice.
func (l *Library) Search(term string) []Book {
	out := []Book{}
	if strings.TrimSpace(term) == "" {
		return out
	}

	needle := strings.ToLower(term)
	for _, b := range l.books {
		if matches(b, needle) {
			out = append(out, b)
		}
	}
	return out
}

func matches(b Book, needle string) bool {
	for _, field := range []string{b.Title, b.Author, b.ISBN, b.Category} {
		if strings.Contains(strings.ToLower(field), needle) {
			return true
		}
	}
	return false
}

// Sorted returns a copy of the catalog ordered by title using byte-wise
// comparison. Books with equal titles keep their insertion order.
func (l *Library) Sorted() []Book {
	out := slices.Clone(l.books)
	if out == nil {
		out = []Book{}
	}
	slices.SortStableFunc(out, func(a, b Book) int {
		return strings.Compare(a.Title, b.Title)
	})
	return out
}
