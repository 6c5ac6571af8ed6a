package shelf

import (
	"slices"
	"testing"
)

func searchFixture(t *testing.T) *Library {
	t.Helper()
	l := newTestLibrary(t)
	seed(t, l,
		NewBook("Soif", "Amelie Nothomb", "A1", "Fiction"),
		NewBook("Lolita", "Vladimir Nabokov", "A2", "Drama"),
	)
	return l
}

func TestSearchSingleMatch(t *testing.T) {
	l := searchFixture(t)

	got := l.Search("soif")
	if len(got) != 1 || got[0].ISBN != "A1" {
		t.Errorf("Search(soif) = %+v, want only A1", got)
	}
}

func TestSearchFields(t *testing.T) {
	l := searchFixture(t)

	tests := []struct {
		term string
		want []string
	}{
		{"NABOKOV", []string{"Lolita"}},   // author
		{"a2", []string{"Lolita"}},        // isbn
		{"fict", []string{"Soif"}},        // category
		{"o", []string{"Soif", "Lolita"}}, // insertion order
		{"a", []string{"Soif", "Lolita"}}, // every book
		{"zzz", []string{}},
		{" soif", []string{}}, // term is not trimmed
	}

	for _, tt := range tests {
		t.Run(tt.term, func(t *testing.T) {
			if got := titles(l.Search(tt.term)); !slices.Equal(got, tt.want) {
				t.Errorf("Search(%q) = %v, want %v", tt.term, got, tt.want)
			}
		})
	}
}

// TestSearchBlank verifies that an empty or whitespace query matches
// nothing even when the catalog is not empty.
func TestSearchBlank(t *testing.T) {
	l := searchFixture(t)

	for _, term := range []string{"", "   ", "\t\n"} {
		got := l.Search(term)
		if got == nil {
			t.Errorf("Search(%q) = nil, want empty slice", term)
		}
		if len(got) != 0 {
			t.Errorf("Search(%q) = %d books, want 0", term, len(got))
		}
	}
}

func TestSearchEmptyLibrary(t *testing.T) {
	l := newTestLibrary(t)
	if got := l.Search("anything"); got == nil || len(got) != 0 {
		t.Errorf("Search on empty = %v", got)
	}
}

// TestSortedStable verifies that equal titles keep insertion order.
func TestSortedStable(t *testing.T) {
	l := newTestLibrary(t)
	seed(t, l,
		NewBook("Beta", "A", "B0", "C"),
		NewBook("Alpha", "A", "B1", "C"),
		NewBook("Alpha", "A", "B2", "C"),
	)

	got := l.Sorted()
	var isbns []string
	for _, b := range got {
		isbns = append(isbns, b.ISBN)
	}
	if want := []string{"B1", "B2", "B0"}; !slices.Equal(isbns, want) {
		t.Errorf("Sorted ISBNs = %v, want %v", isbns, want)
	}
}

// TestSortedOrdinal verifies byte-wise ordering: upper case sorts before
// lower case.
func TestSortedOrdinal(t *testing.T) {
	l := newTestLibrary(t)
	seed(t, l,
		NewBook("apple", "A", "1", "C"),
		NewBook("Banana", "A", "2", "C"),
		NewBook("Apple", "A", "3", "C"),
	)

	if got := titles(l.Sorted()); !slices.Equal(got, []string{"Apple", "Banana", "apple"}) {
		t.Errorf("Sorted = %v", got)
	}
}

func TestSortedDoesNotMutate(t *testing.T) {
	l := newTestLibrary(t)
	seed(t, l,
		NewBook("Beta", "A", "1", "C"),
		NewBook("Alpha", "A", "2", "C"),
	)

	l.Sorted()
	if got := titles(slices.Collect(l.All())); !slices.Equal(got, []string{"Beta", "Alpha"}) {
		t.Errorf("All after Sorted = %v, want insertion order", got)
	}
}

func TestSortedEmpty(t *testing.T) {
	l := newTestLibrary(t)
	if got := l.Sorted(); got == nil || len(got) != 0 {
		t.Errorf("Sorted on empty = %v", got)
	}
}
