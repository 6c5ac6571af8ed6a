package main

import (
	"fmt"
	"io"

	"github.com/charmbracelet/lipgloss"
	"github.com/jpl-au/shelf"
)

const rule = "-----------------------"

// styles colour book listings. The renderer inspects the writer, so
// output to a pipe or buffer comes out plain.
type styles struct {
	title     lipgloss.Style
	heading   lipgloss.Style
	available lipgloss.Style
	borrowed  lipgloss.Style
}

func newStyles(w io.Writer) styles {
	r := lipgloss.NewRenderer(w)
	return styles{
		title:     r.NewStyle().Foreground(lipgloss.Color("6")),
		heading:   r.NewStyle().Bold(true),
		available: r.NewStyle().Foreground(lipgloss.Color("2")),
		borrowed:  r.NewStyle().Foreground(lipgloss.Color("1")),
	}
}

func (s styles) status(b shelf.Book) string {
	if b.Available {
		return s.available.Render(b.Status())
	}
	return s.borrowed.Render(b.Status())
}

// books prints a numbered listing followed by a separator per book.
func (s styles) books(w io.Writer, books []shelf.Book) {
	for i, b := range books {
		fmt.Fprintf(w, " %d. %s\n", i+1, s.title.Render(b.Title))
		fmt.Fprintf(w, "    Author: %s\n", b.Author)
		fmt.Fprintf(w, "    ISBN: %s\n", b.ISBN)
		fmt.Fprintf(w, "    Category: %s\n", b.Category)
		fmt.Fprintf(w, "    Status: %s\n", s.status(b))
		fmt.Fprintln(w, rule)
	}
}

func (s styles) book(w io.Writer, b shelf.Book) {
	fmt.Fprintf(w, "Title: %s\n", s.title.Render(b.Title))
	fmt.Fprintf(w, "Author: %s\n", b.Author)
	fmt.Fprintf(w, "ISBN: %s\n", b.ISBN)
	fmt.Fprintf(w, "Category: %s\n", b.Category)
	fmt.Fprintf(w, "Status: %s\n", s.status(b))
}

func (s styles) backups(w io.Writer, backups []shelf.Backup) {
	if len(backups) == 0 {
		fmt.Fprintln(w, "No snapshots found.")
		return
	}
	for _, b := range backups {
		fmt.Fprintf(w, " %s  %s  %d bytes\n", s.title.Render(b.Sum), b.Time.Format("2006-01-02 15:04:05.000"), b.Size)
	}
}
