package main

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/jpl-au/shelf"
)

const menuText = `
===== LIBRARY MANAGEMENT SYSTEM =====

1. View all books
2. Search for books
3. Add a new book
4. Remove a book
5. Toggle availability
6. Save library to file
7. Snapshots
0. Exit
`

// menu runs the interactive loop until 0 is chosen or input ends. The
// catalog is saved on the way out either way.
func (a *app) menu(in io.Reader) error {
	p := &prompter{out: a.out, in: bufio.NewScanner(in)}

	for {
		fmt.Fprint(a.out, a.st.heading.Render(menuText))
		choice, ok := p.ask("\nEnter your choice (0-7): ")
		if !ok || choice == "0" {
			return a.exit()
		}

		fmt.Fprintln(a.out)
		switch choice {
		case "1":
			fmt.Fprintln(a.out, a.st.heading.Render("===== ALL BOOKS (sorted by title) ====="))
			a.list()
		case "2":
			term, _ := p.ask("Enter search term (title, author, ISBN, or category): ")
			a.search(term)
		case "3":
			a.menuAdd(p)
		case "4":
			a.menuRemove(p)
		case "5":
			isbn, _ := p.ask("Enter the ISBN of the book: ")
			if !a.toggle(isbn) {
				fmt.Fprintf(a.out, "Book with ISBN %q not found.\n", isbn)
			}
		case "6":
			a.menuSave()
		case "7":
			a.menuBackups(p)
		default:
			fmt.Fprintln(a.out, "Invalid choice. Please try again.")
		}
	}
}

func (a *app) menuAdd(p *prompter) {
	title, _ := p.ask("Enter book title: ")
	author, _ := p.ask("Enter book author: ")
	isbn, _ := p.ask("Enter book ISBN: ")
	category, _ := p.ask("Enter book category: ")

	if a.lib.Add(shelf.NewBook(title, author, isbn, category)) {
		fmt.Fprintln(a.out, "Book added successfully!")
		return
	}
	fmt.Fprintln(a.out, "Failed to add book. Ensure all fields are filled and ISBN is unique.")
}

func (a *app) menuRemove(p *prompter) {
	how, _ := p.ask("Remove by (1) title or (2) ISBN: ")
	switch how {
	case "1":
		title, _ := p.ask("Enter the title of the book to remove: ")
		if !a.remove(title, false) {
			fmt.Fprintf(a.out, "Book with title %q not found.\n", title)
		}
	case "2":
		isbn, _ := p.ask("Enter the ISBN of the book to remove: ")
		if !a.remove(isbn, true) {
			fmt.Fprintf(a.out, "Book with ISBN %q not found.\n", isbn)
		}
	default:
		fmt.Fprintln(a.out, "Invalid choice.")
	}
}

func (a *app) menuSave() {
	if err := a.save(); err != nil {
		a.log.Warn("save failed", "err", err)
		fmt.Fprintln(a.out, "Failed to save library data.")
		return
	}
	fmt.Fprintln(a.out, "Library data saved successfully.")
}

func (a *app) menuBackups(p *prompter) {
	backups, err := a.lib.Backups()
	if err != nil {
		fmt.Fprintf(a.out, "Could not list snapshots: %v\n", err)
		return
	}
	a.st.backups(a.out, backups)
	if len(backups) == 0 {
		return
	}

	sum, _ := p.ask("Enter a checksum to restore (blank to cancel): ")
	if sum == "" {
		return
	}
	if err := a.lib.Restore(sum); err != nil {
		fmt.Fprintf(a.out, "Restore failed: %v\n", err)
		return
	}
	fmt.Fprintf(a.out, "Restored snapshot %s (%d books). Save to keep it.\n", sum, a.lib.Len())
}

func (a *app) exit() error {
	fmt.Fprintln(a.out, "\nThank you for using shelf!")
	if err := a.save(); err != nil {
		fmt.Fprintln(a.out, "Failed to save library data before exit.")
		return err
	}
	fmt.Fprintln(a.out, "Library data saved successfully before exit.")
	return nil
}

// prompter reads one trimmed line per question.
type prompter struct {
	out io.Writer
	in  *bufio.Scanner
}

// ask prints label and returns the next line, or false at end of input.
func (p *prompter) ask(label string) (string, bool) {
	fmt.Fprint(p.out, label)
	if !p.in.Scan() {
		return "", false
	}
	return strings.TrimSpace(p.in.Text()), true
}
