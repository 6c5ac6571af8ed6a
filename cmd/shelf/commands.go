package main

import (
	"errors"
	"fmt"
	"slices"
	"strings"

	json "github.com/goccy/go-json"
	"github.com/jpl-au/shelf"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
)

var errRejected = errors.New("book rejected: title, author, ISBN and category are required and the ISBN must be unique")

func (a *app) listCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List all books sorted by title",
		Args:  cobra.NoArgs,
		RunE: func(*cobra.Command, []string) error {
			a.list()
			return nil
		},
	}
}

func (a *app) searchCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "search <term>",
		Short: "Find books by title, author, ISBN or category",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			a.search(strings.Join(args, " "))
			return nil
		},
	}
}

func (a *app) showCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "show <isbn>",
		Short: "Show one book",
		Args:  cobra.ExactArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			b, ok := a.lib.Get(args[0])
			if !ok {
				return fmt.Errorf("no book with ISBN %q", args[0])
			}
			a.st.book(a.out, b)
			return nil
		},
	}
}

func (a *app) addCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "add <title> <author> <isbn> <category>",
		Short: "Add a book and save",
		Args:  cobra.ExactArgs(4),
		RunE: func(cmd *cobra.Command, args []string) error {
			b := shelf.NewBook(args[0], args[1], args[2], args[3])
			if borrowed, _ := cmd.Flags().GetBool("borrowed"); borrowed {
				b.Available = false
			}
			if !a.lib.Add(b) {
				return errRejected
			}
			fmt.Fprintln(a.out, "Book added successfully!")
			return a.save()
		},
	}
	cmd.Flags().Bool("borrowed", false, "mark the new book as borrowed")
	return cmd
}

func (a *app) removeCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "remove <title>",
		Short: "Remove a book by title (or by ISBN with --isbn) and save",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			byISBN, _ := cmd.Flags().GetBool("isbn")
			if !a.remove(args[0], byISBN) {
				return fmt.Errorf("book %q not found", args[0])
			}
			return a.save()
		},
	}
	cmd.Flags().Bool("isbn", false, "match the argument against ISBNs instead of titles")
	return cmd
}

func (a *app) toggleCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "toggle <isbn>",
		Short: "Flip a book between available and borrowed, then save",
		Args:  cobra.ExactArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			if !a.toggle(args[0]) {
				return fmt.Errorf("no book with ISBN %q", args[0])
			}
			return a.save()
		},
	}
}

func (a *app) exportCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "export",
		Short: "Print the catalog as JSON or YAML",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			format, _ := cmd.Flags().GetString("format")
			return a.export(format)
		},
	}
	cmd.Flags().String("format", "json", "output format (json, yaml)")
	return cmd
}

func (a *app) backupsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "backups",
		Short: "List catalog snapshots, newest first",
		Args:  cobra.NoArgs,
		RunE: func(*cobra.Command, []string) error {
			backups, err := a.lib.Backups()
			if err != nil {
				return err
			}
			a.st.backups(a.out, backups)
			return nil
		},
	}
}

func (a *app) restoreCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "restore <sum>",
		Short: "Restore a snapshot and save it as the catalog",
		Args:  cobra.ExactArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			if err := a.lib.Restore(args[0]); err != nil {
				return err
			}
			fmt.Fprintf(a.out, "Restored snapshot %s (%d books).\n", args[0], a.lib.Len())
			return a.save()
		},
	}
}

func (a *app) list() {
	books := a.lib.Sorted()
	if len(books) == 0 {
		fmt.Fprintln(a.out, "No books found in the library.")
		return
	}
	a.st.books(a.out, books)
	fmt.Fprintf(a.out, "Total books: %d\n", len(books))
}

func (a *app) search(term string) {
	results := a.lib.Search(term)
	if len(results) == 0 {
		fmt.Fprintln(a.out, "No books found matching the search term.")
	} else {
		a.st.books(a.out, results)
	}
	fmt.Fprintf(a.out, "Total books found: %d\n", len(results))
}

func (a *app) remove(key string, byISBN bool) bool {
	var ok bool
	if byISBN {
		ok = a.lib.RemoveByISBN(key)
	} else {
		ok = a.lib.RemoveByTitle(key)
	}
	if ok {
		fmt.Fprintf(a.out, "Book %q removed successfully.\n", key)
	}
	return ok
}

func (a *app) toggle(isbn string) bool {
	if !a.lib.Toggle(isbn) {
		return false
	}
	b, _ := a.lib.Get(isbn)
	fmt.Fprintf(a.out, "%q is now %s.\n", b.Title, a.st.status(b))
	return true
}

func (a *app) save() error {
	if err := a.lib.Save(); err != nil {
		return err
	}
	a.log.Info("catalog saved", "file", a.lib.Path(), "books", a.lib.Len())
	return nil
}

func (a *app) export(format string) error {
	books := slices.Collect(a.lib.All())
	if books == nil {
		books = []shelf.Book{}
	}

	switch format {
	case "json":
		data, err := json.MarshalIndent(books, "", "  ")
		if err != nil {
			return err
		}
		_, err = fmt.Fprintf(a.out, "%s\n", data)
		return err
	case "yaml":
		enc := yaml.NewEncoder(a.out)
		enc.SetIndent(2)
		if err := enc.Encode(books); err != nil {
			return err
		}
		return enc.Close()
	default:
		return fmt.Errorf("unknown format %q (want json or yaml)", format)
	}
}
