// Catalog snapshots taken by Save.
//
// Before Save overwrites the catalog it can keep the previous file as
// <name>.<unixmilli>.<sum>.zst in the same directory. Timestamps are
// forced to increase strictly so the newest snapshot is unambiguous even
// when two saves land in the same millisecond. A snapshot whose sum
// matches the newest one is skipped, and the oldest are pruned once more
// than Config.Backups exist.
package shelf

import (
	"cmp"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"slices"
	"strconv"
	"strings"
	"time"
)

const backupExt = ".zst"

// Backup describes one snapshot file.
type Backup struct {
	Name string    // Filename within the catalog's directory
	Sum  string    // Checksum of the uncompressed catalog
	Time time.Time // When the snapshot was taken
	Size int64     // Compressed size in bytes
}

// Backups lists the catalog's snapshots, newest first. A missing
// directory yields no snapshots.
func (l *Library) Backups() ([]Backup, error) {
	root, err := os.OpenRoot(l.dir)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrLoad, err)
	}
	defer root.Close()

	backups, err := l.backups(root)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrLoad, err)
	}
	return backups, nil
}

// Restore replaces the in-memory catalog with the snapshot whose sum
// matches. The catalog file itself is not touched until the next Save.
func (l *Library) Restore(sum string) error {
	root, err := os.OpenRoot(l.dir)
	if errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("%w: %s", ErrNoBackup, sum)
	}
	if err != nil {
		return fmt.Errorf("%w: %w", ErrLoad, err)
	}
	defer root.Close()

	backups, err := l.backups(root)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrLoad, err)
	}
	i := slices.IndexFunc(backups, func(b Backup) bool { return b.Sum == sum })
	if sum == "" || i < 0 {
		return fmt.Errorf("%w: %s", ErrNoBackup, sum)
	}

	raw, err := root.ReadFile(backups[i].Name)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrLoad, err)
	}
	data, err := decompress(raw)
	if err != nil {
		return err
	}
	books, err := decodeCatalog(data)
	if err != nil {
		return err
	}

	l.books = books
	l.log.Debug("snapshot restored", "sum", sum, "books", len(books))
	return nil
}

// snapshot compresses the current catalog file into a new snapshot and
// prunes old ones. A missing catalog file is not an error.
func (l *Library) snapshot(root *os.Root) error {
	prev, err := root.ReadFile(l.name)
	if errors.Is(err, fs.ErrNotExist) {
		return nil
	}
	if err != nil {
		return err
	}

	backups, err := l.backups(root)
	if err != nil {
		return err
	}

	sum := hash(prev, l.config.HashAlgorithm)
	if len(backups) > 0 && backups[0].Sum == sum {
		return nil
	}

	ts := time.Now().UnixMilli()
	if len(backups) > 0 && ts <= backups[0].Time.UnixMilli() {
		ts = backups[0].Time.UnixMilli() + 1
	}

	data := compress(prev)
	name := fmt.Sprintf("%s.%d.%s%s", l.name, ts, sum, backupExt)
	if err := root.WriteFile(name, data, 0o644); err != nil {
		return err
	}
	l.log.Debug("snapshot written", "name", name, "bytes", len(data))

	backups = append([]Backup{{Name: name, Sum: sum, Time: time.UnixMilli(ts), Size: int64(len(data))}}, backups...)
	if len(backups) <= l.config.Backups {
		return nil
	}
	var errs []error
	for _, b := range backups[l.config.Backups:] {
		if err := root.Remove(b.Name); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}

// backups scans the directory for this catalog's snapshots, newest first.
func (l *Library) backups(root *os.Root) ([]Backup, error) {
	dir, err := root.Open(".")
	if err != nil {
		return nil, err
	}
	defer dir.Close()

	entries, err := dir.ReadDir(-1)
	if err != nil {
		return nil, err
	}

	var out []Backup
	for _, e := range entries {
		if e.IsDir() {
			continue
		}
		b, ok := l.parseBackup(e.Name())
		if !ok {
			continue
		}
		if info, err := e.Info(); err == nil {
			b.Size = info.Size()
		}
		out = append(out, b)
	}

	slices.SortFunc(out, func(a, b Backup) int {
		return cmp.Compare(b.Time.UnixMilli(), a.Time.UnixMilli())
	})
	return out, nil
}

// parseBackup splits <name>.<unixmilli>.<sum>.zst into its parts.
func (l *Library) parseBackup(filename string) (Backup, bool) {
	rest, ok := strings.CutPrefix(filename, l.name+".")
	if !ok {
		return Backup{}, false
	}
	rest, ok = strings.CutSuffix(rest, backupExt)
	if !ok {
		return Backup{}, false
	}
	stamp, sum, ok := strings.Cut(rest, ".")
	if !ok || sum == "" || strings.Contains(sum, ".") {
		return Backup{}, false
	}
	ms, err := strconv.ParseInt(stamp, 10, 64)
	if err != nil {
		return Backup{}, false
	}
	return Backup{Name: filename, Sum: sum, Time: time.UnixMilli(ms)}, true
}
