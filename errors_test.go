package shelf

import (
	"errors"
	"fmt"
	"testing"
)

func TestErrors(t *testing.T) {
	// Verify all errors are defined and distinct
	errs := []error{
		ErrNoFile,
		ErrLoad,
		ErrSave,
		ErrCorrupt,
		ErrNoBackup,
		ErrDecompress,
	}

	for i, err := range errs {
		if err == nil {
			t.Errorf("error at index %d is nil", i)
		}
	}

	seen := make(map[string]int)
	for i, err := range errs {
		msg := err.Error()
		if prev, ok := seen[msg]; ok {
			t.Errorf("error at index %d has same message as index %d: %q", i, prev, msg)
		}
		seen[msg] = i
	}
}

func TestErrorsWrap(t *testing.T) {
	tests := []struct {
		name string
		err  error
	}{
		{"ErrNoFile", ErrNoFile},
		{"ErrLoad", ErrLoad},
		{"ErrSave", ErrSave},
		{"ErrCorrupt", ErrCorrupt},
		{"ErrNoBackup", ErrNoBackup},
		{"ErrDecompress", ErrDecompress},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			wrapped := fmt.Errorf("%w: %w", tt.err, errors.New("cause"))
			if !errors.Is(wrapped, tt.err) {
				t.Errorf("errors.Is(%v, %v) = false, want true", wrapped, tt.err)
			}
		})
	}
}
