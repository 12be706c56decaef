package pipeline

import (
	"os"
	"strings"

	"github.com/pkg/errors"
)

// Predicate decides whether a file name belongs to a stage. Predicates are
// pure functions of the name; no file content is ever inspected to select
// which files to process.
type Predicate func(name string) bool

// HasSuffix matches names ending with suffix.
func HasSuffix(suffix string) Predicate {
	return func(name string) bool {
		return strings.HasSuffix(name, suffix)
	}
}

// HasPrefix matches names starting with prefix.
func HasPrefix(prefix string) Predicate {
	return func(name string) bool {
		return strings.HasPrefix(name, prefix)
	}
}

// Contains matches names containing sub.
func Contains(sub string) Predicate {
	return func(name string) bool {
		return strings.Contains(name, sub)
	}
}

// And matches names satisfying every given predicate.
func And(preds ...Predicate) Predicate {
	return func(name string) bool {
		for _, pred := range preds {
			if !pred(name) {
				return false
			}
		}

		return true
	}
}

// Select lists dir once, non-recursively, and returns the entry names
// matching pred in the storage's native listing order. Directories are
// visible to the predicate like any other entry; callers exclude them by
// name if needed. Each call performs a fresh listing.
func Select(dir string, pred Predicate) ([]string, error) {
	info, err := os.Stat(dir)
	if err != nil || !info.IsDir() {
		return nil, &DirectoryNotFoundError{Dir: dir}
	}

	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, errors.Wrapf(err, "unable to list directory %s", dir)
	}

	var names []string

	for _, entry := range entries {
		if pred(entry.Name()) {
			names = append(names, entry.Name())
		}
	}

	return names, nil
}
