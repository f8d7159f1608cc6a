package library

import (
	"fmt"
	"strings"
)

// Filenames tracks the scl filenames a source has already claimed so
// distinct scales never overwrite each other.
type Filenames struct {
	used map[string]bool
}

func NewFilenames() *Filenames {
	return &Filenames{used: make(map[string]bool)}
}

// Reserve claims name exactly, failing if it was already taken.
func (f *Filenames) Reserve(name string) error {
	if f.used[name] {
		return fmt.Errorf("filename collision: %s", name)
	}
	f.used[name] = true
	return nil
}

// ReserveNumbered claims name, appending _2, _3, ... before the .scl
// extension until a free name is found.
func (f *Filenames) ReserveNumbered(name string) string {
	if !f.used[name] {
		f.used[name] = true
		return name
	}
	stem := strings.TrimSuffix(name, ".scl")
	for n := 2; ; n++ {
		candidate := fmt.Sprintf("%s_%d.scl", stem, n)
		if !f.used[candidate] {
			f.used[candidate] = true
			return candidate
		}
	}
}

// ReserveComposite claims name, and on a clash retries once with the
// qualifier woven in before the extension. A second clash means two
// scales landed on the same fully qualified name, which is a bug in the
// caller's naming scheme.
func (f *Filenames) ReserveComposite(name, qualifier string) (string, error) {
	if !f.used[name] {
		f.used[name] = true
		return name, nil
	}
	stem := strings.TrimSuffix(name, ".scl")
	candidate := fmt.Sprintf("%s_%s.scl", stem, qualifier)
	if f.used[candidate] {
		return "", fmt.Errorf("filename collision even with qualifier: %s", candidate)
	}
	f.used[candidate] = true
	return candidate, nil
}

// Used reports whether name has been claimed.
func (f *Filenames) Used(name string) bool { return f.used[name] }

// Len reports how many names have been claimed.
func (f *Filenames) Len() int { return len(f.used) }
