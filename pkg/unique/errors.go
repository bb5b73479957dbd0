// Copyright: This file is part of korrel8r, released under https://github.com/korrel8r/korrel8r/blob/main/LICENSE

package unique

import (
	"errors"
)

// Errors collects errors, discarding errors with the same message as one already collected.
// The zero value is ready to use.
type Errors struct {
	err  error
	seen Set[string]
	n    int
}

// Err returns the collected errors joined by [errors.Join], or nil if there are none.
func (e *Errors) Err() error { return e.err }

// Len is the number of distinct errors collected.
func (e *Errors) Len() int { return e.n }

// Add err if it is not nil and has a new message. Returns true if err was added.
func (e *Errors) Add(err error) bool {
	if err == nil {
		return false
	}
	if e.seen == nil {
		e.seen = Set[string]{}
	}
	if !e.seen.Add(err.Error()) {
		return false
	}
	e.err = errors.Join(e.err, err)
	e.n++
	return true
}
