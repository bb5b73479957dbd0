// Copyright: This file is part of korrel8r, released under https://github.com/korrel8r/korrel8r/blob/main/LICENSE

// package must turns errors into panics, for command code that recovers in main.
package must

import "fmt"

// Must panics with err if it is not nil.
// If format is given the panic value is fmt.Errorf(format, args...) with err appended,
// so the original error is still available via [errors.Is].
func Must(err error, format ...any) {
	if err == nil {
		return
	}
	if len(format) > 0 {
		err = fmt.Errorf(format[0].(string)+": %w", append(format[1:], err)...)
	}
	panic(err)
}

// Must1 calls Must(err), then returns v.
func Must1[T any](v T, err error) T { Must(err); return v }
