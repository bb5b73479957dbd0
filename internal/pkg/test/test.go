// Copyright: This file is part of korrel8r, released under https://github.com/korrel8r/korrel8r/blob/main/LICENSE

// package test contains helpers for writing tests
package test

import (
	"fmt"
	"io"
	"os"
	"strings"
)

// FakeMain runs f with os.Args replaced by args and captures what f writes to os.Stdout and os.Stderr.
// If args is nil, os.Args is not changed.
func FakeMain(args []string, f func()) (stdout, stderr string) {
	return FakeMainStdin("", args, f)
}

// FakeMainStdin is like FakeMain but also replaces os.Stdin with a reader for stdin.
func FakeMainStdin(stdin string, args []string, f func()) (stdout, stderr string) {
	outFile, errFile, inFile := tempFile(""), tempFile(""), tempFile(stdin)
	defer func() {
		for _, file := range []*os.File{outFile, errFile, inFile} {
			_ = file.Close()
			_ = os.Remove(file.Name())
		}
	}()
	func() {
		saveOut, saveErr, saveIn, saveArgs := os.Stdout, os.Stderr, os.Stdin, os.Args
		defer func() { os.Stdout, os.Stderr, os.Stdin, os.Args = saveOut, saveErr, saveIn, saveArgs }()
		os.Stdout, os.Stderr, os.Stdin = outFile, errFile, inFile
		if args != nil {
			os.Args = args
		}
		f()
	}()
	return readAll(outFile), readAll(errFile)
}

func tempFile(content string) *os.File {
	f := Must(os.CreateTemp("", "test-fake-main-"))
	Must(f.WriteString(content))
	Must(f.Seek(0, io.SeekStart))
	return f
}

func readAll(f *os.File) string {
	Must(f.Seek(0, io.SeekStart))
	b := &strings.Builder{}
	Must(io.Copy(b, f))
	return b.String()
}

// PanicErr panics if err is not nil
func PanicErr(err error) {
	if err != nil {
		panic(err)
	}
}

// Must panics if err is not nil, else returns v.
func Must[T any](v T, err error) T { PanicErr(err); return v }

// Recover calls f and returns the value it panics with as an error, or nil if it does not panic.
func Recover(f func()) (err error) {
	defer func() {
		if r := recover(); r != nil {
			if e, ok := r.(error); ok {
				err = e
			} else {
				err = &panicError{r}
			}
		}
	}()
	f()
	return nil
}

type panicError struct{ v any }

func (p *panicError) Error() string { return fmt.Sprint(p.v) }
