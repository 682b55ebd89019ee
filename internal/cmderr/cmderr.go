// Package cmderr maps command errors to process exit codes.
package cmderr

import (
	"errors"
	"fmt"
	"io"
	"os"
)

// Exit codes.
const (
	CodeFailure = 1
	CodeUsage   = 2
)

// ExitErr specific error for ExitOnErr function that passes the exit code and error caused.
type ExitErr struct {
	Code  int
	Cause error
}

func (x ExitErr) Error() string { return x.Cause.Error() }

func (x ExitErr) Unwrap() error { return x.Cause }

// Code returns the exit code for err: 0 for nil, the carried code for an
// ExitErr and CodeFailure otherwise.
func Code(err error) int {
	if err == nil {
		return 0
	}
	var e ExitErr
	if errors.As(err, &e) {
		return e.Code
	}
	return CodeFailure
}

// Report writes err to w in the form printed by ExitOnErr.
func Report(w io.Writer, err error) {
	fmt.Fprintln(w, "Error:", err)
}

// ExitOnErr writes error to os.Stderr and calls os.Exit with passed exit code or by default 1.
// Does nothing if err is nil.
func ExitOnErr(err error) {
	if err != nil {
		Report(os.Stderr, err)
		os.Exit(Code(err))
	}
}
