// Package exitcode maps the errors that end a run of the command-line tool to
// the process exit status.
package exitcode

import (
	"errors"
	"flag"
	"os"
)

const (
	Success = 0

	// Something couldn't be printed, or the output couldn't be written
	Failure = 1

	// The command line itself was wrong
	Usage = 2
)

// Coder is an error that knows its own exit code
type Coder interface {
	error
	ExitCode() int
}

// Get returns the exit code for an error:
//
//	nil => Success
//	errors implementing Coder => value returned by ExitCode
//	flag.ErrHelp => Usage
//	all other errors => Failure
func Get(err error) int {
	if err == nil {
		return Success
	}

	if coder := Coder(nil); errors.As(err, &coder) {
		return coder.ExitCode()
	}

	if errors.Is(err, flag.ErrHelp) {
		return Usage
	}

	return Failure
}

// Set wraps an error in a Coder with the given exit code
func Set(err error, code int) error {
	if err == nil {
		return nil
	}
	return coder{err, code}
}

// UsageError marks "err" as a problem with the command line
func UsageError(err error) error {
	return Set(err, Usage)
}

var _ Coder = coder{}

type coder struct {
	error
	int
}

func (co coder) ExitCode() int {
	return co.int
}

func (co coder) Unwrap() error {
	return co.error
}

// Exit calls os.Exit with the exit code for "err"
func Exit(err error) {
	os.Exit(Get(err))
}
