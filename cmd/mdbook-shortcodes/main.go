package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
)

func main() {
	exitCode := run(os.Args[1:], os.Stdin, os.Stdout, os.Stderr)
	os.Exit(exitCode)
}

// run is the main entry point for the CLI, separated for testing
func run(args []string, stdin io.Reader, stdout, stderr io.Writer) int {
	cmd := newRootCommand(stdin, stdout, stderr)
	cmd.SetArgs(args)

	err := cmd.ExecuteContext(context.Background())
	if err == nil {
		return ExitCodeSuccess
	}

	var exitErr *exitError
	if !errors.As(err, &exitErr) {
		// Flag and argument errors raised by cobra
		fmt.Fprintf(stderr, FmtError, err)
		return ExitCodeUsageError
	}
	if exitErr.msg != "" {
		if exitErr.err != nil {
			fmt.Fprintf(stderr, FmtErrorWithCause, exitErr.msg, exitErr.err)
		} else {
			fmt.Fprintln(stderr, exitErr.msg)
		}
	}
	return exitErr.code
}

// exitError carries the exit code a command failed with
type exitError struct {
	code int
	msg  string
	err  error
}

func newExitError(code int, msg string, err error) *exitError {
	return &exitError{code: code, msg: msg, err: err}
}

func (e *exitError) Error() string {
	if e.err == nil {
		return e.msg
	}
	return e.msg + ": " + e.err.Error()
}

func (e *exitError) Unwrap() error {
	return e.err
}
