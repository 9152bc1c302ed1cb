package cli

import (
	"errors"
	"fmt"
)

var (
	// ErrUnknownCommand is returned when the first argument names no
	// registered command.
	ErrUnknownCommand = errors.New("unknown command")
	// ErrNoDataFile is returned when a data file is required but the host
	// did not configure one.
	ErrNoDataFile = errors.New("no user data file configured")
)

// ExitError is an expected, user-facing failure. Its message is printed
// without diagnostics and Code becomes the process exit status.
type ExitError struct {
	Code      int
	Message   string
	ShowUsage bool
}

func (e *ExitError) Error() string {
	if e.Message == "" {
		return fmt.Sprintf("exit status %d", e.Code)
	}
	return e.Message
}

// ParseError reports that a command's arguments did not match its options.
// The parser message and usage have already been printed.
type ParseError struct {
	Command string
	Err     error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("%s: %v", e.Command, e.Err)
}

func (e *ParseError) Unwrap() error {
	return e.Err
}

// PanicError is a panic raised by a command, recovered with its stack.
type PanicError struct {
	Command string
	Value   any
	Stack   []byte
}

func (e *PanicError) Error() string {
	return fmt.Sprintf("command %s panicked: %v", e.Command, e.Value)
}
