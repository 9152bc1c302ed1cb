package cli

import (
	"context"
	"fmt"
	"io"

	"github.com/rana/subcmd/pkg/userdata"
)

// Command is one sub-command. Unless it implements Optioner, the command
// value itself is the kong grammar its options are parsed into, so it
// should be a pointer to a struct whose exported fields are flags and
// positional arguments.
type Command interface {
	// Description is the one-line summary shown in the command listing.
	Description() string
	// Handle runs the command once with options already parsed.
	Handle(ctx *Context) error
}

// Optioner lets a command parse its options into a separate struct.
type Optioner interface {
	Options() any
}

// UsageLiner overrides the text after the program name in the usage
// header. The default is the command name.
type UsageLiner interface {
	UsageLine() string
}

// ExtraHelper prints additional help after the generated option help.
type ExtraHelper interface {
	ExtraHelp(w io.Writer)
}

// Context carries everything a command may touch during Handle.
type Context struct {
	context.Context

	// Name is the name the command was invoked as.
	Name string
	// Program is the host program name.
	Program string
	Stdout  io.Writer
	Stderr  io.Writer
	// UserData is the live settings store for this invocation.
	UserData *userdata.UserData

	quiet bool
	usage func() error
}

// Out writes a line to the output sink.
func (c *Context) Out(format string, args ...any) {
	fmt.Fprintf(c.Stdout, format+"\n", args...)
}

// Warn writes a line to the error sink.
func (c *Context) Warn(format string, args ...any) {
	fmt.Fprintf(c.Stderr, format+"\n", args...)
}

// Verbose writes a line to the output sink unless the program runs quiet.
func (c *Context) Verbose(format string, args ...any) {
	if c.quiet {
		return
	}
	c.Out(format, args...)
}

// PrintUsage writes this command's help to the error sink.
func (c *Context) PrintUsage() error {
	if c.usage == nil {
		return nil
	}
	return c.usage()
}

// Die returns a failure that the dispatcher reports as message only.
// Return it from Handle; user data is not saved.
func (c *Context) Die(format string, args ...any) error {
	return &ExitError{Code: 1, Message: fmt.Sprintf(format, args...)}
}

// Usage returns a failure that the dispatcher reports as message followed by
// this command's usage. An empty format prints usage only.
func (c *Context) Usage(format string, args ...any) error {
	var msg string
	if format != "" {
		msg = fmt.Sprintf(format, args...)
	}
	return &ExitError{Code: 1, Message: msg, ShowUsage: true}
}
