package cli

import (
	"io"

	"github.com/charmbracelet/log"
	"github.com/spf13/afero"

	"github.com/rana/subcmd/pkg/props"
	"github.com/rana/subcmd/pkg/userdata"
)

// Option configures a CLI.
type Option func(*CLI)

// WithWriters sets the output and error sinks.
func WithWriters(stdout, stderr io.Writer) Option {
	return func(c *CLI) {
		c.stdout = stdout
		c.stderr = stderr
	}
}

// WithFs sets the filesystem holding the user data file.
func WithFs(fs afero.Fs) Option {
	return func(c *CLI) {
		c.fs = fs
	}
}

// WithDataFile uses a fixed user data file. An empty path means no file.
func WithDataFile(path string) Option {
	return WithDataFileFunc(func() (string, error) {
		return path, nil
	})
}

// WithDataFileFunc resolves the user data file on each invocation. Returning
// an empty path means no file.
func WithDataFileFunc(fn func() (string, error)) Option {
	return func(c *CLI) {
		c.dataPath = fn
	}
}

// WithCodec forces the file format instead of choosing it by extension.
func WithCodec(codec props.Codec) Option {
	return func(c *CLI) {
		c.codec = codec
	}
}

// WithUserData sets the hook that turns a freshly loaded store into the live
// user data.
func WithUserData(fn func(*props.Store) (*userdata.UserData, error)) Option {
	return func(c *CLI) {
		c.initUserData = fn
	}
}

// WithRequireDataFile makes a missing data file location an error instead of
// running with an in-memory store that is never saved.
func WithRequireDataFile(require bool) Option {
	return func(c *CLI) {
		c.requireData = require
	}
}

// WithLogger replaces the default logger.
func WithLogger(logger *log.Logger) Option {
	return func(c *CLI) {
		c.logger = logger
	}
}

// WithQuiet silences informational logging and Context.Verbose output.
func WithQuiet(quiet bool) Option {
	return func(c *CLI) {
		c.quiet = quiet
	}
}

// WithColor enables or disables highlighting in the command listing.
func WithColor(enabled bool) Option {
	return func(c *CLI) {
		c.color = enabled
	}
}

// WithExit replaces os.Exit in Execute.
func WithExit(exit func(int)) Option {
	return func(c *CLI) {
		c.exit = exit
	}
}
