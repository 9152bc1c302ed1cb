package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"runtime/debug"
	"strings"

	"github.com/charmbracelet/log"
	"github.com/fatih/color"
	"github.com/spf13/afero"

	"github.com/rana/subcmd/pkg/props"
	"github.com/rana/subcmd/pkg/userdata"
)

// CLI resolves a command name, parses its options, runs it and saves any
// user data it changed.
type CLI struct {
	name     string
	registry *Registry

	stdout io.Writer
	stderr io.Writer
	fs     afero.Fs

	dataPath     func() (string, error)
	codec        props.Codec
	initUserData func(*props.Store) (*userdata.UserData, error)
	requireData  bool

	logger    *log.Logger
	quiet     bool
	color     bool
	highlight *color.Color
	exit      func(int)
}

// New builds a CLI for program. register is called once to populate the
// command registry.
func New(program string, register func(*Registry), opts ...Option) *CLI {
	c := &CLI{
		name:     program,
		registry: NewRegistry(),
		stdout:   os.Stdout,
		stderr:   os.Stderr,
		fs:       afero.NewOsFs(),
		initUserData: func(s *props.Store) (*userdata.UserData, error) {
			return userdata.New(s), nil
		},
		color: true,
		exit:  os.Exit,
	}
	for _, opt := range opts {
		opt(c)
	}

	if c.logger == nil {
		c.logger = log.NewWithOptions(c.stderr, log.Options{Prefix: program})
		if c.quiet {
			c.logger.SetLevel(log.WarnLevel)
		}
	}

	c.highlight = color.New(color.Bold)
	if !c.color {
		c.highlight.DisableColor()
	}

	if register != nil {
		register(c.registry)
	}
	return c
}

// Name returns the program name.
func (c *CLI) Name() string {
	return c.name
}

// Registry returns the populated command registry.
func (c *CLI) Registry() *Registry {
	return c.registry
}

// Run executes one invocation. args excludes the program name.
//
// User-facing failures are printed before Run returns them: *ExitError from
// a command, *ParseError for bad options, and ErrUnknownCommand. Any other
// error has not been reported yet.
func (c *CLI) Run(ctx context.Context, args []string) error {
	if len(args) == 0 {
		return c.printCommands()
	}

	name := strings.ToLower(args[0])
	if name == helpCommand {
		if len(args) < 2 {
			return c.printCommands()
		}
		return c.help(args[1])
	}

	cmd, ok, err := c.command(name)
	if err != nil {
		return err
	}
	if !ok {
		fmt.Fprintf(c.stderr, "Unknown command: %s\n\n", args[0])
		if err := c.printCommands(); err != nil {
			return err
		}
		return fmt.Errorf("%w: %s", ErrUnknownCommand, args[0])
	}

	p, err := c.newParser(name, cmd)
	if err != nil {
		return err
	}
	helped, err := p.parse(args[1:])
	if err != nil {
		fmt.Fprintf(c.stderr, "%s %s: error: %v\n", c.name, name, err)
		if uerr := p.printUsage(); uerr != nil {
			return uerr
		}
		return &ParseError{Command: name, Err: err}
	}
	if helped {
		return nil
	}

	file, err := c.dataFile()
	if err != nil {
		return err
	}
	ud, err := c.loadUserData(file)
	if err != nil {
		return err
	}

	cmdCtx := &Context{
		Context:  ctx,
		Name:     name,
		Program:  c.name,
		Stdout:   c.stdout,
		Stderr:   c.stderr,
		UserData: ud,
		quiet:    c.quiet,
		usage:    p.printUsage,
	}
	if err := c.invoke(cmdCtx, cmd); err != nil {
		var exit *ExitError
		if errors.As(err, &exit) {
			c.report(exit, p)
			return err
		}
		return fmt.Errorf("%s: %w", name, err)
	}

	if file != nil && ud.Dirty() {
		c.logger.Info("saving user data", "path", file.Path())
		if err := file.Flush(ud.Props()); err != nil {
			return fmt.Errorf("failed to save user data: %w", err)
		}
	}
	return nil
}

// Main runs args and returns the process exit status. Internal failures are
// logged with full detail; user-facing ones were already printed by Run.
func (c *CLI) Main(ctx context.Context, args []string) int {
	err := c.Run(ctx, args)
	if err == nil {
		return 0
	}

	var (
		exit     *ExitError
		parseErr *ParseError
		panicErr *PanicError
	)
	switch {
	case errors.As(err, &exit):
		return exit.Code
	case errors.As(err, &parseErr), errors.Is(err, ErrUnknownCommand):
		return 1
	case errors.As(err, &panicErr):
		c.logger.Error("command panicked", "command", panicErr.Command, "panic", panicErr.Value)
		c.stderr.Write(panicErr.Stack)
		return 1
	default:
		c.logger.Error("command failed", "err", err)
		return 1
	}
}

// Execute runs os.Args and exits with the resulting status.
func (c *CLI) Execute(ctx context.Context) {
	c.exit(c.Main(ctx, os.Args[1:]))
}

// command instantiates the command registered under name.
func (c *CLI) command(name string) (Command, bool, error) {
	f, ok := c.registry.Lookup(name)
	if !ok {
		return nil, false, nil
	}
	cmd := f()
	if cmd == nil {
		return nil, false, fmt.Errorf("command %s: factory returned nil", name)
	}
	return cmd, true, nil
}

// dataFile returns the backing file, or nil when running without one.
func (c *CLI) dataFile() (*props.File, error) {
	var path string
	if c.dataPath != nil {
		p, err := c.dataPath()
		if err != nil {
			return nil, fmt.Errorf("failed to resolve user data file: %w", err)
		}
		path = p
	}

	if path == "" {
		if c.requireData {
			return nil, ErrNoDataFile
		}
		return nil, nil
	}
	return props.NewFile(c.fs, path, c.codec), nil
}

func (c *CLI) loadUserData(file *props.File) (*userdata.UserData, error) {
	store := props.New()
	if file != nil {
		ok, err := file.Exists()
		if err != nil {
			return nil, err
		}
		if !ok {
			c.logger.Info("creating user data file", "path", file.Path())
			if err := file.Create(); err != nil {
				return nil, err
			}
		}

		store, err = file.Load()
		if err != nil {
			return nil, err
		}
	}

	ud, err := c.initUserData(store)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize user data: %w", err)
	}
	if ud == nil {
		return nil, errors.New("failed to initialize user data: hook returned nil")
	}
	return ud, nil
}

func (c *CLI) invoke(ctx *Context, cmd Command) (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = &PanicError{Command: ctx.Name, Value: r, Stack: debug.Stack()}
		}
	}()
	return cmd.Handle(ctx)
}

func (c *CLI) report(exit *ExitError, p *parser) {
	if exit.Message != "" {
		fmt.Fprintln(c.stderr, exit.Message)
	}
	if exit.ShowUsage {
		if err := p.printUsage(); err != nil {
			c.logger.Error("failed to print usage", "err", err)
		}
	}
}
