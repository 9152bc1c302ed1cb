package cli

import (
	"fmt"
	"strings"

	"github.com/alecthomas/kong"
)

const helpWidth = 78

// parser wraps the kong grammar of a single command.
type parser struct {
	kong *kong.Kong
	// exited records that kong asked to exit, which only happens after it
	// printed help for --help.
	exited bool
}

func (c *CLI) newParser(name string, cmd Command) (*parser, error) {
	grammar := any(cmd)
	if o, ok := cmd.(Optioner); ok {
		grammar = o.Options()
	}

	header := name
	if u, ok := cmd.(UsageLiner); ok {
		header = u.UsageLine()
	}
	header = c.name + " " + header

	p := &parser{}
	k, err := kong.New(grammar,
		kong.Name(c.name+" "+name),
		kong.Description(cmd.Description()),
		kong.Writers(c.stderr, c.stderr),
		kong.Exit(func(int) { p.exited = true }),
		kong.ConfigureHelp(kong.HelpOptions{
			NoAppSummary:   true,
			WrapUpperBound: helpWidth,
		}),
		kong.Help(func(options kong.HelpOptions, ctx *kong.Context) error {
			fmt.Fprintf(ctx.Stdout, "Usage: %s\n", header)
			if err := kong.DefaultHelpPrinter(options, ctx); err != nil {
				return err
			}
			if x, ok := cmd.(ExtraHelper); ok {
				x.ExtraHelp(ctx.Stdout)
			}
			return nil
		}),
	)
	if err != nil {
		return nil, fmt.Errorf("command %s: invalid options: %w", name, err)
	}
	p.kong = k
	return p, nil
}

// parse fills the grammar from args. It reports true when help was printed
// instead.
func (p *parser) parse(args []string) (bool, error) {
	_, err := p.kong.Parse(args)
	if p.exited {
		return true, nil
	}
	return false, err
}

func (p *parser) printUsage() error {
	ctx, err := kong.Trace(p.kong, nil)
	if err != nil {
		return err
	}
	return ctx.PrintUsage(false)
}

// printCommands writes the sorted command listing to the error sink.
func (c *CLI) printCommands() error {
	fmt.Fprintln(c.stderr, "Available commands:")
	for _, name := range c.registry.Names() {
		cmd, _, err := c.command(name)
		if err != nil {
			return err
		}
		fmt.Fprintf(c.stderr, "%s%s\n", c.highlight.Sprintf("%-20s", name), cmd.Description())
	}
	return nil
}

// help prints usage for name, or the listing when name is unknown.
func (c *CLI) help(name string) error {
	name = strings.ToLower(name)
	cmd, ok, err := c.command(name)
	if err != nil {
		return err
	}
	if !ok {
		return c.printCommands()
	}

	p, err := c.newParser(name, cmd)
	if err != nil {
		return err
	}
	return p.printUsage()
}
