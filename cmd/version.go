package cmd

import (
	"github.com/rana/subcmd/internal/version"
	"github.com/rana/subcmd/pkg/cli"
)

// VersionCmd shows version information
type VersionCmd struct{}

// Description implements cli.Command
func (c *VersionCmd) Description() string {
	return "Show version information"
}

// Handle executes the version command
func (c *VersionCmd) Handle(ctx *cli.Context) error {
	ctx.Out("%s", version.String(ctx.Program))
	return nil
}
