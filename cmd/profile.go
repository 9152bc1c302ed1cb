package cmd

import (
	"fmt"
	"io"
	"sort"

	"github.com/rana/subcmd/pkg/cli"
	"github.com/rana/subcmd/pkg/userdata"
)

const profileComponent = "profile"

// ProfileCmd shows or updates the user profile
type ProfileCmd struct {
	Name  *string `help:"Set your name"`
	Email *string `help:"Set your email address"`
}

// Description implements cli.Command
func (c *ProfileCmd) Description() string {
	return "Show or update your profile"
}

// UsageLine implements cli.UsageLiner
func (c *ProfileCmd) UsageLine() string {
	return "profile [--name NAME] [--email EMAIL]"
}

// ExtraHelp implements cli.ExtraHelper
func (c *ProfileCmd) ExtraHelp(w io.Writer) {
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Without flags the stored profile is shown. Fields that are not")
	fmt.Fprintln(w, "given keep their stored value.")
}

// Handle executes the profile command
func (c *ProfileCmd) Handle(ctx *cli.Context) error {
	if c.Name == nil && c.Email == nil {
		return c.show(ctx)
	}

	ctx.UserData.Store(profileComponent, userdata.Fields{
		"name":  c.Name,
		"email": c.Email,
	})
	ctx.Out("Profile updated")
	return nil
}

func (c *ProfileCmd) show(ctx *cli.Context) error {
	fields := ctx.UserData.Fetch(profileComponent)
	if len(fields) == 0 {
		ctx.Out("No profile stored. Set one with: %s profile --name NAME", ctx.Program)
		return nil
	}

	names := make([]string, 0, len(fields))
	for name := range fields {
		names = append(names, name)
	}
	sort.Strings(names)

	for _, name := range names {
		ctx.Out("%-8s %s", name+":", fields[name])
	}
	return nil
}
