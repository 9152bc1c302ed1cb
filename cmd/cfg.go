package cmd

import (
	"strings"

	"github.com/rana/subcmd/pkg/cli"
	"github.com/rana/subcmd/pkg/userdata"
)

// CfgCmd shows or sets stored settings
type CfgCmd struct {
	Key   string `arg:"" optional:"" help:"Setting as component.field"`
	Value string `arg:"" optional:"" help:"New value"`
}

// Description implements cli.Command
func (c *CfgCmd) Description() string {
	return "Show or set stored settings"
}

// UsageLine implements cli.UsageLiner
func (c *CfgCmd) UsageLine() string {
	return "cfg [KEY [VALUE]]"
}

// Handle shows all settings, one setting, or sets one
func (c *CfgCmd) Handle(ctx *cli.Context) error {
	if c.Key == "" {
		return c.showAll(ctx)
	}

	component, field, ok := strings.Cut(c.Key, ".")
	if !ok || component == "" || field == "" {
		return ctx.Usage("Setting %q must look like component.field", c.Key)
	}

	if c.Value == "" {
		value, ok := ctx.UserData.Get(component, field)
		if !ok {
			return ctx.Die("%s is not set", c.Key)
		}
		ctx.Out("%s", value)
		return nil
	}

	ctx.UserData.Store(component, userdata.Fields{field: userdata.Value(c.Value)})
	ctx.Out("%s set to: %s", c.Key, c.Value)
	return nil
}

func (c *CfgCmd) showAll(ctx *cli.Context) error {
	store := ctx.UserData.Props()
	if store.Len() == 0 {
		ctx.Out("No settings stored")
		return nil
	}

	ctx.Out("Current settings:\n")
	for _, key := range store.Keys() {
		value, _ := store.Get(key)
		ctx.Out("%-24s %s", key, value)
	}
	return nil
}
