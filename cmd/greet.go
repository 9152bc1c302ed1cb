package cmd

import (
	"strconv"

	"github.com/rana/subcmd/pkg/cli"
	"github.com/rana/subcmd/pkg/userdata"
)

const greetComponent = "greet"

// GreetCmd greets someone and counts the greetings
type GreetCmd struct {
	Name     string `help:"Name to greet (defaults to the remembered one)"`
	Remember bool   `help:"Remember the name for next time"`
}

// Description implements cli.Command
func (c *GreetCmd) Description() string {
	return "Greet someone"
}

// UsageLine implements cli.UsageLiner
func (c *GreetCmd) UsageLine() string {
	return "greet [--name NAME] [--remember]"
}

// Handle executes the greet command
func (c *GreetCmd) Handle(ctx *cli.Context) error {
	saved := ctx.UserData.Fetch(greetComponent)

	name := c.Name
	if name == "" {
		name = saved["name"]
	}
	if name == "" {
		return ctx.Usage("No name given and none remembered")
	}

	count := 0
	if v, ok := saved["count"]; ok {
		n, err := strconv.Atoi(v)
		if err != nil {
			return ctx.Die("Stored greeting count %q is not a number", v)
		}
		count = n
	}
	count++

	ctx.Out("Hello, %s!", name)

	fields := userdata.Fields{"count": userdata.Value(strconv.Itoa(count))}
	if c.Remember {
		fields["name"] = userdata.Value(name)
		ctx.Verbose("Remembered %s", name)
	}
	ctx.UserData.Store(greetComponent, fields)
	return nil
}
