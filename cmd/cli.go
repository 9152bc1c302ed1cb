package cmd

import "github.com/rana/subcmd/pkg/cli"

// Program is the name the demo host is invoked as
const Program = "subcmd"

// Register adds the subcmd commands to r
func Register(r *cli.Registry) {
	r.Register("greet", func() cli.Command { return &GreetCmd{} })
	r.Register("profile", func() cli.Command { return &ProfileCmd{} })
	r.Register("cfg", func() cli.Command { return &CfgCmd{} })
	r.Register("version", func() cli.Command { return &VersionCmd{} })
}
