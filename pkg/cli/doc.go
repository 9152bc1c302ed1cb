// Package cli is a small framework for programs made of sub-commands.
//
// A host program registers command factories by name, then hands its
// arguments to CLI.Run. The first argument selects the command
// (case-insensitively), the rest are parsed with kong into the command's
// option struct, and Handle runs with a Context holding the output sinks and
// the user's persisted settings. Settings changed during Handle are written
// back to the user data file once the command returns successfully.
//
//	app := cli.New("tool", func(r *cli.Registry) {
//		r.Register("greet", func() cli.Command { return &GreetCmd{} })
//	}, cli.WithDataFile(path))
//	os.Exit(app.Main(ctx, os.Args[1:]))
//
// Running the program without arguments, or with an unknown command, prints
// the command listing. "tool help greet" prints the usage of greet.
//
// Commands report expected failures by returning Context.Die or
// Context.Usage; the dispatcher prints them and picks the exit status.
package cli
