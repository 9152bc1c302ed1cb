package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/rana/subcmd/cmd"
	"github.com/rana/subcmd/internal/config"
	"github.com/rana/subcmd/internal/version"
	"github.com/rana/subcmd/pkg/cli"
)

func main() {
	// Handle --version flag
	if len(os.Args) > 1 && (os.Args[1] == "--version" || os.Args[1] == "-v") {
		fmt.Println(version.Short())
		os.Exit(0)
	}

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "%s: %v\n", cmd.Program, err)
		os.Exit(1)
	}

	// Commands see Ctrl-C through their context
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)

	app := cli.New(cmd.Program, cmd.Register,
		cli.WithDataFileFunc(cfg.DataPath),
		cli.WithQuiet(cfg.Quiet),
		cli.WithColor(!cfg.NoColor),
	)
	code := app.Main(ctx, os.Args[1:])
	stop()
	os.Exit(code)
}
