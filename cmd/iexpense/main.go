package main

import (
	"context"
	"flag"
	"os"
	"path"

	"github.com/google/subcommands"

	"iexpense/internal/cli"
	"iexpense/internal/commands"
	"iexpense/internal/config"
	"iexpense/internal/log"
)

func main() {
	// Load .env file for local development (ignored when absent)
	cli.LoadEnvFile()

	// Only the log level is read up front; commands that need storage
	// validate the full configuration when they open a session.
	logger := cli.SetupLogger(config.Load().LogLevel, os.Stderr)
	ctx := log.NewContext(context.Background(), logger)

	commander := subcommands.NewCommander(flag.CommandLine, path.Base(os.Args[0]))
	commander.Register(commander.HelpCommand(), "")
	commander.Register(commander.FlagsCommand(), "")
	commander.Register(commander.CommandsCommand(), "")
	commands.Register(commander, &commands.Env{
		Open: func(ctx context.Context) (*cli.Session, error) { return cli.OpenFromEnv(ctx, logger) },
		Out:  os.Stdout,
		Err:  os.Stderr,
	})

	flag.Parse()
	os.Exit(int(commander.Execute(ctx)))
}
