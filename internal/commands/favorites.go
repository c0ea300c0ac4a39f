package commands

import (
	"context"
	"flag"
	"fmt"

	"github.com/google/subcommands"

	"iexpense/internal/cli"
)

type favoriteCmd struct {
	env *Env
}

func (*favoriteCmd) Name() string     { return "favorite" }
func (*favoriteCmd) Synopsis() string { return "manage favorite ids" }
func (*favoriteCmd) Usage() string {
	return `iexpense favorite add <id> | remove <id> | list

  Maintains the favorites set.
`
}

func (*favoriteCmd) SetFlags(*flag.FlagSet) {}

func (c *favoriteCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	args := f.Args()
	if len(args) == 0 {
		fmt.Fprint(c.env.Err, c.Usage())
		return subcommands.ExitUsageError
	}
	verb := args[0]
	switch {
	case verb == "list" && len(args) == 1:
	case (verb == "add" || verb == "remove") && len(args) == 2:
	default:
		fmt.Fprint(c.env.Err, c.Usage())
		return subcommands.ExitUsageError
	}

	return c.env.withSession(ctx, func(s *cli.Session) subcommands.ExitStatus {
		switch verb {
		case "add":
			s.Favorites.Add(ctx, args[1])
		case "remove":
			s.Favorites.Remove(ctx, args[1])
		}
		for _, id := range s.Favorites.List() {
			fmt.Fprintln(c.env.Out, id)
		}
		return subcommands.ExitSuccess
	})
}
