package commands

import (
	"context"
	"flag"
	"fmt"

	"github.com/google/subcommands"

	"iexpense/internal/cli"
	"iexpense/internal/core"
)

type activityCmd struct {
	env *Env
}

func (*activityCmd) Name() string     { return "activity" }
func (*activityCmd) Synopsis() string { return "record or list activities" }
func (*activityCmd) Usage() string {
	return `iexpense activity add -title <title> [-description <text>]
iexpense activity list
`
}

func (*activityCmd) SetFlags(*flag.FlagSet) {}

func (c *activityCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	args := f.Args()
	if len(args) == 0 {
		fmt.Fprint(c.env.Err, c.Usage())
		return subcommands.ExitUsageError
	}

	switch args[0] {
	case "list":
		if len(args) != 1 {
			fmt.Fprint(c.env.Err, c.Usage())
			return subcommands.ExitUsageError
		}
		return c.env.withSession(ctx, func(s *cli.Session) subcommands.ExitStatus {
			for _, a := range s.Activities.Items() {
				if a.Description == "" {
					fmt.Fprintln(c.env.Out, a.Title)
					continue
				}
				fmt.Fprintf(c.env.Out, "%s: %s\n", a.Title, a.Description)
			}
			return subcommands.ExitSuccess
		})
	case "add":
		var title, description string
		fs := flag.NewFlagSet("activity add", flag.ContinueOnError)
		fs.SetOutput(c.env.Err)
		fs.StringVar(&title, "title", "", "Activity title.")
		fs.StringVar(&description, "description", "", "Activity description.")
		if err := fs.Parse(args[1:]); err != nil || fs.NArg() != 0 {
			return subcommands.ExitUsageError
		}
		if err := (core.Activity{Title: title}).Validate(); err != nil {
			fmt.Fprintf(c.env.Err, "Invalid activity: %v\n", err)
			return subcommands.ExitUsageError
		}
		return c.env.withSession(ctx, func(s *cli.Session) subcommands.ExitStatus {
			a := s.Activities.Append(ctx, title, description)
			fmt.Fprintf(c.env.Out, "added %s %s\n", a.ID, a.Title)
			return subcommands.ExitSuccess
		})
	default:
		fmt.Fprint(c.env.Err, c.Usage())
		return subcommands.ExitUsageError
	}
}
