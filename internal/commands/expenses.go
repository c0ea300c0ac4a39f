package commands

import (
	"context"
	"flag"
	"fmt"
	"strconv"
	"text/tabwriter"

	"github.com/google/subcommands"

	"iexpense/internal/cli"
	"iexpense/internal/core"
)

// addCmd holds the flags for the 'add' subcommand.
type addCmd struct {
	env      *Env
	name     string
	category string
	amount   string
}

func (*addCmd) Name() string     { return "add" }
func (*addCmd) Synopsis() string { return "append an expense to the ledger" }
func (*addCmd) Usage() string {
	return `iexpense add -name <name> -amount <amount> [-category Personal|Business|<label>]

  Appends an expense. Amounts accept a dot or comma decimal separator.
`
}

func (c *addCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.name, "name", "", "Name of the expense.")
	f.StringVar(&c.category, "category", string(core.Personal), "Category label.")
	f.StringVar(&c.amount, "amount", "", "Amount, e.g. 4.50.")
}

func (c *addCmd) Execute(ctx context.Context, _ *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	amount, err := core.ParseAmount(c.amount)
	if err != nil {
		fmt.Fprintf(c.env.Err, "Error parsing amount %q: %v\n", c.amount, err)
		return subcommands.ExitUsageError
	}
	rec := core.NewExpenseRecord(c.name, core.Category(c.category), amount)
	if err := rec.Validate(); err != nil {
		fmt.Fprintf(c.env.Err, "Invalid expense: %v\n", err)
		return subcommands.ExitUsageError
	}

	return c.env.withSession(ctx, func(s *cli.Session) subcommands.ExitStatus {
		s.Ledger.Append(ctx, rec)
		fmt.Fprintf(c.env.Out, "added %s %s %s\n", rec.ID, rec.Name, core.FormatAmount(rec.Amount, s.Config.Currency))
		return subcommands.ExitSuccess
	})
}

// listCmd holds the flags for the 'list' subcommand.
type listCmd struct {
	env      *Env
	category string
}

func (*listCmd) Name() string     { return "list" }
func (*listCmd) Synopsis() string { return "list expenses, optionally for one category" }
func (*listCmd) Usage() string {
	return `iexpense list [-category <label>]

  Prints one expense per line with its offset. With -category the offsets
  are positions in that category, as accepted by 'remove -category'.
`
}

func (c *listCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.category, "category", "", "Only list this category.")
}

func (c *listCmd) Execute(ctx context.Context, _ *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	return c.env.withSession(ctx, func(s *cli.Session) subcommands.ExitStatus {
		records := s.Ledger.Items()
		if c.category != "" {
			records = s.Ledger.ByCategory(core.Category(c.category))
		}

		w := tabwriter.NewWriter(c.env.Out, 0, 4, 2, ' ', 0)
		fmt.Fprintln(w, "#\tNAME\tCATEGORY\tAMOUNT\tTIER")
		for i, r := range records {
			fmt.Fprintf(w, "%d\t%s\t%s\t%s\t%s\n", i, r.Name, r.Category, core.FormatAmount(r.Amount, s.Config.Currency), core.TierOf(r.Amount))
		}
		if err := w.Flush(); err != nil {
			fmt.Fprintf(c.env.Err, "Error writing output: %v\n", err)
			return subcommands.ExitFailure
		}
		return subcommands.ExitSuccess
	})
}

// removeCmd holds the flags for the 'remove' subcommand.
type removeCmd struct {
	env      *Env
	category string
}

func (*removeCmd) Name() string     { return "remove" }
func (*removeCmd) Synopsis() string { return "remove expenses by offset" }
func (*removeCmd) Usage() string {
	return `iexpense remove [-category <label>] <offset>...

  Removes the expenses at the given offsets, as printed by 'list'. If any
  offset is out of range nothing is removed.
`
}

func (c *removeCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.category, "category", "", "Offsets refer to this category's list.")
}

func (c *removeCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if f.NArg() == 0 {
		fmt.Fprintln(c.env.Err, "remove needs at least one offset")
		return subcommands.ExitUsageError
	}
	offsets := make([]int, 0, f.NArg())
	for _, arg := range f.Args() {
		o, err := strconv.Atoi(arg)
		if err != nil {
			fmt.Fprintf(c.env.Err, "Error parsing offset %q: %v\n", arg, err)
			return subcommands.ExitUsageError
		}
		offsets = append(offsets, o)
	}

	return c.env.withSession(ctx, func(s *cli.Session) subcommands.ExitStatus {
		var err error
		if c.category != "" {
			err = s.Ledger.RemoveInCategory(ctx, core.Category(c.category), offsets...)
		} else {
			err = s.Ledger.RemoveAt(ctx, offsets...)
		}
		if err != nil {
			fmt.Fprintf(c.env.Err, "Error removing expenses: %v\n", err)
			return subcommands.ExitFailure
		}
		fmt.Fprintf(c.env.Out, "%d expenses left\n", s.Ledger.Len())
		return subcommands.ExitSuccess
	})
}

// summaryCmd prints per-category totals.
type summaryCmd struct {
	env *Env
}

func (*summaryCmd) Name() string     { return "summary" }
func (*summaryCmd) Synopsis() string { return "display totals per category" }
func (*summaryCmd) Usage() string {
	return `iexpense summary

  Displays the total of each category and the grand total.
`
}

func (*summaryCmd) SetFlags(*flag.FlagSet) {}

func (c *summaryCmd) Execute(ctx context.Context, _ *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	return c.env.withSession(ctx, func(s *cli.Session) subcommands.ExitStatus {
		sum := s.Ledger.Summary()
		w := tabwriter.NewWriter(c.env.Out, 0, 4, 2, ' ', 0)
		fmt.Fprintln(w, "CATEGORY\tCOUNT\tTOTAL")
		for _, ca := range sum.ByCategory {
			fmt.Fprintf(w, "%s\t%d\t%s\n", ca.Category, ca.Count, core.FormatAmount(ca.Amount, s.Config.Currency))
		}
		fmt.Fprintf(w, "TOTAL\t%d\t%s\n", s.Ledger.Len(), core.FormatAmount(sum.Total, s.Config.Currency))
		if err := w.Flush(); err != nil {
			fmt.Fprintf(c.env.Err, "Error writing output: %v\n", err)
			return subcommands.ExitFailure
		}
		return subcommands.ExitSuccess
	})
}
