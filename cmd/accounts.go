package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"

	"github.com/payrun/payrun"
	"github.com/payrun/payrun/renderer"
)

type accountsCmd struct {
	currency string
	format   string
	jsonPath string
}

func (*accountsCmd) Name() string { return "accounts" }
func (*accountsCmd) Synopsis() string {
	return "apply an event file and render the accounts as a report"
}
func (*accountsCmd) Usage() string {
	return `payrun accounts [-currency <code>] [-format csv|jsonl|json] <events-file>

  Applies the events and renders the resulting account balances as a markdown
  report in the terminal. With -currency, amounts are formatted as money in
  that ISO currency (display only, the engine is currency-agnostic).
`
}

func (p *accountsCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&p.currency, "currency", "", "Format amounts in this ISO currency code (e.g. USD).")
	f.StringVar(&p.format, "format", "", "Input format (csv, jsonl or json). Defaults from the file extension.")
	f.StringVar(&p.jsonPath, "path", "", "JSONPath selecting the event array inside a JSON document.")
}

func (p *accountsCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if f.NArg() != 1 {
		fmt.Fprintln(os.Stderr, "Error: accounts expects exactly one events file.")
		return subcommands.ExitUsageError
	}

	src, closeFile, err := eventsFile(f.Arg(0), p.format, p.jsonPath)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}
	defer closeFile()

	engine := payrun.NewEngine()
	if err := engine.Run(src); err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}

	printMarkdown(renderer.Accounts(engine.Snapshot(), p.currency))
	return subcommands.ExitSuccess
}
