package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/google/subcommands"

	"github.com/payrun/payrun"
)

type checkCmd struct {
	format   string
	jsonPath string
}

func (*checkCmd) Name() string     { return "check" }
func (*checkCmd) Synopsis() string { return "lint an event file and summarize what it contains" }
func (*checkCmd) Usage() string {
	return `payrun check <events-file>

  Parses and applies the whole event file without printing the snapshot, then
  summarizes it: events per type, accounts touched, transactions recorded,
  locked accounts and disputes still open at the end of the run. Malformed
  lines are reported on stderr as they are skipped.
`
}

func (p *checkCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&p.format, "format", "", "Input format (csv, jsonl or json). Defaults from the file extension.")
	f.StringVar(&p.jsonPath, "path", "", "JSONPath selecting the event array inside a JSON document.")
}

func (p *checkCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if f.NArg() != 1 {
		fmt.Fprintln(os.Stderr, "Error: check expects exactly one events file.")
		return subcommands.ExitUsageError
	}

	src, closeFile, err := eventsFile(f.Arg(0), p.format, p.jsonPath)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}
	defer closeFile()

	engine := payrun.NewEngine()
	counts := make(map[payrun.EventType]int)
	total := 0
	for ev, err := range src {
		if err != nil {
			fmt.Fprintln(os.Stderr, err)
			return subcommands.ExitFailure
		}
		counts[ev.What()]++
		total++
		engine.Apply(ev)
	}

	snapshot := engine.Snapshot()
	locked := 0
	for _, account := range snapshot {
		if account.Locked {
			locked++
		}
	}

	var b strings.Builder
	fmt.Fprintf(&b, "# Check %s\n\n", f.Arg(0))
	fmt.Fprintf(&b, "- events: %d\n", total)
	for _, kind := range []payrun.EventType{payrun.EvDeposit, payrun.EvWithdrawal, payrun.EvDispute, payrun.EvResolve, payrun.EvChargeback} {
		if counts[kind] > 0 {
			fmt.Fprintf(&b, "  - %s: %d\n", kind, counts[kind])
		}
	}
	fmt.Fprintf(&b, "- accounts: %d (%d locked)\n", len(snapshot), locked)
	fmt.Fprintf(&b, "- transactions recorded: %d\n", engine.Ledger().Len())
	fmt.Fprintf(&b, "- disputes still open: %d\n", engine.Ledger().Disputes())

	printMarkdown(b.String())
	return subcommands.ExitSuccess
}
