package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"

	"github.com/payrun/payrun"
)

type processCmd struct {
	output   string
	format   string
	jsonPath string
}

func (*processCmd) Name() string { return "process" }
func (*processCmd) Synopsis() string {
	return "apply an event file and print the final account snapshot"
}
func (*processCmd) Usage() string {
	return `payrun process [-o <file>] [-format csv|jsonl|json] [-path <jsonpath>] <events-file>

  Reads events (deposits, withdrawals, disputes, resolves, chargebacks),
  applies them in arrival order, and writes the final snapshot of every
  account in the canonical tabular format. Malformed input lines are reported
  on stderr and skipped.
`
}

func (p *processCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&p.output, "o", "", "Write the snapshot to this file instead of stdout.")
	f.StringVar(&p.format, "format", "", "Input format (csv, jsonl or json). Defaults from the file extension.")
	f.StringVar(&p.jsonPath, "path", "", "JSONPath selecting the event array inside a JSON document.")
}

func (p *processCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if f.NArg() != 1 {
		fmt.Fprintln(os.Stderr, "Error: process expects exactly one events file.")
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

	out := os.Stdout
	if p.output != "" {
		file, err := os.Create(p.output)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error creating output file %q: %v\n", p.output, err)
			return subcommands.ExitFailure
		}
		defer file.Close()
		out = file
	}

	if err := payrun.EncodeSnapshot(out, engine.Snapshot()); err != nil {
		fmt.Fprintf(os.Stderr, "Error writing snapshot: %v\n", err)
		return subcommands.ExitFailure
	}
	return subcommands.ExitSuccess
}
