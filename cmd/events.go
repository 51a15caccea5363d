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

type eventsCmd struct {
	head     int
	tail     int
	format   string
	jsonPath string
}

func (*eventsCmd) Name() string     { return "events" }
func (*eventsCmd) Synopsis() string { return "list the parsed events of an event file" }
func (*eventsCmd) Usage() string {
	return `payrun events [-head <n>] [-tail <n>] <events-file>

  Lists the events the engine would consume, after parsing and skipping of
  malformed lines, with options for limiting the output.
`
}

func (p *eventsCmd) SetFlags(f *flag.FlagSet) {
	f.IntVar(&p.head, "head", 0, "Show only the first N events.")
	f.IntVar(&p.tail, "tail", 0, "Show only the last N events.")
	f.StringVar(&p.format, "format", "", "Input format (csv, jsonl or json). Defaults from the file extension.")
	f.StringVar(&p.jsonPath, "path", "", "JSONPath selecting the event array inside a JSON document.")
}

func (p *eventsCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if p.head > 0 && p.tail > 0 {
		fmt.Fprintln(os.Stderr, "Error: -head and -tail flags cannot be used together.")
		return subcommands.ExitUsageError
	}
	if f.NArg() != 1 {
		fmt.Fprintln(os.Stderr, "Error: events expects exactly one events file.")
		return subcommands.ExitUsageError
	}

	src, closeFile, err := eventsFile(f.Arg(0), p.format, p.jsonPath)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}
	defer closeFile()

	var events []payrun.Event
	for ev, err := range src {
		if err != nil {
			fmt.Fprintln(os.Stderr, err)
			return subcommands.ExitFailure
		}
		events = append(events, ev)
	}

	if p.head > 0 && len(events) > p.head {
		events = events[:p.head]
	}
	if p.tail > 0 && len(events) > p.tail {
		events = events[len(events)-p.tail:]
	}

	printMarkdown(renderer.Events(events))
	return subcommands.ExitSuccess
}
