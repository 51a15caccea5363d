package main

import (
	"context"
	"flag"
	"os"
	"path"

	"github.com/google/subcommands"
	"github.com/posener/complete/v2"
	"github.com/posener/complete/v2/predict"

	"github.com/payrun/payrun/cmd"
)

func main() {
	completion()

	commander := subcommands.NewCommander(flag.CommandLine, path.Base(os.Args[0]))

	commander.Register(commander.HelpCommand(), "help")
	commander.Register(commander.FlagsCommand(), "help")
	commander.Register(commander.CommandsCommand(), "help")
	for _, c := range cmd.Commands {
		commander.Register(c, "")
	}

	flag.Parse()
	os.Exit(int(commander.Execute(context.Background())))
}

// completion installs shell completion for the binary. It only acts when the
// process is invoked by the shell completion machinery.
func completion() {
	run := &complete.Command{
		Flags: map[string]complete.Predictor{
			"o":      predict.Files("*"),
			"format": predict.Set{"csv", "jsonl", "json"},
			"path":   predict.Something,
			"head":   predict.Something,
			"tail":   predict.Something,
		},
		Args: predict.Files("*"),
	}
	root := &complete.Command{
		Sub: map[string]*complete.Command{
			"process":  run,
			"accounts": run,
			"events":   run,
			"check":    run,
			"topic":    {Args: predict.Set{"readme", "format", "disputes", "*"}},
		},
	}
	root.Complete("payrun")
}
