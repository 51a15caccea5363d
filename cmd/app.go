// Package cmd implements the CLI application to run the clearing engine.
package cmd

import (
	"fmt"
	"iter"
	"os"
	"path/filepath"

	"github.com/charmbracelet/glamour"
	"github.com/google/subcommands"

	"github.com/payrun/payrun"
)

// Commands lists the subcommands.
// A main package will call subcommands.Register on each of them.
var Commands = []subcommands.Command{
	&processCmd{},
	&accountsCmd{},
	&eventsCmd{},
	&checkCmd{},
	&topicCmd{},
}

// eventsFile opens an event file and returns a lazy event sequence over it,
// picking the codec from the file extension (.csv, .jsonl, .json) unless
// format forces one. The returned close function must be called after the
// sequence has been consumed.
func eventsFile(path, format, jsonPath string) (iter.Seq2[payrun.Event, error], func() error, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, nil, fmt.Errorf("could not open events file %q: %w", path, err)
	}

	if format == "" {
		switch filepath.Ext(path) {
		case ".jsonl":
			format = "jsonl"
		case ".json":
			format = "json"
		default:
			format = "csv"
		}
	}

	var src iter.Seq2[payrun.Event, error]
	switch format {
	case "csv":
		src = payrun.Events(f)
	case "jsonl":
		src = payrun.JSONLEvents(f)
	case "json":
		src = payrun.JSONEvents(f, jsonPath)
	default:
		f.Close()
		return nil, nil, fmt.Errorf("unknown input format %q", format)
	}
	return src, f.Close, nil
}

// printMarkdown renders a markdown string to the terminal.
func printMarkdown(md string) {
	out, err := glamour.Render(md, "auto")
	if err != nil {
		// fall back to the raw markdown
		fmt.Println(md)
		return
	}
	fmt.Print(out)
}
