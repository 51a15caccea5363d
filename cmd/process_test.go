package cmd

import (
	"context"
	"flag"
	"os"
	"path/filepath"
	"testing"

	"github.com/google/subcommands"
)

func TestProcessExecute(t *testing.T) {
	tmp := t.TempDir()

	input := filepath.Join(tmp, "events.csv")
	csv := `type, client, tx, amount
deposit, 1, 1, 2.0
withdrawal, 1, 2, 1.0
deposit, 1, 3, 2.0
deposit, 2, 4, 2.0
dispute, 2, 4
chargeback, 2, 4
`
	if err := os.WriteFile(input, []byte(csv), 0644); err != nil {
		t.Fatal(err)
	}
	output := filepath.Join(tmp, "snapshot.csv")

	p := &processCmd{}
	f := flag.NewFlagSet("process", flag.ContinueOnError)
	p.SetFlags(f)
	if err := f.Parse([]string{"-o", output, input}); err != nil {
		t.Fatal(err)
	}

	if status := p.Execute(context.Background(), f); status != subcommands.ExitSuccess {
		t.Fatalf("Execute() = %v, want success", status)
	}

	got, err := os.ReadFile(output)
	if err != nil {
		t.Fatal(err)
	}
	want := "client, available, held, total, locked\n" +
		"1, 3.0000, 0.0000, 3.0000, false\n" +
		"2, 0.0000, 0.0000, 0.0000, true\n"
	if string(got) != want {
		t.Errorf("snapshot =\n%q\nwant\n%q", got, want)
	}
}

func TestProcessMissingFile(t *testing.T) {
	p := &processCmd{}
	f := flag.NewFlagSet("process", flag.ContinueOnError)
	p.SetFlags(f)
	if err := f.Parse([]string{filepath.Join(t.TempDir(), "nope.csv")}); err != nil {
		t.Fatal(err)
	}

	if status := p.Execute(context.Background(), f); status != subcommands.ExitFailure {
		t.Errorf("Execute() = %v, want failure", status)
	}
}

func TestEventsFileFormats(t *testing.T) {
	tmp := t.TempDir()

	testCases := []struct {
		name    string
		format  string
		content string
	}{
		{name: "events.csv", content: "type, client, tx, amount\ndeposit, 1, 1, 2.0\n"},
		{name: "events.jsonl", content: `{"type":"deposit","client":1,"tx":1,"amount":2.0}` + "\n"},
		{name: "events.json", content: `[{"type":"deposit","client":1,"tx":1,"amount":2.0}]`},
		{name: "events.txt", format: "csv", content: "type, client, tx, amount\ndeposit, 1, 1, 2.0\n"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			path := filepath.Join(tmp, tc.name)
			if err := os.WriteFile(path, []byte(tc.content), 0644); err != nil {
				t.Fatal(err)
			}

			src, closeFile, err := eventsFile(path, tc.format, "")
			if err != nil {
				t.Fatalf("eventsFile() error = %v", err)
			}
			defer closeFile()

			count := 0
			for _, err := range src {
				if err != nil {
					t.Fatalf("source error = %v", err)
				}
				count++
			}
			if count != 1 {
				t.Errorf("parsed %d events, want 1", count)
			}
		})
	}
}

func TestEventsFileUnknownFormat(t *testing.T) {
	path := filepath.Join(t.TempDir(), "events.csv")
	if err := os.WriteFile(path, []byte("type, client, tx, amount\n"), 0644); err != nil {
		t.Fatal(err)
	}

	if _, _, err := eventsFile(path, "xml", ""); err == nil {
		t.Error("eventsFile() with an unknown format should fail")
	}
}
