package payrun

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"iter"
	"log"
	"strconv"
	"strings"
)

// Events returns a lazy sequence of events parsed from tabular CSV data with
// a "type, client, tx, amount" header row.
//
// Malformed rows (unknown type, unparseable field, missing amount) are
// reported on the log and skipped; they never reach the engine. Only an I/O
// failure terminates the sequence with an error.
func Events(r io.Reader) iter.Seq2[Event, error] {
	return func(yield func(Event, error) bool) {
		cr := csv.NewReader(r)
		cr.FieldsPerRecord = -1 // dispute-path rows have no amount column
		cr.TrimLeadingSpace = true

		line := 0
		for {
			record, err := cr.Read()
			if err == io.EOF {
				return
			}
			line++
			var parseErr *csv.ParseError
			if errors.As(err, &parseErr) {
				log.Printf("skipping line %d: %v", line, err)
				continue
			}
			if err != nil {
				yield(nil, err)
				return
			}
			if line == 1 {
				continue // header row
			}
			ev, err := parseRecord(record)
			if err != nil {
				log.Printf("skipping line %d: %v", line, err)
				continue
			}
			if !yield(ev, nil) {
				return
			}
		}
	}
}

// parseRecord converts one CSV record into an Event.
func parseRecord(record []string) (Event, error) {
	if len(record) < 3 {
		return nil, fmt.Errorf("expected at least 3 fields, got %d", len(record))
	}
	kind := EventType(strings.TrimSpace(record[0]))
	client, err := parseClientID(record[1])
	if err != nil {
		return nil, err
	}
	tx, err := parseTxID(record[2])
	if err != nil {
		return nil, err
	}

	switch kind {
	case EvDeposit, EvWithdrawal:
		if len(record) < 4 {
			return nil, fmt.Errorf("%s: missing amount", kind)
		}
		amount, err := ParseAmount(strings.TrimSpace(record[3]))
		if err != nil {
			return nil, err
		}
		if !amount.IsPositive() {
			return nil, fmt.Errorf("%s: amount must be positive, got %s", kind, amount)
		}
		if kind == EvDeposit {
			return NewDeposit(client, tx, amount), nil
		}
		return NewWithdrawal(client, tx, amount), nil
	case EvDispute:
		return NewDispute(client, tx), nil
	case EvResolve:
		return NewResolve(client, tx), nil
	case EvChargeback:
		return NewChargeback(client, tx), nil
	default:
		return nil, fmt.Errorf("unknown event type %q", record[0])
	}
}

func parseClientID(s string) (ClientID, error) {
	v, err := strconv.ParseUint(strings.TrimSpace(s), 10, 16)
	if err != nil {
		return 0, fmt.Errorf("invalid client id %q: %w", s, err)
	}
	return ClientID(v), nil
}

func parseTxID(s string) (TxID, error) {
	v, err := strconv.ParseUint(strings.TrimSpace(s), 10, 32)
	if err != nil {
		return 0, fmt.Errorf("invalid transaction id %q: %w", s, err)
	}
	return TxID(v), nil
}
