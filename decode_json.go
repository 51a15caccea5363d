package payrun

import (
	"bufio"
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"iter"
	"log"

	"github.com/PaesslerAG/jsonpath"
)

// JSONLEvents returns a lazy sequence of events parsed from JSONL data, one
// event object per line, e.g. {"type":"deposit","client":1,"tx":1,"amount":2.0}.
// Malformed lines are reported on the log and skipped.
func JSONLEvents(r io.Reader) iter.Seq2[Event, error] {
	return func(yield func(Event, error) bool) {
		scanner := bufio.NewScanner(r)
		line := 0
		for scanner.Scan() {
			line++
			b := scanner.Bytes()
			if len(bytes.TrimSpace(b)) == 0 {
				continue
			}
			ev, err := decodeEvent(b)
			if err != nil {
				log.Printf("skipping line %d: %v", line, err)
				continue
			}
			if !yield(ev, nil) {
				return
			}
		}
		if err := scanner.Err(); err != nil {
			yield(nil, err)
		}
	}
}

// JSONEvents parses events out of a single JSON document. The path selects
// the array of event objects inside the document (for example "$.events" for
// {"events": [...]}); an empty path expects the document itself to be the
// array. Malformed entries are reported on the log and skipped.
func JSONEvents(r io.Reader, path string) iter.Seq2[Event, error] {
	return func(yield func(Event, error) bool) {
		dec := json.NewDecoder(r)
		dec.UseNumber() // keep amounts exact until decimal parses them

		var doc any
		if err := dec.Decode(&doc); err != nil {
			yield(nil, fmt.Errorf("invalid JSON document: %w", err))
			return
		}
		if path != "" {
			selected, err := jsonpath.Get(path, doc)
			if err != nil {
				yield(nil, fmt.Errorf("path %q: %w", path, err))
				return
			}
			doc = selected
		}
		items, ok := doc.([]any)
		if !ok {
			yield(nil, fmt.Errorf("path %q does not select an array of events", path))
			return
		}
		for i, item := range items {
			b, err := json.Marshal(item)
			if err != nil {
				yield(nil, err)
				return
			}
			ev, err := decodeEvent(b)
			if err != nil {
				log.Printf("skipping event %d: %v", i, err)
				continue
			}
			if !yield(ev, nil) {
				return
			}
		}
	}
}

// decodeEvent decodes a single JSON event object, dispatching on its type tag.
func decodeEvent(b []byte) (Event, error) {
	var identifier struct {
		Type EventType `json:"type"`
	}
	if err := json.Unmarshal(b, &identifier); err != nil {
		return nil, fmt.Errorf("could not identify event in %q: %w", string(b), err)
	}

	switch identifier.Type {
	case EvDeposit, EvWithdrawal:
		var temp struct {
			baseEvent
			Amount Amount `json:"amount"`
		}
		if err := json.Unmarshal(b, &temp); err != nil {
			return nil, err
		}
		if !temp.Amount.IsPositive() {
			return nil, fmt.Errorf("%s: amount must be positive, got %s", identifier.Type, temp.Amount)
		}
		if identifier.Type == EvDeposit {
			return NewDeposit(temp.ClientID, temp.TxID, temp.Amount), nil
		}
		return NewWithdrawal(temp.ClientID, temp.TxID, temp.Amount), nil
	case EvDispute, EvResolve, EvChargeback:
		var temp baseEvent
		if err := json.Unmarshal(b, &temp); err != nil {
			return nil, err
		}
		switch identifier.Type {
		case EvDispute:
			return NewDispute(temp.ClientID, temp.TxID), nil
		case EvResolve:
			return NewResolve(temp.ClientID, temp.TxID), nil
		default:
			return NewChargeback(temp.ClientID, temp.TxID), nil
		}
	default:
		return nil, fmt.Errorf("unknown event type %q", identifier.Type)
	}
}
