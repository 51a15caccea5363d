package payrun

import (
	"fmt"
	"io"
)

// EncodeSnapshot writes a snapshot in the canonical tabular format: a header
// row followed by one row per account, fields joined by ", ", amounts with
// exactly 4 fractional digits, locked as true/false.
//
// This output contract (field order, rounding, one row per account that
// received at least one event) is load-bearing; do not change it.
func EncodeSnapshot(w io.Writer, accounts []Account) error {
	if _, err := fmt.Fprintln(w, "client, available, held, total, locked"); err != nil {
		return err
	}
	for _, account := range accounts {
		if _, err := fmt.Fprintln(w, account); err != nil {
			return err
		}
	}
	return nil
}
