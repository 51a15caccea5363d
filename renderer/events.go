package renderer

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/payrun/payrun"
)

// Events renders a parsed event listing as a markdown table. Dispute-path
// events have no amount of their own; their cell is left empty.
func Events(events []payrun.Event) string {
	var b strings.Builder
	b.WriteString("# Events\n\n")

	if len(events) == 0 {
		b.WriteString("No events.\n")
		return b.String()
	}

	table := newTable(&b, []string{"Type", "Client", "Tx", "Amount"})
	for _, ev := range events {
		var amount string
		switch v := ev.(type) {
		case payrun.Deposit:
			amount = v.Amount.String()
		case payrun.Withdrawal:
			amount = v.Amount.String()
		}
		table.Append([]string{
			string(ev.What()),
			strconv.FormatUint(uint64(ev.Client()), 10),
			strconv.FormatUint(uint64(ev.Tx()), 10),
			amount,
		})
	}
	table.Render()

	b.WriteString(fmt.Sprintf("\n%d event(s).\n", len(events)))
	return b.String()
}
