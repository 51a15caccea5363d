package renderer

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/payrun/payrun"
)

// Accounts renders an account snapshot as a markdown table. If currency is
// non-empty, amounts are formatted as money in that currency instead of raw
// 4-digit decimals.
func Accounts(accounts []payrun.Account, currency string) string {
	var b strings.Builder
	b.WriteString("# Accounts\n\n")

	if len(accounts) == 0 {
		b.WriteString("No account received any event.\n")
		return b.String()
	}

	table := newTable(&b, []string{"Client", "Available", "Held", "Total", "Locked"})
	for _, account := range accounts {
		table.Append([]string{
			strconv.FormatUint(uint64(account.ID), 10),
			format(account.Available, currency),
			format(account.Held, currency),
			format(account.Total, currency),
			strconv.FormatBool(account.Locked),
		})
	}
	table.Render()

	b.WriteString(fmt.Sprintf("\n%d account(s).\n", len(accounts)))
	return b.String()
}

func format(a payrun.Amount, currency string) string {
	if currency == "" {
		return a.String()
	}
	return a.Display(currency)
}
