// Package renderer turns engine reports into markdown.
package renderer

import (
	"io"

	"github.com/olekukonko/tablewriter"
)

// newTable creates a tablewriter configured to emit a markdown table.
func newTable(w io.Writer, headers []string) *tablewriter.Table {
	table := tablewriter.NewWriter(w)
	table.SetHeader(headers)
	table.SetAutoFormatHeaders(false)
	table.SetAutoWrapText(false)
	table.SetBorders(tablewriter.Border{Left: true, Top: false, Right: true, Bottom: false})
	table.SetCenterSeparator("|")
	return table
}
