// internal/domain/receipt/format.go
package receipt

import (
	"fmt"
	"strings"
)

// TimestampLayout is the date format written to the receipt log
const TimestampLayout = "2006-01-02 15:04:05"

const (
	recordHeader = "=== New Receipt ==="
	datePrefix   = "Date and time: "
	totalPrefix  = "Total amount: "
)

// FormatLine renders "<name> - <qty> x <unitPrice> = <lineTotal>"
func FormatLine(l Line) string {
	return fmt.Sprintf("%s - %d x %s = %s", l.Name, l.Quantity, l.UnitPrice.String(), l.LineTotal.String())
}

// Format renders the receipt as an append-only log record, blank separator
// line included. Downstream tooling parses this layout, keep it stable.
func (r *Receipt) Format() string {
	var b strings.Builder

	b.WriteString(recordHeader)
	b.WriteByte('\n')
	b.WriteString(datePrefix)
	b.WriteString(r.CreatedAt.Format(TimestampLayout))
	b.WriteByte('\n')

	for _, l := range r.Lines {
		b.WriteString(FormatLine(l))
		b.WriteByte('\n')
	}

	b.WriteString(totalPrefix)
	b.WriteString(r.Total.String())
	b.WriteString("\n\n")

	return b.String()
}
