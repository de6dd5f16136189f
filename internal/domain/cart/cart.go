// internal/domain/cart/cart.go
package cart

import (
	"github.com/shopspring/decimal"
)

// Cart is the ordered sequence of lines in the active session. Insertion
// order is observable: positional removal indexes into it.
type Cart struct {
	lines []Line
}

// New creates an empty cart
func New() *Cart {
	return &Cart{lines: []Line{}}
}

// Append adds a line at the end. Lines for the same product are kept apart.
func (c *Cart) Append(line Line) {
	c.lines = append(c.lines, line)
}

// Remove deletes the line at index and reports whether it existed
func (c *Cart) Remove(index int) (Line, bool) {
	if index < 0 || index >= len(c.lines) {
		return Line{}, false
	}

	removed := c.lines[index]
	c.lines = append(c.lines[:index:index], c.lines[index+1:]...)
	return removed, true
}

// Clear empties the cart
func (c *Cart) Clear() {
	c.lines = []Line{}
}

// Lines returns a copy of the lines in insertion order
func (c *Cart) Lines() []Line {
	out := make([]Line, len(c.lines))
	copy(out, c.lines)
	return out
}

// Len returns the number of lines
func (c *Cart) Len() int {
	return len(c.lines)
}

// IsEmpty reports whether the cart has no lines
func (c *Cart) IsEmpty() bool {
	return len(c.lines) == 0
}

// Reserved sums the quantity held for productName across all lines
func (c *Cart) Reserved(productName string) int {
	reserved := 0
	for _, l := range c.lines {
		if l.ProductName == productName {
			reserved += l.Quantity
		}
	}
	return reserved
}

// ReservedByProduct returns the held quantity per product
func (c *Cart) ReservedByProduct() map[string]int {
	reserved := make(map[string]int)
	for _, l := range c.lines {
		reserved[l.ProductName] += l.Quantity
	}
	return reserved
}

// Totals sums the cart using the prices captured on each line
func (c *Cart) Totals() Totals {
	totals := Totals{
		LineCount:   len(c.lines),
		TotalAmount: decimal.Zero,
	}

	for _, l := range c.lines {
		totals.TotalQuantity += l.Quantity
		totals.TotalAmount = totals.TotalAmount.Add(l.Total())
	}

	return totals
}
