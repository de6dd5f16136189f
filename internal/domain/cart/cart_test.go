package cart_test

import (
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/your-org/pos-terminal/internal/domain/cart"
)

func line(name string, qty int, price int64) cart.Line {
	return cart.Line{
		ProductName: name,
		Quantity:    qty,
		UnitPrice:   decimal.NewFromInt(price),
		AddedAt:     time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC),
	}
}

func TestAppend_DoesNotMerge(t *testing.T) {
	c := cart.New()
	c.Append(line("Bread", 2, 20))
	c.Append(line("Bread", 1, 20))

	assert.Equal(t, 2, c.Len())
	assert.Equal(t, 3, c.Reserved("Bread"))
	assert.Equal(t, 0, c.Reserved("Milk"))
}

func TestRemove(t *testing.T) {
	tests := []struct {
		name      string
		index     int
		wantOK    bool
		wantNames []string
	}{
		{name: "remove first: ok", index: 0, wantOK: true, wantNames: []string{"Milk", "Cheese"}},
		{name: "remove middle: ok", index: 1, wantOK: true, wantNames: []string{"Bread", "Cheese"}},
		{name: "remove last: ok", index: 2, wantOK: true, wantNames: []string{"Bread", "Milk"}},
		{name: "negative index: not found", index: -1, wantNames: []string{"Bread", "Milk", "Cheese"}},
		{name: "index past end: not found", index: 3, wantNames: []string{"Bread", "Milk", "Cheese"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := cart.New()
			c.Append(line("Bread", 1, 20))
			c.Append(line("Milk", 2, 30))
			c.Append(line("Cheese", 1, 80))

			_, ok := c.Remove(tt.index)
			assert.Equal(t, tt.wantOK, ok)

			var names []string
			for _, l := range c.Lines() {
				names = append(names, l.ProductName)
			}
			assert.Equal(t, tt.wantNames, names)
		})
	}
}

func TestRemove_DoesNotAliasSnapshots(t *testing.T) {
	c := cart.New()
	c.Append(line("Bread", 1, 20))
	c.Append(line("Milk", 2, 30))

	snapshot := c.Lines()
	removed, ok := c.Remove(0)
	require.True(t, ok)

	assert.Equal(t, "Bread", removed.ProductName)
	assert.Equal(t, "Bread", snapshot[0].ProductName)
	assert.Equal(t, "Milk", snapshot[1].ProductName)
}

func TestClear(t *testing.T) {
	c := cart.New()
	c.Append(line("Bread", 1, 20))
	c.Clear()

	assert.True(t, c.IsEmpty())
	assert.Empty(t, c.Lines())
	assert.Equal(t, 0, c.Reserved("Bread"))
}

func TestTotals(t *testing.T) {
	c := cart.New()
	c.Append(line("Bread", 3, 20))
	c.Append(line("Milk", 2, 30))
	c.Append(cart.Line{ProductName: "Apples (kg)", Quantity: 3, UnitPrice: decimal.RequireFromString("12.5")})

	totals := c.Totals()
	assert.Equal(t, 3, totals.LineCount)
	assert.Equal(t, 8, totals.TotalQuantity)
	assert.Equal(t, "157.5", totals.TotalAmount.String())

	want := map[string]int{"Bread": 3, "Milk": 2, "Apples (kg)": 3}
	assert.Empty(t, cmp.Diff(want, c.ReservedByProduct()))
}

func TestTotals_EmptyCart(t *testing.T) {
	totals := cart.New().Totals()

	assert.Equal(t, 0, totals.LineCount)
	assert.True(t, totals.TotalAmount.IsZero())
}
