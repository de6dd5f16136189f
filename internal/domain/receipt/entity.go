// internal/domain/receipt/entity.go
package receipt

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"golang.org/x/text/currency"
)

// Line is one cart line as it appears on the receipt
type Line struct {
	Name      string          `json:"name"`
	Quantity  int             `json:"quantity"`
	UnitPrice decimal.Decimal `json:"unit_price"`
	LineTotal decimal.Decimal `json:"line_total"`
}

// Receipt is the snapshot of a cart taken at checkout
type Receipt struct {
	ID        uuid.UUID       `json:"id"`
	CreatedAt time.Time       `json:"created_at"`
	Lines     []Line          `json:"lines"`
	Total     decimal.Decimal `json:"total_amount"`
	Currency  currency.Unit   `json:"-"`
}

// New starts an empty receipt
func New(id uuid.UUID, createdAt time.Time, unit currency.Unit) *Receipt {
	return &Receipt{
		ID:        id,
		CreatedAt: createdAt,
		Lines:     []Line{},
		Total:     decimal.Zero,
		Currency:  unit,
	}
}

// AddLine appends a line priced with the given unit price and updates the total
func (r *Receipt) AddLine(name string, quantity int, unitPrice decimal.Decimal) Line {
	line := Line{
		Name:      name,
		Quantity:  quantity,
		UnitPrice: unitPrice,
		LineTotal: unitPrice.Mul(decimal.NewFromInt(int64(quantity))),
	}

	r.Lines = append(r.Lines, line)
	r.Total = r.Total.Add(line.LineTotal)
	return line
}

// CurrencyCode returns the ISO code of the receipt currency
func (r *Receipt) CurrencyCode() string {
	return r.Currency.String()
}
