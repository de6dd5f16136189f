// internal/domain/pos/views.go
package pos

import (
	"fmt"

	"github.com/shopspring/decimal"
	"github.com/your-org/pos-terminal/internal/domain/cart"
	"github.com/your-org/pos-terminal/internal/domain/catalog"
	"github.com/your-org/pos-terminal/internal/domain/receipt"
)

// ProductView is a catalog entry with its derived availability
type ProductView struct {
	Name        string          `json:"name"`
	UnitPrice   decimal.Decimal `json:"unit_price"`
	StockOnHand int             `json:"stock_on_hand"`
	Available   int             `json:"available"`
}

// CartLineView is one cart line ready for display
type CartLineView struct {
	Index       int             `json:"index"`
	ProductName string          `json:"product_name"`
	Quantity    int             `json:"quantity"`
	UnitPrice   decimal.Decimal `json:"unit_price"`
	LineTotal   decimal.Decimal `json:"line_total"`
	Display     string          `json:"display"`
}

// CartView is the cart as the operator sees it
type CartView struct {
	Lines    []CartLineView `json:"lines"`
	Totals   cart.Totals    `json:"totals"`
	Currency string         `json:"currency"`
}

// Products lists the whole catalog in seed order
func (s *Session) Products() []ProductView {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.productViews(s.catalog.List())
}

// Search lists products whose name contains query, case-insensitively
func (s *Session) Search(query string) []ProductView {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.productViews(s.catalog.Search(query))
}

// Product returns price and availability for a single product
func (s *Session) Product(name string) (ProductView, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	p, ok := s.catalog.Lookup(name)
	if !ok {
		return ProductView{}, unknownProduct(name)
	}
	return s.productView(p), nil
}

// CartView returns the cart lines in order with totals
func (s *Session) CartView() CartView {
	s.mu.Lock()
	defer s.mu.Unlock()

	lines := s.cart.Lines()
	view := CartView{
		Lines:    make([]CartLineView, 0, len(lines)),
		Totals:   s.cart.Totals(),
		Currency: s.currency.String(),
	}

	for i, l := range lines {
		total := l.Total()
		view.Lines = append(view.Lines, CartLineView{
			Index:       i,
			ProductName: l.ProductName,
			Quantity:    l.Quantity,
			UnitPrice:   l.UnitPrice,
			LineTotal:   total,
			Display:     fmt.Sprintf("%s x %d = %s", l.ProductName, l.Quantity, total.String()),
		})
	}

	return view
}

// LastReceipt returns the most recently issued receipt
func (s *Session) LastReceipt() (*receipt.Receipt, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.lastReceipt == nil {
		return nil, ErrNoReceipt
	}
	return s.lastReceipt, nil
}

func (s *Session) productViews(products []catalog.Product) []ProductView {
	views := make([]ProductView, 0, len(products))
	for _, p := range products {
		views = append(views, s.productView(p))
	}
	return views
}

func (s *Session) productView(p catalog.Product) ProductView {
	return ProductView{
		Name:        p.Name,
		UnitPrice:   p.UnitPrice,
		StockOnHand: p.StockOnHand,
		Available:   p.StockOnHand - s.cart.Reserved(p.Name),
	}
}
