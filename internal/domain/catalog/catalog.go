// internal/domain/catalog/catalog.go
package catalog

import (
	"errors"
	"fmt"
	"strings"
)

var (
	ErrEmptySeed      = errors.New("catalog seed is empty")
	ErrNotFound       = errors.New("product not found")
	ErrStockUnderflow = errors.New("stock would become negative")
)

// Catalog is the fixed set of purchasable products. It keeps seed order for
// listing. It is not safe for concurrent use; the owning session serialises
// access.
type Catalog struct {
	order    []string
	products map[string]*Product
}

// New validates the seed and builds a catalog from it
func New(seed []Product) (*Catalog, error) {
	if len(seed) == 0 {
		return nil, ErrEmptySeed
	}

	c := &Catalog{
		order:    make([]string, 0, len(seed)),
		products: make(map[string]*Product, len(seed)),
	}

	for _, p := range seed {
		if strings.TrimSpace(p.Name) == "" {
			return nil, fmt.Errorf("product name is empty")
		}
		if _, exists := c.products[p.Name]; exists {
			return nil, fmt.Errorf("product[%s] is listed twice", p.Name)
		}
		if !p.UnitPrice.IsPositive() {
			return nil, fmt.Errorf("product[%s] unit price must be positive, got %s", p.Name, p.UnitPrice)
		}
		if p.StockOnHand < 0 {
			return nil, fmt.Errorf("product[%s] stock must not be negative, got %d", p.Name, p.StockOnHand)
		}

		product := p
		c.order = append(c.order, p.Name)
		c.products[p.Name] = &product
	}

	return c, nil
}

// Lookup returns a copy of the named product
func (c *Catalog) Lookup(name string) (Product, bool) {
	p, ok := c.products[name]
	if !ok {
		return Product{}, false
	}
	return *p, true
}

// Has reports whether name is a catalog key
func (c *Catalog) Has(name string) bool {
	_, ok := c.products[name]
	return ok
}

// List returns every product in seed order
func (c *Catalog) List() []Product {
	result := make([]Product, 0, len(c.order))
	for _, name := range c.order {
		result = append(result, *c.products[name])
	}
	return result
}

// Search returns products whose name contains query, ignoring case.
// An empty query matches everything.
func (c *Catalog) Search(query string) []Product {
	needle := strings.ToLower(query)

	result := make([]Product, 0)
	for _, name := range c.order {
		if strings.Contains(strings.ToLower(name), needle) {
			result = append(result, *c.products[name])
		}
	}
	return result
}

// Len returns the number of products
func (c *Catalog) Len() int {
	return len(c.order)
}

// Decrement commits sold quantity against stock
func (c *Catalog) Decrement(name string, quantity int) error {
	p, ok := c.products[name]
	if !ok {
		return fmt.Errorf("product[%s]: %w", name, ErrNotFound)
	}
	if quantity > p.StockOnHand {
		return fmt.Errorf("product[%s] stock %d, decrement %d: %w", name, p.StockOnHand, quantity, ErrStockUnderflow)
	}

	p.StockOnHand -= quantity
	return nil
}
