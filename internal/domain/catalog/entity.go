// internal/domain/catalog/entity.go
package catalog

import (
	"github.com/shopspring/decimal"
)

// Product is a catalog entry. StockOnHand is the only field that changes after
// startup, and only at checkout.
type Product struct {
	Name        string          `json:"name"`
	UnitPrice   decimal.Decimal `json:"unit_price"`
	StockOnHand int             `json:"stock_on_hand"`
}

// SeedFile is the on-disk layout of a catalog seed
type SeedFile struct {
	Products []SeedProduct `yaml:"products"`
}

// SeedProduct is one catalog seed entry. Numbers are kept as text so values
// like 25.50 survive without float rounding and a stock of 2.5 is rejected
// instead of truncated.
type SeedProduct struct {
	Name        string `yaml:"name"`
	UnitPrice   string `yaml:"unit_price"`
	StockOnHand string `yaml:"stock_on_hand"`
}
