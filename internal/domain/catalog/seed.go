// internal/domain/catalog/seed.go
package catalog

import (
	"fmt"
	"os"
	"strconv"

	"github.com/shopspring/decimal"
	"gopkg.in/yaml.v3"
)

// DefaultSeed returns the grocery list the terminal ships with
func DefaultSeed() []Product {
	return []Product{
		{Name: "Bread", UnitPrice: decimal.NewFromInt(20), StockOnHand: 10},
		{Name: "Milk", UnitPrice: decimal.NewFromInt(30), StockOnHand: 15},
		{Name: "Cheese", UnitPrice: decimal.NewFromInt(80), StockOnHand: 5},
		{Name: "Apples (kg)", UnitPrice: decimal.NewFromInt(25), StockOnHand: 20},
		{Name: "Chocolate", UnitPrice: decimal.NewFromInt(50), StockOnHand: 12},
		{Name: "Orange juice", UnitPrice: decimal.NewFromInt(40), StockOnHand: 8},
		{Name: "Coffee (pack)", UnitPrice: decimal.NewFromInt(90), StockOnHand: 6},
		{Name: "Tea (box)", UnitPrice: decimal.NewFromInt(70), StockOnHand: 10},
		{Name: "Eggs (dozen)", UnitPrice: decimal.NewFromInt(35), StockOnHand: 14},
		{Name: "Mineral water", UnitPrice: decimal.NewFromInt(18), StockOnHand: 25},
	}
}

// LoadSeedFile reads a YAML seed. An empty path yields DefaultSeed.
func LoadSeedFile(path string) ([]Product, error) {
	if path == "" {
		return DefaultSeed(), nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("os.ReadFile: %w", err)
	}

	return ParseSeed(data)
}

// ParseSeed decodes YAML seed content into products
func ParseSeed(data []byte) ([]Product, error) {
	var file SeedFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("yaml.Unmarshal: %w", err)
	}

	products := make([]Product, 0, len(file.Products))
	for i, sp := range file.Products {
		price, err := decimal.NewFromString(sp.UnitPrice)
		if err != nil {
			return nil, fmt.Errorf("product[%d] %q: unit_price[%s] is not a number: %w", i, sp.Name, sp.UnitPrice, err)
		}

		stock, err := strconv.Atoi(sp.StockOnHand)
		if err != nil {
			return nil, fmt.Errorf("product[%d] %q: stock_on_hand[%s] is not a whole number: %w", i, sp.Name, sp.StockOnHand, err)
		}

		products = append(products, Product{
			Name:        sp.Name,
			UnitPrice:   price,
			StockOnHand: stock,
		})
	}

	return products, nil
}
