package catalog_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/brianvoe/gofakeit/v6"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/your-org/pos-terminal/internal/domain/catalog"
)

func TestNew(t *testing.T) {
	tests := []struct {
		name      string
		seed      []catalog.Product
		wantError string
	}{
		{
			name: "valid seed: ok",
			seed: catalog.DefaultSeed(),
		},
		{
			name:      "empty seed: error",
			seed:      nil,
			wantError: "catalog seed is empty",
		},
		{
			name: "duplicate name: error",
			seed: []catalog.Product{
				{Name: "Bread", UnitPrice: decimal.NewFromInt(20), StockOnHand: 1},
				{Name: "Bread", UnitPrice: decimal.NewFromInt(21), StockOnHand: 2},
			},
			wantError: "product[Bread] is listed twice",
		},
		{
			name: "zero price: error",
			seed: []catalog.Product{
				{Name: "Bread", UnitPrice: decimal.Zero, StockOnHand: 1},
			},
			wantError: "product[Bread] unit price must be positive, got 0",
		},
		{
			name: "negative stock: error",
			seed: []catalog.Product{
				{Name: "Bread", UnitPrice: decimal.NewFromInt(20), StockOnHand: -1},
			},
			wantError: "product[Bread] stock must not be negative, got -1",
		},
		{
			name: "blank name: error",
			seed: []catalog.Product{
				{Name: "  ", UnitPrice: decimal.NewFromInt(20), StockOnHand: 1},
			},
			wantError: "product name is empty",
		},
		{
			name: "zero stock: ok",
			seed: []catalog.Product{
				{Name: "Bread", UnitPrice: decimal.NewFromInt(20), StockOnHand: 0},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, err := catalog.New(tt.seed)
			if tt.wantError != "" {
				require.EqualError(t, err, tt.wantError)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, len(tt.seed), c.Len())
		})
	}
}

func TestList_KeepsSeedOrder(t *testing.T) {
	seed := randomSeed(8)

	c, err := catalog.New(seed)
	require.NoError(t, err)

	list := c.List()
	require.Len(t, list, len(seed))
	for i := range seed {
		assert.Equal(t, seed[i].Name, list[i].Name)
	}
}

func TestSearch(t *testing.T) {
	c, err := catalog.New(catalog.DefaultSeed())
	require.NoError(t, err)

	tests := []struct {
		name  string
		query string
		want  []string
	}{
		{name: "empty query matches all", query: "", want: namesOf(catalog.DefaultSeed())},
		{name: "case-insensitive", query: "MILK", want: []string{"Milk"}},
		{name: "substring", query: "ea", want: []string{"Bread", "Tea (box)"}},
		{name: "no match", query: "caviar", want: []string{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, namesOf(c.Search(tt.query)))
		})
	}
}

func TestLookup_ReturnsCopy(t *testing.T) {
	c, err := catalog.New(catalog.DefaultSeed())
	require.NoError(t, err)

	p, ok := c.Lookup("Bread")
	require.True(t, ok)
	p.StockOnHand = 0

	again, _ := c.Lookup("Bread")
	assert.Equal(t, 10, again.StockOnHand)

	_, ok = c.Lookup("Caviar")
	assert.False(t, ok)
	assert.False(t, c.Has("Caviar"))
}

func TestDecrement(t *testing.T) {
	c, err := catalog.New(catalog.DefaultSeed())
	require.NoError(t, err)

	require.NoError(t, c.Decrement("Cheese", 3))
	p, _ := c.Lookup("Cheese")
	assert.Equal(t, 2, p.StockOnHand)

	err = c.Decrement("Cheese", 3)
	require.ErrorIs(t, err, catalog.ErrStockUnderflow)
	p, _ = c.Lookup("Cheese")
	assert.Equal(t, 2, p.StockOnHand)

	err = c.Decrement("Caviar", 1)
	require.ErrorIs(t, err, catalog.ErrNotFound)
}

func TestParseSeed(t *testing.T) {
	data := []byte(`
products:
  - name: Bread
    unit_price: 20
    stock_on_hand: 10
  - name: Apples (kg)
    unit_price: "25.50"
    stock_on_hand: 4
`)

	products, err := catalog.ParseSeed(data)
	require.NoError(t, err)
	require.Len(t, products, 2)

	assert.Equal(t, "Bread", products[0].Name)
	assert.True(t, decimal.NewFromInt(20).Equal(products[0].UnitPrice))
	assert.Equal(t, 10, products[0].StockOnHand)
	assert.True(t, decimal.RequireFromString("25.5").Equal(products[1].UnitPrice))
}

func TestParseSeed_BadPrice(t *testing.T) {
	_, err := catalog.ParseSeed([]byte("products:\n  - name: Bread\n    unit_price: cheap\n"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), `product[0] "Bread": unit_price[cheap] is not a number`)
}

func TestParseSeed_BadStock(t *testing.T) {
	tests := []struct {
		name      string
		stock     string
		wantError string
	}{
		{name: "fraction: error", stock: "2.5", wantError: `product[0] "Bread": stock_on_hand[2.5] is not a whole number`},
		{name: "text: error", stock: "plenty", wantError: `product[0] "Bread": stock_on_hand[plenty] is not a whole number`},
		{name: "missing: error", stock: "", wantError: `product[0] "Bread": stock_on_hand[] is not a whole number`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			data := "products:\n  - name: Bread\n    unit_price: 20\n"
			if tt.stock != "" {
				data += "    stock_on_hand: " + tt.stock + "\n"
			}

			products, err := catalog.ParseSeed([]byte(data))
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantError)
			assert.Nil(t, products)
		})
	}
}

func TestLoadSeedFile(t *testing.T) {
	products, err := catalog.LoadSeedFile("")
	require.NoError(t, err)
	assert.Equal(t, catalog.DefaultSeed(), products)

	path := filepath.Join(t.TempDir(), "catalog.yaml")
	require.NoError(t, os.WriteFile(path, []byte("products:\n  - name: Tea\n    unit_price: 70\n    stock_on_hand: 3\n"), 0o600))

	products, err = catalog.LoadSeedFile(path)
	require.NoError(t, err)
	require.Len(t, products, 1)
	assert.Equal(t, "Tea", products[0].Name)

	_, err = catalog.LoadSeedFile(filepath.Join(t.TempDir(), "missing.yaml"))
	require.Error(t, err)
}

func randomSeed(n int) []catalog.Product {
	seen := make(map[string]bool, n)
	seed := make([]catalog.Product, 0, n)
	for len(seed) < n {
		name := gofakeit.ProductName()
		if seen[name] {
			continue
		}
		seen[name] = true
		seed = append(seed, catalog.Product{
			Name:        name,
			UnitPrice:   decimal.NewFromFloat(gofakeit.Price(1, 100)).Round(2).Add(decimal.NewFromInt(1)),
			StockOnHand: gofakeit.Number(0, 50),
		})
	}
	return seed
}

func namesOf(products []catalog.Product) []string {
	names := make([]string, 0, len(products))
	for _, p := range products {
		names = append(names, p.Name)
	}
	return names
}
