package product

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleProducts() []*Product {
	return []*Product{
		{Name: "Monitor 24in", SKU: "MON-24", Category: "electronics", UnitPrice: decimal.NewFromInt(180), CurrentStock: 0},
		{Name: "Keyboard", SKU: "KEY-01", Category: "electronics", UnitPrice: decimal.NewFromInt(25), CurrentStock: 4, MinStockLevel: 5},
		{Name: "Desk Chair", SKU: "CHA-10", Category: "furniture", UnitPrice: decimal.NewFromInt(95), CurrentStock: 30, MinStockLevel: 5},
		{Name: "Notebook", SKU: "NOT-77", Category: "stationery", UnitPrice: decimal.NewFromInt(3), CurrentStock: 8},
	}
}

func TestStockClassification(t *testing.T) {
	assert.True(t, IsOutOfStock(&Product{CurrentStock: 0}))
	assert.False(t, IsOutOfStock(&Product{CurrentStock: 1}))

	// Explicit minimum level wins.
	assert.True(t, IsLowStock(&Product{CurrentStock: 4, MinStockLevel: 5}))
	assert.False(t, IsLowStock(&Product{CurrentStock: 6, MinStockLevel: 5}))

	// Fallback threshold applies when no minimum level is set.
	assert.True(t, IsLowStock(&Product{CurrentStock: DefaultStockThreshold}))
	assert.False(t, IsLowStock(&Product{CurrentStock: DefaultStockThreshold + 1}))
	assert.False(t, IsLowStock(&Product{CurrentStock: 0}), "out of stock is not low stock")
}

func TestFilterProducts(t *testing.T) {
	products := sampleProducts()

	t.Run("search matches name, sku and category", func(t *testing.T) {
		assert.Len(t, FilterProducts(products, "monitor", StockAll, ""), 1)
		assert.Len(t, FilterProducts(products, "cha-10", StockAll, ""), 1)
		assert.Len(t, FilterProducts(products, "electronics", StockAll, ""), 2)
	})

	t.Run("empty criteria match everything", func(t *testing.T) {
		assert.Len(t, FilterProducts(products, "", StockAll, ""), len(products))
	})

	t.Run("category equality", func(t *testing.T) {
		got := FilterProducts(products, "", StockAll, "furniture")
		require.Len(t, got, 1)
		assert.Equal(t, "Desk Chair", got[0].Name)
	})

	t.Run("stock filters", func(t *testing.T) {
		out := FilterProducts(products, "", StockOut, "")
		require.Len(t, out, 1)
		assert.Equal(t, "Monitor 24in", out[0].Name)

		low := FilterProducts(products, "", StockLow, "")
		require.Len(t, low, 2)
		assert.Equal(t, "Keyboard", low[0].Name)
		assert.Equal(t, "Notebook", low[1].Name)
	})

	t.Run("filter is idempotent", func(t *testing.T) {
		once := FilterProducts(products, "o", StockAll, "electronics")
		twice := FilterProducts(once, "o", StockAll, "electronics")
		assert.Equal(t, once, twice)
	})
}

func TestSortProducts(t *testing.T) {
	products := sampleProducts()

	t.Run("name ascending and descending round-trip", func(t *testing.T) {
		asc := SortProducts(products, SortNameAsc)
		desc := SortProducts(products, SortNameDesc)
		for i := range asc {
			assert.Equal(t, asc[i].Name, desc[len(desc)-1-i].Name)
		}
	})

	t.Run("price ascending", func(t *testing.T) {
		sorted := SortProducts(products, SortPriceAsc)
		for i := 1; i < len(sorted); i++ {
			assert.False(t, sorted[i].UnitPrice.LessThan(sorted[i-1].UnitPrice))
		}
	})

	t.Run("stock descending", func(t *testing.T) {
		sorted := SortProducts(products, SortStockDesc)
		assert.Equal(t, 30, sorted[0].CurrentStock)
		assert.Equal(t, 0, sorted[len(sorted)-1].CurrentStock)
	})

	t.Run("input is not mutated", func(t *testing.T) {
		original := sampleProducts()
		SortProducts(original, SortPriceDesc)
		assert.Equal(t, sampleProducts(), original)
	})
}
