package product

import (
	"sort"
	"strings"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"
)

// DefaultStockThreshold classifies a product as low stock when it does not
// carry a minimum stock level of its own.
const DefaultStockThreshold = 10

// SortOption names an ordering over a product list.
type SortOption string

const (
	SortNameAsc   SortOption = "name-asc"
	SortNameDesc  SortOption = "name-desc"
	SortPriceAsc  SortOption = "price-asc"
	SortPriceDesc SortOption = "price-desc"
	SortStockAsc  SortOption = "stock-asc"
	SortStockDesc SortOption = "stock-desc"
)

// StockFilter selects products by stock classification.
type StockFilter string

const (
	StockAll StockFilter = "all"
	StockLow StockFilter = "low-stock"
	StockOut StockFilter = "out-of-stock"
)

// IsOutOfStock reports whether the product has no stock at all.
func IsOutOfStock(p *Product) bool { return p.CurrentStock == 0 }

// IsLowStock reports whether the product is above zero but at or below its
// minimum stock level, falling back to DefaultStockThreshold when unset.
func IsLowStock(p *Product) bool {
	threshold := p.MinStockLevel
	if threshold <= 0 {
		threshold = DefaultStockThreshold
	}
	return p.CurrentStock > 0 && p.CurrentStock <= threshold
}

// FilterProducts retains products whose name, SKU or category contains the
// search query (case-insensitive) and that match the category and stock
// filters. An empty query, empty category or StockAll match everything.
func FilterProducts(products []*Product, query string, stock StockFilter, category string) []*Product {
	q := strings.ToLower(query)
	out := make([]*Product, 0, len(products))
	for _, p := range products {
		if q != "" &&
			!strings.Contains(strings.ToLower(p.Name), q) &&
			!strings.Contains(strings.ToLower(p.SKU), q) &&
			!strings.Contains(strings.ToLower(p.Category), q) {
			continue
		}
		if category != "" && p.Category != category {
			continue
		}
		switch stock {
		case StockLow:
			if !IsLowStock(p) {
				continue
			}
		case StockOut:
			if !IsOutOfStock(p) {
				continue
			}
		}
		out = append(out, p)
	}
	return out
}

// SortProducts returns a new slice ordered by the given key. Name ordering is
// locale-aware; the input list is never mutated and the sort is stable.
func SortProducts(products []*Product, by SortOption) []*Product {
	sorted := make([]*Product, len(products))
	copy(sorted, products)

	switch by {
	case SortNameAsc, SortNameDesc:
		c := collate.New(language.Und, collate.IgnoreCase)
		sort.SliceStable(sorted, func(i, j int) bool {
			if by == SortNameDesc {
				return c.CompareString(sorted[i].Name, sorted[j].Name) > 0
			}
			return c.CompareString(sorted[i].Name, sorted[j].Name) < 0
		})
	case SortPriceAsc:
		sort.SliceStable(sorted, func(i, j int) bool {
			return sorted[i].UnitPrice.LessThan(sorted[j].UnitPrice)
		})
	case SortPriceDesc:
		sort.SliceStable(sorted, func(i, j int) bool {
			return sorted[j].UnitPrice.LessThan(sorted[i].UnitPrice)
		})
	case SortStockAsc:
		sort.SliceStable(sorted, func(i, j int) bool {
			return sorted[i].CurrentStock < sorted[j].CurrentStock
		})
	case SortStockDesc:
		sort.SliceStable(sorted, func(i, j int) bool {
			return sorted[j].CurrentStock < sorted[i].CurrentStock
		})
	}
	return sorted
}
