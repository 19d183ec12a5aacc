package sale

import (
	"sort"
	"strings"
	"time"
)

// SortOption names an ordering over a sale list.
type SortOption string

const (
	SortDateDesc   SortOption = "date-desc"
	SortDateAsc    SortOption = "date-asc"
	SortAmountDesc SortOption = "amount-desc"
	SortAmountAsc  SortOption = "amount-asc"
)

// Filters holds the structured criteria applied alongside the search query.
// Zero values match everything on their dimension; From and To bound the sale
// date inclusively.
type Filters struct {
	Status        Status
	PaymentMethod PaymentMethod
	From          time.Time
	To            time.Time
}

// FilterSales retains sales whose reference number or customer name contains
// the search query (case-insensitive) and that satisfy all structured
// criteria.
func FilterSales(sales []*Sale, query string, f Filters) []*Sale {
	q := strings.ToLower(query)
	out := make([]*Sale, 0, len(sales))
	for _, s := range sales {
		if q != "" &&
			!strings.Contains(strings.ToLower(s.ReferenceNumber), q) &&
			!strings.Contains(strings.ToLower(s.CustomerName), q) {
			continue
		}
		if f.Status != "" && s.Status != f.Status {
			continue
		}
		if f.PaymentMethod != "" && s.PaymentMethod != f.PaymentMethod {
			continue
		}
		if !f.From.IsZero() && s.SaleDate.Before(f.From) {
			continue
		}
		if !f.To.IsZero() && s.SaleDate.After(f.To) {
			continue
		}
		out = append(out, s)
	}
	return out
}

// SortSales returns a new slice ordered by the given key; the input list is
// never mutated and the sort is stable.
func SortSales(sales []*Sale, by SortOption) []*Sale {
	sorted := make([]*Sale, len(sales))
	copy(sorted, sales)

	switch by {
	case SortDateAsc:
		sort.SliceStable(sorted, func(i, j int) bool {
			return sorted[i].SaleDate.Before(sorted[j].SaleDate)
		})
	case SortAmountAsc:
		sort.SliceStable(sorted, func(i, j int) bool {
			return sorted[i].TotalAmount.LessThan(sorted[j].TotalAmount)
		})
	case SortAmountDesc:
		sort.SliceStable(sorted, func(i, j int) bool {
			return sorted[j].TotalAmount.LessThan(sorted[i].TotalAmount)
		})
	default: // SortDateDesc
		sort.SliceStable(sorted, func(i, j int) bool {
			return sorted[j].SaleDate.Before(sorted[i].SaleDate)
		})
	}
	return sorted
}
