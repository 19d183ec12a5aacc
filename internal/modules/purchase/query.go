package purchase

import (
	"sort"
	"strings"
	"time"
)

// SortOption names an ordering over a purchase list.
type SortOption string

const (
	SortDateDesc   SortOption = "date-desc"
	SortDateAsc    SortOption = "date-asc"
	SortAmountDesc SortOption = "amount-desc"
	SortAmountAsc  SortOption = "amount-asc"
)

// Filters holds the structured criteria applied alongside the search query.
// Zero values match everything on their dimension; From and To bound the
// purchase date inclusively.
type Filters struct {
	Status        Status
	PaymentStatus PaymentStatus
	From          time.Time
	To            time.Time
}

// FilterPurchases retains purchases whose reference number or supplier name
// contains the search query (case-insensitive) and that satisfy all
// structured criteria.
func FilterPurchases(purchases []*Purchase, query string, f Filters) []*Purchase {
	q := strings.ToLower(query)
	out := make([]*Purchase, 0, len(purchases))
	for _, p := range purchases {
		if q != "" &&
			!strings.Contains(strings.ToLower(p.ReferenceNumber), q) &&
			!strings.Contains(strings.ToLower(p.SupplierName), q) {
			continue
		}
		if f.Status != "" && p.Status != f.Status {
			continue
		}
		if f.PaymentStatus != "" && p.PaymentStatus != f.PaymentStatus {
			continue
		}
		if !f.From.IsZero() && p.PurchaseDate.Before(f.From) {
			continue
		}
		if !f.To.IsZero() && p.PurchaseDate.After(f.To) {
			continue
		}
		out = append(out, p)
	}
	return out
}

// SortPurchases returns a new slice ordered by the given key; the input list
// is never mutated and the sort is stable.
func SortPurchases(purchases []*Purchase, by SortOption) []*Purchase {
	sorted := make([]*Purchase, len(purchases))
	copy(sorted, purchases)

	switch by {
	case SortDateAsc:
		sort.SliceStable(sorted, func(i, j int) bool {
			return sorted[i].PurchaseDate.Before(sorted[j].PurchaseDate)
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
			return sorted[j].PurchaseDate.Before(sorted[i].PurchaseDate)
		})
	}
	return sorted
}
