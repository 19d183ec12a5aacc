package supplier

import (
	"sort"
	"strings"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"
)

// SortOption names an ordering over a supplier list.
type SortOption string

const (
	SortNameAsc  SortOption = "name-asc"
	SortNameDesc SortOption = "name-desc"
	SortDateAsc  SortOption = "date-asc"
	SortDateDesc SortOption = "date-desc"
)

// FilterSuppliers retains suppliers with any text field containing the search
// query, case-insensitively. An empty query matches everything.
func FilterSuppliers(suppliers []*Supplier, query string) []*Supplier {
	q := strings.ToLower(query)
	out := make([]*Supplier, 0, len(suppliers))
	for _, s := range suppliers {
		if q != "" &&
			!strings.Contains(strings.ToLower(s.Name), q) &&
			!strings.Contains(strings.ToLower(s.ContactPerson), q) &&
			!strings.Contains(strings.ToLower(s.Email), q) &&
			!strings.Contains(strings.ToLower(s.Phone), q) &&
			!strings.Contains(strings.ToLower(s.Address), q) &&
			!strings.Contains(strings.ToLower(s.Notes), q) {
			continue
		}
		out = append(out, s)
	}
	return out
}

// SortSuppliers returns a new slice ordered by the given key; the input list
// is never mutated and the sort is stable.
func SortSuppliers(suppliers []*Supplier, by SortOption) []*Supplier {
	sorted := make([]*Supplier, len(suppliers))
	copy(sorted, suppliers)

	switch by {
	case SortNameAsc, SortNameDesc:
		c := collate.New(language.Und, collate.IgnoreCase)
		sort.SliceStable(sorted, func(i, j int) bool {
			if by == SortNameDesc {
				return c.CompareString(sorted[i].Name, sorted[j].Name) > 0
			}
			return c.CompareString(sorted[i].Name, sorted[j].Name) < 0
		})
	case SortDateAsc:
		sort.SliceStable(sorted, func(i, j int) bool {
			return sorted[i].CreatedAt.Before(sorted[j].CreatedAt)
		})
	case SortDateDesc:
		sort.SliceStable(sorted, func(i, j int) bool {
			return sorted[j].CreatedAt.Before(sorted[i].CreatedAt)
		})
	}
	return sorted
}
