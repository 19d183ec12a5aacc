package supplier

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleSuppliers() []*Supplier {
	base := time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)
	return []*Supplier{
		{Name: "Acme Wholesale", ContactPerson: "Laura Diaz", Email: "laura@acme.test", Phone: "555-0101", CreatedAt: base},
		{Name: "Borealis Goods", ContactPerson: "Sam Ortiz", Email: "sam@borealis.test", Address: "12 Harbour St", CreatedAt: base.Add(48 * time.Hour)},
		{Name: "Cardinal Supply", Notes: "net-30 terms", Phone: "555-0188", CreatedAt: base.Add(24 * time.Hour)},
	}
}

func TestFilterSuppliers(t *testing.T) {
	suppliers := sampleSuppliers()

	t.Run("matches across all text fields", func(t *testing.T) {
		assert.Len(t, FilterSuppliers(suppliers, "acme"), 1)
		assert.Len(t, FilterSuppliers(suppliers, "sam ortiz"), 1)
		assert.Len(t, FilterSuppliers(suppliers, "harbour"), 1)
		assert.Len(t, FilterSuppliers(suppliers, "net-30"), 1)
		assert.Len(t, FilterSuppliers(suppliers, "555-01"), 2)
	})

	t.Run("empty query matches everything", func(t *testing.T) {
		assert.Len(t, FilterSuppliers(suppliers, ""), len(suppliers))
	})

	t.Run("no match yields empty result", func(t *testing.T) {
		assert.Empty(t, FilterSuppliers(suppliers, "zebra"))
	})

	t.Run("filter is idempotent", func(t *testing.T) {
		once := FilterSuppliers(suppliers, "555")
		assert.Equal(t, once, FilterSuppliers(once, "555"))
	})
}

func TestSortSuppliers(t *testing.T) {
	suppliers := sampleSuppliers()

	t.Run("by name", func(t *testing.T) {
		asc := SortSuppliers(suppliers, SortNameAsc)
		require.Len(t, asc, 3)
		assert.Equal(t, "Acme Wholesale", asc[0].Name)
		assert.Equal(t, "Cardinal Supply", asc[2].Name)

		desc := SortSuppliers(suppliers, SortNameDesc)
		assert.Equal(t, "Cardinal Supply", desc[0].Name)
	})

	t.Run("by creation date", func(t *testing.T) {
		newest := SortSuppliers(suppliers, SortDateDesc)
		assert.Equal(t, "Borealis Goods", newest[0].Name)

		oldest := SortSuppliers(suppliers, SortDateAsc)
		assert.Equal(t, "Acme Wholesale", oldest[0].Name)
	})

	t.Run("input order preserved", func(t *testing.T) {
		original := sampleSuppliers()
		SortSuppliers(original, SortNameDesc)
		assert.Equal(t, sampleSuppliers(), original)
	})
}
