package sale

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleSales() []*Sale {
	day := func(d int) time.Time { return time.Date(2025, 7, d, 0, 0, 0, 0, time.UTC) }
	return []*Sale{
		{ReferenceNumber: "S-200", CustomerName: "Maria Lopez", SaleDate: day(2),
			Status: StatusCompleted, PaymentMethod: PaymentCash, TotalAmount: decimal.NewFromInt(45)},
		{ReferenceNumber: "S-201", CustomerName: "Hotel Mirador", SaleDate: day(15),
			Status: StatusPending, PaymentMethod: PaymentBankTransfer, TotalAmount: decimal.NewFromInt(800)},
		{ReferenceNumber: "S-202", CustomerName: "Maria Lopez", SaleDate: day(28),
			Status: StatusCancelled, PaymentMethod: PaymentCreditCard, TotalAmount: decimal.NewFromInt(60)},
	}
}

func TestFilterSales(t *testing.T) {
	sales := sampleSales()

	t.Run("search matches reference and customer", func(t *testing.T) {
		assert.Len(t, FilterSales(sales, "maria", Filters{}), 2)
		assert.Len(t, FilterSales(sales, "s-201", Filters{}), 1)
	})

	t.Run("structured criteria", func(t *testing.T) {
		got := FilterSales(sales, "", Filters{PaymentMethod: PaymentBankTransfer})
		require.Len(t, got, 1)
		assert.Equal(t, "S-201", got[0].ReferenceNumber)

		got = FilterSales(sales, "maria", Filters{Status: StatusCancelled})
		require.Len(t, got, 1)
		assert.Equal(t, "S-202", got[0].ReferenceNumber)
	})

	t.Run("inclusive date range", func(t *testing.T) {
		f := Filters{
			From: time.Date(2025, 7, 15, 0, 0, 0, 0, time.UTC),
			To:   time.Date(2025, 7, 28, 0, 0, 0, 0, time.UTC),
		}
		got := FilterSales(sales, "", f)
		require.Len(t, got, 2)
		assert.Equal(t, "S-201", got[0].ReferenceNumber)
		assert.Equal(t, "S-202", got[1].ReferenceNumber)
	})
}

func TestSortSales(t *testing.T) {
	sales := sampleSales()

	asc := SortSales(sales, SortAmountAsc)
	desc := SortSales(sales, SortAmountDesc)
	for i := range asc {
		assert.True(t, asc[i].TotalAmount.Equal(desc[len(desc)-1-i].TotalAmount))
	}

	newest := SortSales(sales, SortDateDesc)
	assert.Equal(t, "S-202", newest[0].ReferenceNumber)

	original := sampleSales()
	SortSales(original, SortAmountDesc)
	assert.Equal(t, sampleSales(), original)
}
