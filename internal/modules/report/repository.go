package report

import (
	"context"
	"time"

	"github.com/shopspring/decimal"
)

// Repository defines the aggregate queries behind reporting. Cancelled
// purchases and sales are excluded from every total.
type Repository interface {
	SalesSummary(ctx context.Context, start, end time.Time) (total decimal.Decimal, count int64, err error)
	TopProducts(ctx context.Context, start, end time.Time, limit int) ([]*TopProduct, error)

	PurchasesSummary(ctx context.Context, start, end time.Time) (total decimal.Decimal, count int64, err error)
	TopSuppliers(ctx context.Context, start, end time.Time, limit int) ([]*TopSupplier, error)

	InventorySummary(ctx context.Context) (count int64, value decimal.Decimal, err error)
	LowStockProducts(ctx context.Context) ([]*StockedProduct, error)
	OutOfStockProducts(ctx context.Context) ([]*StockedProduct, error)

	MonthlySales(ctx context.Context, year int) ([]*MonthlyTotal, error)
	MonthlyPurchases(ctx context.Context, year int) ([]*MonthlyTotal, error)

	RecentPurchases(ctx context.Context, limit int) ([]*Activity, error)
	RecentSales(ctx context.Context, limit int) ([]*Activity, error)
}
