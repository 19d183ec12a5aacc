package report

import (
	"context"
	"fmt"
	"sort"
	"time"

	"github.com/shopspring/decimal"
)

const topLimit = 5
const recentLimit = 5

// Service assembles reporting views from the aggregate queries.
type Service interface {
	SalesReport(ctx context.Context, start, end time.Time) (*SalesReport, error)
	PurchasesReport(ctx context.Context, start, end time.Time) (*PurchasesReport, error)
	InventoryReport(ctx context.Context) (*InventoryReport, error)
	MonthlySales(ctx context.Context, year int) ([]*MonthlyTotal, error)
	MonthlyPurchases(ctx context.Context, year int) ([]*MonthlyTotal, error)
	DashboardStats(ctx context.Context) (*DashboardStats, error)
	RecentActivities(ctx context.Context) ([]*Activity, error)
}

type service struct {
	repo Repository
	now  func() time.Time
}

// NewService creates a new report service.
func NewService(repo Repository) Service {
	return &service{repo: repo, now: time.Now}
}

func (s *service) SalesReport(ctx context.Context, start, end time.Time) (*SalesReport, error) {
	total, count, err := s.repo.SalesSummary(ctx, start, end)
	if err != nil {
		return nil, err
	}
	top, err := s.repo.TopProducts(ctx, start, end, topLimit)
	if err != nil {
		return nil, err
	}

	average := decimal.Zero
	if count > 0 {
		average = total.Div(decimal.NewFromInt(count)).Round(2)
	}
	return &SalesReport{
		Period:      formatPeriod(start, end),
		TotalSales:  total,
		SaleCount:   count,
		AverageSale: average,
		TopProducts: top,
	}, nil
}

func (s *service) PurchasesReport(ctx context.Context, start, end time.Time) (*PurchasesReport, error) {
	total, count, err := s.repo.PurchasesSummary(ctx, start, end)
	if err != nil {
		return nil, err
	}
	top, err := s.repo.TopSuppliers(ctx, start, end, topLimit)
	if err != nil {
		return nil, err
	}
	return &PurchasesReport{
		Period:         formatPeriod(start, end),
		TotalPurchases: total,
		PurchaseCount:  count,
		TopSuppliers:   top,
	}, nil
}

func (s *service) InventoryReport(ctx context.Context) (*InventoryReport, error) {
	count, value, err := s.repo.InventorySummary(ctx)
	if err != nil {
		return nil, err
	}
	low, err := s.repo.LowStockProducts(ctx)
	if err != nil {
		return nil, err
	}
	out, err := s.repo.OutOfStockProducts(ctx)
	if err != nil {
		return nil, err
	}
	return &InventoryReport{
		ProductCount:       count,
		TotalValue:         value,
		LowStockProducts:   low,
		OutOfStockProducts: out,
	}, nil
}

func (s *service) MonthlySales(ctx context.Context, year int) ([]*MonthlyTotal, error) {
	totals, err := s.repo.MonthlySales(ctx, year)
	if err != nil {
		return nil, err
	}
	return fillMonths(totals), nil
}

func (s *service) MonthlyPurchases(ctx context.Context, year int) ([]*MonthlyTotal, error) {
	totals, err := s.repo.MonthlyPurchases(ctx, year)
	if err != nil {
		return nil, err
	}
	return fillMonths(totals), nil
}

func (s *service) DashboardStats(ctx context.Context) (*DashboardStats, error) {
	now := s.now()
	monthStart := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location())

	sales, _, err := s.repo.SalesSummary(ctx, monthStart, now)
	if err != nil {
		return nil, err
	}
	purchases, _, err := s.repo.PurchasesSummary(ctx, monthStart, now)
	if err != nil {
		return nil, err
	}
	_, inventoryValue, err := s.repo.InventorySummary(ctx)
	if err != nil {
		return nil, err
	}

	daysElapsed := int64(now.Day())
	averageDaily := sales.Div(decimal.NewFromInt(daysElapsed)).Round(2)

	return &DashboardStats{
		Sales:             sales,
		Purchases:         purchases,
		InventoryValue:    inventoryValue,
		AverageDailySales: averageDaily,
	}, nil
}

func (s *service) RecentActivities(ctx context.Context) ([]*Activity, error) {
	purchases, err := s.repo.RecentPurchases(ctx, recentLimit)
	if err != nil {
		return nil, err
	}
	sales, err := s.repo.RecentSales(ctx, recentLimit)
	if err != nil {
		return nil, err
	}
	return mergeActivities(purchases, sales, recentLimit), nil
}

// ── helpers ──────────────────────────────────────────────────────────────────

// mergeActivities combines two recency-ordered activity feeds into one,
// newest first, capped at limit.
func mergeActivities(a, b []*Activity, limit int) []*Activity {
	merged := make([]*Activity, 0, len(a)+len(b))
	merged = append(merged, a...)
	merged = append(merged, b...)
	sort.SliceStable(merged, func(i, j int) bool {
		return merged[j].Date.Before(merged[i].Date)
	})
	if len(merged) > limit {
		merged = merged[:limit]
	}
	return merged
}

// fillMonths expands a sparse month series into all 12 buckets.
func fillMonths(totals []*MonthlyTotal) []*MonthlyTotal {
	byMonth := make(map[int]decimal.Decimal, len(totals))
	for _, t := range totals {
		byMonth[t.Month] = t.Total
	}
	filled := make([]*MonthlyTotal, 0, 12)
	for m := 1; m <= 12; m++ {
		total, ok := byMonth[m]
		if !ok {
			total = decimal.Zero
		}
		filled = append(filled, &MonthlyTotal{Month: m, Total: total})
	}
	return filled
}

func formatPeriod(start, end time.Time) string {
	return fmt.Sprintf("%s - %s", start.Format("2006-01-02"), end.Format("2006-01-02"))
}
