package report

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// TopProduct is a best-selling product within a reporting period.
type TopProduct struct {
	ProductID    uuid.UUID       `json:"product_id"`
	Name         string          `json:"name"`
	QuantitySold int64           `json:"quantity_sold"`
	Revenue      decimal.Decimal `json:"revenue"`
}

// TopSupplier is a supplier ranked by purchase volume within a period.
type TopSupplier struct {
	SupplierID uuid.UUID       `json:"supplier_id"`
	Name       string          `json:"name"`
	OrderCount int64           `json:"order_count"`
	TotalSpent decimal.Decimal `json:"total_spent"`
}

// SalesReport summarizes sales over a date range.
type SalesReport struct {
	Period      string          `json:"period"`
	TotalSales  decimal.Decimal `json:"total_sales"`
	SaleCount   int64           `json:"sale_count"`
	AverageSale decimal.Decimal `json:"average_sale"`
	TopProducts []*TopProduct   `json:"top_products"`
}

// PurchasesReport summarizes purchases over a date range.
type PurchasesReport struct {
	Period         string          `json:"period"`
	TotalPurchases decimal.Decimal `json:"total_purchases"`
	PurchaseCount  int64           `json:"purchase_count"`
	TopSuppliers   []*TopSupplier  `json:"top_suppliers"`
}

// StockedProduct is a product row surfaced by inventory reports.
type StockedProduct struct {
	ProductID     uuid.UUID `json:"product_id"`
	Name          string    `json:"name"`
	SKU           string    `json:"sku,omitempty"`
	CurrentStock  int       `json:"current_stock"`
	MinStockLevel int       `json:"min_stock_level"`
}

// InventoryReport summarizes current stock levels and value.
type InventoryReport struct {
	ProductCount       int64             `json:"product_count"`
	TotalValue         decimal.Decimal   `json:"total_value"`
	LowStockProducts   []*StockedProduct `json:"low_stock_products"`
	OutOfStockProducts []*StockedProduct `json:"out_of_stock_products"`
}

// MonthlyTotal is one bucket of a 12-month series.
type MonthlyTotal struct {
	Month int             `json:"month"`
	Total decimal.Decimal `json:"total"`
}

// DashboardStats are the headline figures for the current month.
type DashboardStats struct {
	Sales             decimal.Decimal `json:"sales"`
	Purchases         decimal.Decimal `json:"purchases"`
	InventoryValue    decimal.Decimal `json:"inventory_value"`
	AverageDailySales decimal.Decimal `json:"average_daily_sales"`
}

// Activity is a recent purchase or sale shown on the dashboard feed.
type Activity struct {
	ID          uuid.UUID       `json:"id"`
	Type        string          `json:"type"` // "purchase" or "sale"
	Description string          `json:"description"`
	Date        time.Time       `json:"date"`
	Amount      decimal.Decimal `json:"amount"`
}
