package report

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"github.com/stocklane/stocklane-backend/internal/modules/product"
)

type postgresRepo struct{ db *sql.DB }

func NewPostgresRepository(db *sql.DB) Repository { return &postgresRepo{db: db} }

func (r *postgresRepo) SalesSummary(ctx context.Context, start, end time.Time) (decimal.Decimal, int64, error) {
	var total decimal.Decimal
	var count int64
	err := r.db.QueryRowContext(ctx, `
		SELECT COALESCE(SUM(total_amount),0), COUNT(*)
		FROM sales
		WHERE sale_date >= $1 AND sale_date <= $2 AND status <> 'cancelled'`,
		start, end).Scan(&total, &count)
	return total, count, err
}

func (r *postgresRepo) TopProducts(ctx context.Context, start, end time.Time, limit int) ([]*TopProduct, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT i.product_id, COALESCE(p.name,''), SUM(i.quantity), SUM(i.total_price)
		FROM sale_items i
		JOIN sales s ON s.id = i.sale_id
		LEFT JOIN products p ON p.id = i.product_id
		WHERE s.sale_date >= $1 AND s.sale_date <= $2 AND s.status <> 'cancelled'
		GROUP BY i.product_id, p.name
		ORDER BY SUM(i.quantity) DESC
		LIMIT $3`, start, end, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var products []*TopProduct
	for rows.Next() {
		tp := &TopProduct{}
		if err := rows.Scan(&tp.ProductID, &tp.Name, &tp.QuantitySold, &tp.Revenue); err != nil {
			return nil, err
		}
		products = append(products, tp)
	}
	return products, rows.Err()
}

func (r *postgresRepo) PurchasesSummary(ctx context.Context, start, end time.Time) (decimal.Decimal, int64, error) {
	var total decimal.Decimal
	var count int64
	err := r.db.QueryRowContext(ctx, `
		SELECT COALESCE(SUM(total_amount),0), COUNT(*)
		FROM purchases
		WHERE purchase_date >= $1 AND purchase_date <= $2 AND status <> 'cancelled'`,
		start, end).Scan(&total, &count)
	return total, count, err
}

func (r *postgresRepo) TopSuppliers(ctx context.Context, start, end time.Time, limit int) ([]*TopSupplier, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT p.supplier_id, COALESCE(s.name,''), COUNT(*), SUM(p.total_amount)
		FROM purchases p
		LEFT JOIN suppliers s ON s.id = p.supplier_id
		WHERE p.purchase_date >= $1 AND p.purchase_date <= $2 AND p.status <> 'cancelled'
		GROUP BY p.supplier_id, s.name
		ORDER BY SUM(p.total_amount) DESC
		LIMIT $3`, start, end, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var suppliers []*TopSupplier
	for rows.Next() {
		ts := &TopSupplier{}
		if err := rows.Scan(&ts.SupplierID, &ts.Name, &ts.OrderCount, &ts.TotalSpent); err != nil {
			return nil, err
		}
		suppliers = append(suppliers, ts)
	}
	return suppliers, rows.Err()
}

func (r *postgresRepo) InventorySummary(ctx context.Context) (int64, decimal.Decimal, error) {
	var count int64
	var value decimal.Decimal
	err := r.db.QueryRowContext(ctx, `
		SELECT COUNT(*), COALESCE(SUM(unit_price * current_stock),0)
		FROM products`).Scan(&count, &value)
	return count, value, err
}

func (r *postgresRepo) LowStockProducts(ctx context.Context) ([]*StockedProduct, error) {
	// SQL mirror of product.IsLowStock.
	return r.queryStocked(ctx, `
		SELECT id, name, COALESCE(sku,''), current_stock, min_stock_level
		FROM products
		WHERE current_stock > 0
		  AND current_stock <= CASE WHEN min_stock_level > 0 THEN min_stock_level ELSE $1 END
		ORDER BY current_stock ASC`, product.DefaultStockThreshold)
}

func (r *postgresRepo) OutOfStockProducts(ctx context.Context) ([]*StockedProduct, error) {
	return r.queryStocked(ctx, `
		SELECT id, name, COALESCE(sku,''), current_stock, min_stock_level
		FROM products
		WHERE current_stock = 0
		ORDER BY name ASC`)
}

func (r *postgresRepo) MonthlySales(ctx context.Context, year int) ([]*MonthlyTotal, error) {
	return r.queryMonthly(ctx, `
		SELECT EXTRACT(MONTH FROM sale_date)::int, COALESCE(SUM(total_amount),0)
		FROM sales
		WHERE EXTRACT(YEAR FROM sale_date) = $1 AND status <> 'cancelled'
		GROUP BY 1 ORDER BY 1`, year)
}

func (r *postgresRepo) MonthlyPurchases(ctx context.Context, year int) ([]*MonthlyTotal, error) {
	return r.queryMonthly(ctx, `
		SELECT EXTRACT(MONTH FROM purchase_date)::int, COALESCE(SUM(total_amount),0)
		FROM purchases
		WHERE EXTRACT(YEAR FROM purchase_date) = $1 AND status <> 'cancelled'
		GROUP BY 1 ORDER BY 1`, year)
}

func (r *postgresRepo) RecentPurchases(ctx context.Context, limit int) ([]*Activity, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT p.id, COALESCE(s.name,'Supplier'), p.total_amount, p.created_at
		FROM purchases p
		LEFT JOIN suppliers s ON s.id = p.supplier_id
		ORDER BY p.created_at DESC
		LIMIT $1`, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var activities []*Activity
	for rows.Next() {
		a := &Activity{Type: "purchase"}
		var name string
		if err := rows.Scan(&a.ID, &name, &a.Amount, &a.Date); err != nil {
			return nil, err
		}
		a.Description = fmt.Sprintf("New purchase from %s", name)
		activities = append(activities, a)
	}
	return activities, rows.Err()
}

func (r *postgresRepo) RecentSales(ctx context.Context, limit int) ([]*Activity, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT id, COALESCE(NULLIF(customer_name,''),'Customer'), total_amount, created_at
		FROM sales
		ORDER BY created_at DESC
		LIMIT $1`, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var activities []*Activity
	for rows.Next() {
		a := &Activity{Type: "sale"}
		var name string
		if err := rows.Scan(&a.ID, &name, &a.Amount, &a.Date); err != nil {
			return nil, err
		}
		a.Description = fmt.Sprintf("New sale to %s", name)
		activities = append(activities, a)
	}
	return activities, rows.Err()
}

// ── helpers ──────────────────────────────────────────────────────────────────

func (r *postgresRepo) queryStocked(ctx context.Context, query string, args ...interface{}) ([]*StockedProduct, error) {
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var products []*StockedProduct
	for rows.Next() {
		sp := &StockedProduct{}
		if err := rows.Scan(&sp.ProductID, &sp.Name, &sp.SKU, &sp.CurrentStock, &sp.MinStockLevel); err != nil {
			return nil, err
		}
		products = append(products, sp)
	}
	return products, rows.Err()
}

func (r *postgresRepo) queryMonthly(ctx context.Context, query string, year int) ([]*MonthlyTotal, error) {
	rows, err := r.db.QueryContext(ctx, query, year)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var totals []*MonthlyTotal
	for rows.Next() {
		mt := &MonthlyTotal{}
		if err := rows.Scan(&mt.Month, &mt.Total); err != nil {
			return nil, err
		}
		totals = append(totals, mt)
	}
	return totals, rows.Err()
}
