package sale

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"
)

const uniqueViolation = pq.ErrorCode("23505")

type postgresRepo struct{ db *sql.DB }

func NewPostgresRepository(db *sql.DB) Repository { return &postgresRepo{db: db} }

func (r *postgresRepo) InsertSale(ctx context.Context, s *Sale) error {
	var idemKey interface{}
	if s.IdempotencyKey != "" {
		idemKey = s.IdempotencyKey
	}
	err := r.db.QueryRowContext(ctx, `
		INSERT INTO sales
		  (customer_name, reference_number, sale_date, total_amount, payment_method, status, notes, idempotency_key)
		VALUES ($1,$2,$3,$4,$5,$6,$7,$8)
		RETURNING id, created_at, updated_at`,
		s.CustomerName, s.ReferenceNumber, s.SaleDate, s.TotalAmount,
		s.PaymentMethod, s.Status, s.Notes, idemKey).
		Scan(&s.ID, &s.CreatedAt, &s.UpdatedAt)
	if err != nil {
		if pqErr, ok := err.(*pq.Error); ok && pqErr.Code == uniqueViolation {
			return ErrDuplicateSubmission
		}
		return fmt.Errorf("insert sale: %w", err)
	}
	return nil
}

func (r *postgresRepo) InsertItems(ctx context.Context, saleID uuid.UUID, items []*Item) error {
	query := `INSERT INTO sale_items (sale_id, product_id, quantity, unit_price, total_price) VALUES `
	args := make([]interface{}, 0, len(items)*5)
	for i, item := range items {
		if i > 0 {
			query += ","
		}
		n := i * 5
		query += fmt.Sprintf("($%d,$%d,$%d,$%d,$%d)", n+1, n+2, n+3, n+4, n+5)
		args = append(args, saleID, item.ProductID, item.Quantity, item.UnitPrice, item.TotalPrice)
	}
	if _, err := r.db.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("insert sale_items: %w", err)
	}
	return nil
}

func (r *postgresRepo) DeleteSale(ctx context.Context, id string) error {
	_, err := r.db.ExecContext(ctx, `DELETE FROM sales WHERE id=$1`, id)
	return err
}

func (r *postgresRepo) DeleteItems(ctx context.Context, saleID string) error {
	_, err := r.db.ExecContext(ctx, `DELETE FROM sale_items WHERE sale_id=$1`, saleID)
	return err
}

func (r *postgresRepo) GetByID(ctx context.Context, id string) (*Sale, error) {
	uid, err := uuid.Parse(id)
	if err != nil {
		return nil, err
	}
	s, err := scanSale(r.db.QueryRowContext(ctx, `
		SELECT id, customer_name, reference_number, sale_date, total_amount,
		       payment_method, status, COALESCE(notes,''), created_at, updated_at
		FROM sales WHERE id=$1`, uid).Scan)
	if err != nil {
		return nil, err
	}
	s.Items, err = r.listItems(ctx, s.ID)
	return s, err
}

func (r *postgresRepo) List(ctx context.Context) ([]*Sale, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT id, customer_name, reference_number, sale_date, total_amount,
		       payment_method, status, COALESCE(notes,''), created_at, updated_at
		FROM sales ORDER BY created_at DESC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var sales []*Sale
	for rows.Next() {
		s, err := scanSale(rows.Scan)
		if err != nil {
			return nil, err
		}
		sales = append(sales, s)
	}
	return sales, rows.Err()
}

func (r *postgresRepo) UpdateStatus(ctx context.Context, id string, status Status) error {
	_, err := r.db.ExecContext(ctx,
		`UPDATE sales SET status=$1, updated_at=$2 WHERE id=$3`,
		status, time.Now(), id)
	return err
}

func (r *postgresRepo) DeleteOrphanedHeaders(ctx context.Context, olderThan time.Time) (int64, error) {
	res, err := r.db.ExecContext(ctx, `
		DELETE FROM sales s
		WHERE s.created_at < $1
		  AND NOT EXISTS (SELECT 1 FROM sale_items i WHERE i.sale_id = s.id)`,
		olderThan)
	if err != nil {
		return 0, err
	}
	return res.RowsAffected()
}

// ── helpers ──────────────────────────────────────────────────────────────────

func scanSale(scan func(...interface{}) error) (*Sale, error) {
	s := &Sale{}
	err := scan(&s.ID, &s.CustomerName, &s.ReferenceNumber, &s.SaleDate, &s.TotalAmount,
		&s.PaymentMethod, &s.Status, &s.Notes, &s.CreatedAt, &s.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return s, nil
}

func (r *postgresRepo) listItems(ctx context.Context, saleID uuid.UUID) ([]*Item, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT i.id, i.sale_id, i.product_id, COALESCE(pr.name,''), COALESCE(pr.sku,''),
		       i.quantity, i.unit_price, i.total_price, i.created_at
		FROM sale_items i
		LEFT JOIN products pr ON pr.id = i.product_id
		WHERE i.sale_id=$1
		ORDER BY i.created_at ASC`, saleID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var items []*Item
	for rows.Next() {
		item := &Item{}
		if err := rows.Scan(&item.ID, &item.SaleID, &item.ProductID,
			&item.ProductName, &item.ProductSKU,
			&item.Quantity, &item.UnitPrice, &item.TotalPrice, &item.CreatedAt); err != nil {
			return nil, err
		}
		items = append(items, item)
	}
	return items, rows.Err()
}
