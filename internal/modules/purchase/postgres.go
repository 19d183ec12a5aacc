package purchase

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

func (r *postgresRepo) InsertPurchase(ctx context.Context, p *Purchase) error {
	var idemKey interface{}
	if p.IdempotencyKey != "" {
		idemKey = p.IdempotencyKey
	}
	err := r.db.QueryRowContext(ctx, `
		INSERT INTO purchases
		  (supplier_id, reference_number, purchase_date, total_amount, status, payment_status, notes, idempotency_key)
		VALUES ($1,$2,$3,$4,$5,$6,$7,$8)
		RETURNING id, created_at, updated_at`,
		p.SupplierID, p.ReferenceNumber, p.PurchaseDate, p.TotalAmount,
		p.Status, p.PaymentStatus, p.Notes, idemKey).
		Scan(&p.ID, &p.CreatedAt, &p.UpdatedAt)
	if err != nil {
		if pqErr, ok := err.(*pq.Error); ok && pqErr.Code == uniqueViolation {
			return ErrDuplicateSubmission
		}
		return fmt.Errorf("insert purchase: %w", err)
	}
	return nil
}

func (r *postgresRepo) InsertItems(ctx context.Context, purchaseID uuid.UUID, items []*Item) error {
	query := `INSERT INTO purchase_items (purchase_id, product_id, quantity, unit_price, total_price) VALUES `
	args := make([]interface{}, 0, len(items)*5)
	for i, item := range items {
		if i > 0 {
			query += ","
		}
		n := i * 5
		query += fmt.Sprintf("($%d,$%d,$%d,$%d,$%d)", n+1, n+2, n+3, n+4, n+5)
		args = append(args, purchaseID, item.ProductID, item.Quantity, item.UnitPrice, item.TotalPrice)
	}
	if _, err := r.db.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("insert purchase_items: %w", err)
	}
	return nil
}

func (r *postgresRepo) DeletePurchase(ctx context.Context, id string) error {
	_, err := r.db.ExecContext(ctx, `DELETE FROM purchases WHERE id=$1`, id)
	return err
}

func (r *postgresRepo) DeleteItems(ctx context.Context, purchaseID string) error {
	_, err := r.db.ExecContext(ctx, `DELETE FROM purchase_items WHERE purchase_id=$1`, purchaseID)
	return err
}

func (r *postgresRepo) GetByID(ctx context.Context, id string) (*Purchase, error) {
	uid, err := uuid.Parse(id)
	if err != nil {
		return nil, err
	}
	p, err := scanPurchase(r.db.QueryRowContext(ctx, `
		SELECT p.id, p.supplier_id, COALESCE(s.name,''), p.reference_number, p.purchase_date,
		       p.total_amount, p.status, p.payment_status, COALESCE(p.notes,''), p.created_at, p.updated_at
		FROM purchases p
		LEFT JOIN suppliers s ON s.id = p.supplier_id
		WHERE p.id=$1`, uid).Scan)
	if err != nil {
		return nil, err
	}
	p.Items, err = r.listItems(ctx, p.ID)
	return p, err
}

func (r *postgresRepo) List(ctx context.Context) ([]*Purchase, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT p.id, p.supplier_id, COALESCE(s.name,''), p.reference_number, p.purchase_date,
		       p.total_amount, p.status, p.payment_status, COALESCE(p.notes,''), p.created_at, p.updated_at
		FROM purchases p
		LEFT JOIN suppliers s ON s.id = p.supplier_id
		ORDER BY p.created_at DESC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var purchases []*Purchase
	for rows.Next() {
		p, err := scanPurchase(rows.Scan)
		if err != nil {
			return nil, err
		}
		purchases = append(purchases, p)
	}
	return purchases, rows.Err()
}

func (r *postgresRepo) UpdateStatus(ctx context.Context, id string, status Status) error {
	_, err := r.db.ExecContext(ctx,
		`UPDATE purchases SET status=$1, updated_at=$2 WHERE id=$3`,
		status, time.Now(), id)
	return err
}

func (r *postgresRepo) UpdatePaymentStatus(ctx context.Context, id string, status PaymentStatus) error {
	_, err := r.db.ExecContext(ctx,
		`UPDATE purchases SET payment_status=$1, updated_at=$2 WHERE id=$3`,
		status, time.Now(), id)
	return err
}

func (r *postgresRepo) DeleteOrphanedHeaders(ctx context.Context, olderThan time.Time) (int64, error) {
	res, err := r.db.ExecContext(ctx, `
		DELETE FROM purchases p
		WHERE p.created_at < $1
		  AND NOT EXISTS (SELECT 1 FROM purchase_items i WHERE i.purchase_id = p.id)`,
		olderThan)
	if err != nil {
		return 0, err
	}
	return res.RowsAffected()
}

// ── helpers ──────────────────────────────────────────────────────────────────

func scanPurchase(scan func(...interface{}) error) (*Purchase, error) {
	p := &Purchase{}
	err := scan(&p.ID, &p.SupplierID, &p.SupplierName, &p.ReferenceNumber, &p.PurchaseDate,
		&p.TotalAmount, &p.Status, &p.PaymentStatus, &p.Notes, &p.CreatedAt, &p.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return p, nil
}

func (r *postgresRepo) listItems(ctx context.Context, purchaseID uuid.UUID) ([]*Item, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT i.id, i.purchase_id, i.product_id, COALESCE(pr.name,''), COALESCE(pr.sku,''),
		       i.quantity, i.unit_price, i.total_price, i.created_at
		FROM purchase_items i
		LEFT JOIN products pr ON pr.id = i.product_id
		WHERE i.purchase_id=$1
		ORDER BY i.created_at ASC`, purchaseID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var items []*Item
	for rows.Next() {
		item := &Item{}
		if err := rows.Scan(&item.ID, &item.PurchaseID, &item.ProductID,
			&item.ProductName, &item.ProductSKU,
			&item.Quantity, &item.UnitPrice, &item.TotalPrice, &item.CreatedAt); err != nil {
			return nil, err
		}
		items = append(items, item)
	}
	return items, rows.Err()
}
