package product

import (
	"context"
	"database/sql"
	"time"

	"github.com/google/uuid"
)

type postgresRepo struct{ db *sql.DB }

func NewPostgresRepository(db *sql.DB) Repository { return &postgresRepo{db: db} }

func (r *postgresRepo) Create(ctx context.Context, p *Product) error {
	_, err := r.db.ExecContext(ctx, `
		INSERT INTO products
		  (id, name, description, sku, category, unit_price, current_stock, min_stock_level, image_url)
		VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9)`,
		p.ID, p.Name, p.Description, p.SKU, p.Category,
		p.UnitPrice, p.CurrentStock, p.MinStockLevel, p.ImageURL)
	return err
}

func scanProduct(scan func(...interface{}) error) (*Product, error) {
	p := &Product{}
	err := scan(&p.ID, &p.Name, &p.Description, &p.SKU, &p.Category,
		&p.UnitPrice, &p.CurrentStock, &p.MinStockLevel, &p.ImageURL,
		&p.CreatedAt, &p.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return p, nil
}

func (r *postgresRepo) GetByID(ctx context.Context, id string) (*Product, error) {
	uid, err := uuid.Parse(id)
	if err != nil {
		return nil, err
	}
	row := r.db.QueryRowContext(ctx, `
		SELECT id,name,COALESCE(description,''),COALESCE(sku,''),COALESCE(category,''),
		       unit_price,current_stock,min_stock_level,COALESCE(image_url,''),created_at,updated_at
		FROM products WHERE id=$1`, uid)
	return scanProduct(row.Scan)
}

func (r *postgresRepo) List(ctx context.Context) ([]*Product, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT id,name,COALESCE(description,''),COALESCE(sku,''),COALESCE(category,''),
		       unit_price,current_stock,min_stock_level,COALESCE(image_url,''),created_at,updated_at
		FROM products ORDER BY created_at DESC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var products []*Product
	for rows.Next() {
		p, err := scanProduct(rows.Scan)
		if err != nil {
			return nil, err
		}
		products = append(products, p)
	}
	return products, rows.Err()
}

func (r *postgresRepo) Update(ctx context.Context, p *Product) error {
	_, err := r.db.ExecContext(ctx, `
		UPDATE products
		SET name=$1, description=$2, sku=$3, category=$4, unit_price=$5,
		    current_stock=$6, min_stock_level=$7, image_url=$8, updated_at=$9
		WHERE id=$10`,
		p.Name, p.Description, p.SKU, p.Category, p.UnitPrice,
		p.CurrentStock, p.MinStockLevel, p.ImageURL, time.Now(), p.ID)
	return err
}

func (r *postgresRepo) Delete(ctx context.Context, id string) error {
	uid, err := uuid.Parse(id)
	if err != nil {
		return err
	}
	_, err = r.db.ExecContext(ctx, `DELETE FROM products WHERE id=$1`, uid)
	return err
}
