package supplier

import (
	"context"
	"database/sql"
	"time"

	"github.com/google/uuid"
)

type postgresRepo struct{ db *sql.DB }

func NewPostgresRepository(db *sql.DB) Repository { return &postgresRepo{db: db} }

func (r *postgresRepo) Create(ctx context.Context, s *Supplier) error {
	_, err := r.db.ExecContext(ctx, `
		INSERT INTO suppliers (id, name, contact_person, email, phone, address, notes)
		VALUES ($1,$2,$3,$4,$5,$6,$7)`,
		s.ID, s.Name, s.ContactPerson, s.Email, s.Phone, s.Address, s.Notes)
	return err
}

func scanSupplier(scan func(...interface{}) error) (*Supplier, error) {
	s := &Supplier{}
	err := scan(&s.ID, &s.Name, &s.ContactPerson, &s.Email, &s.Phone,
		&s.Address, &s.Notes, &s.CreatedAt, &s.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return s, nil
}

func (r *postgresRepo) GetByID(ctx context.Context, id string) (*Supplier, error) {
	uid, err := uuid.Parse(id)
	if err != nil {
		return nil, err
	}
	row := r.db.QueryRowContext(ctx, `
		SELECT id,name,COALESCE(contact_person,''),COALESCE(email,''),COALESCE(phone,''),
		       COALESCE(address,''),COALESCE(notes,''),created_at,updated_at
		FROM suppliers WHERE id=$1`, uid)
	return scanSupplier(row.Scan)
}

func (r *postgresRepo) List(ctx context.Context) ([]*Supplier, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT id,name,COALESCE(contact_person,''),COALESCE(email,''),COALESCE(phone,''),
		       COALESCE(address,''),COALESCE(notes,''),created_at,updated_at
		FROM suppliers ORDER BY created_at DESC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var suppliers []*Supplier
	for rows.Next() {
		s, err := scanSupplier(rows.Scan)
		if err != nil {
			return nil, err
		}
		suppliers = append(suppliers, s)
	}
	return suppliers, rows.Err()
}

func (r *postgresRepo) Update(ctx context.Context, s *Supplier) error {
	_, err := r.db.ExecContext(ctx, `
		UPDATE suppliers
		SET name=$1, contact_person=$2, email=$3, phone=$4, address=$5, notes=$6, updated_at=$7
		WHERE id=$8`,
		s.Name, s.ContactPerson, s.Email, s.Phone, s.Address, s.Notes, time.Now(), s.ID)
	return err
}

func (r *postgresRepo) Delete(ctx context.Context, id string) error {
	uid, err := uuid.Parse(id)
	if err != nil {
		return err
	}
	_, err = r.db.ExecContext(ctx, `DELETE FROM suppliers WHERE id=$1`, uid)
	return err
}
