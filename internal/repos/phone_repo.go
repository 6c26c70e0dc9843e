package repos

import (
	"sort"

	"github.com/jmoiron/sqlx"

	"phonestore/internal/domain"
)

// PhoneRepo is the gateway to the phones table. It exposes the same
// table-style operations the external store does: equality and range
// filters, ordering, insert and partial update.
type PhoneRepo struct{ db *sqlx.DB }

func NewPhoneRepo(db *sqlx.DB) *PhoneRepo { return &PhoneRepo{db: db} }

const phoneCols = `id, name, brand, price, condition, description, images_json, storage, battery, available, is_deal, created_at`

func (r *PhoneRepo) List(f domain.PhoneFilter) ([]domain.Phone, error) {
	where := `1=1`
	args := []any{}
	if f.AvailableOnly {
		where += ` AND available = 1`
	}
	if f.DealsOnly {
		where += ` AND is_deal = 1`
	}
	if f.Brand != "" {
		where += ` AND brand = ?`
		args = append(args, f.Brand)
	}
	if f.MinPrice != nil {
		where += ` AND price >= ?`
		args = append(args, *f.MinPrice)
	}
	if f.MaxPrice != nil {
		where += ` AND price <= ?`
		args = append(args, *f.MaxPrice)
	}

	sql := `
  SELECT ` + phoneCols + `
  FROM phones
  WHERE ` + where + `
  ORDER BY created_at DESC`

	var out []domain.Phone
	err := r.db.Select(&out, sql, args...)
	return out, err
}

// Brands returns the brand column of every matching row; the caller
// deduplicates and sorts.
func (r *PhoneRepo) Brands(availableOnly bool) ([]string, error) {
	sql := `SELECT brand FROM phones`
	if availableOnly {
		sql += ` WHERE available = 1`
	}
	var out []string
	err := r.db.Select(&out, sql)
	return out, err
}

func (r *PhoneRepo) Get(id string) (domain.Phone, error) {
	var p domain.Phone
	err := r.db.Get(&p, `SELECT `+phoneCols+` FROM phones WHERE id = ?`, id)
	return p, err
}

func (r *PhoneRepo) Insert(p domain.Phone) error {
	_, err := r.db.Exec(`
  INSERT INTO phones(id, name, brand, price, condition, description, images_json, storage, battery, available, is_deal)
  VALUES(?,?,?,?,?,?,?,?,?,?,?)`,
		p.ID, p.Name, p.Brand, p.Price, p.Condition, p.Description, p.ImagesJSON, p.Storage, p.Battery, p.Available, p.IsDeal)
	return err
}

// Update applies a sparse column patch to one row. Columns are applied
// in sorted order so the statement is deterministic.
func (r *PhoneRepo) Update(id string, set map[string]any) error {
	cols := make([]string, 0, len(set))
	for c := range set {
		cols = append(cols, c)
	}
	sort.Strings(cols)

	stmt := `UPDATE phones SET `
	args := make([]any, 0, len(cols)+1)
	for i, c := range cols {
		if i > 0 {
			stmt += `, `
		}
		stmt += c + ` = ?`
		args = append(args, set[c])
	}
	stmt += ` WHERE id = ?`
	args = append(args, id)

	_, err := r.db.Exec(stmt, args...)
	return err
}
