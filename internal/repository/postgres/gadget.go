package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/lib/pq"

	"gadgetlend-backend/internal/domain"
	"gadgetlend-backend/internal/repository"
)

type gadgetRepository struct {
	db DBTX
}

func NewGadgetRepository(db DBTX) repository.GadgetRepository {
	return &gadgetRepository{db: db}
}

func (r *gadgetRepository) Create(ctx context.Context, g *domain.Gadget) error {
	query := `INSERT INTO gadgets (serial_number, gadget_name, type_id, description, price_per_day_cents, status, created_on)
	          VALUES ($1, $2, $3, $4, $5, $6, $7) RETURNING id`
	return r.db.QueryRowContext(ctx, query, g.SerialNumber, g.Name, g.TypeID, g.Description, g.PricePerDayCents, g.Status, time.Now()).Scan(&g.ID)
}

func (r *gadgetRepository) GetByID(ctx context.Context, id int32) (*domain.Gadget, error) {
	g := &domain.Gadget{}
	query := `SELECT g.id, g.serial_number, g.gadget_name, g.type_id, gt.type_name, g.description, g.price_per_day_cents, g.status, g.created_on
	          FROM gadgets g JOIN gadget_types gt ON g.type_id = gt.id WHERE g.id = $1`
	err := r.db.QueryRowContext(ctx, query, id).Scan(
		&g.ID, &g.SerialNumber, &g.Name, &g.TypeID, &g.TypeName, &g.Description, &g.PricePerDayCents, &g.Status, &g.CreatedOn)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, repository.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return g, nil
}

func (r *gadgetRepository) Update(ctx context.Context, g *domain.Gadget) error {
	query := `UPDATE gadgets SET serial_number=$1, gadget_name=$2, type_id=$3, description=$4, price_per_day_cents=$5, status=$6 WHERE id=$7`
	_, err := r.db.ExecContext(ctx, query, g.SerialNumber, g.Name, g.TypeID, g.Description, g.PricePerDayCents, g.Status, g.ID)
	return err
}

// UpdateStatus moves a set of gadgets to one status in a single statement,
// used by rental transitions that touch every line item at once.
func (r *gadgetRepository) UpdateStatus(ctx context.Context, ids []int32, status domain.GadgetStatus) error {
	if len(ids) == 0 {
		return nil
	}
	query := `UPDATE gadgets SET status=$1 WHERE id = ANY($2)`
	_, err := r.db.ExecContext(ctx, query, status, pq.Array(ids))
	return err
}

func (r *gadgetRepository) Delete(ctx context.Context, id int32) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM gadgets WHERE id = $1`, id)
	if err != nil {
		return err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return repository.ErrNotFound
	}
	return nil
}

func (r *gadgetRepository) List(ctx context.Context, status domain.GadgetStatus, typeID int32) ([]domain.Gadget, error) {
	query := `SELECT g.id, g.serial_number, g.gadget_name, g.type_id, gt.type_name, g.description, g.price_per_day_cents, g.status, g.created_on
	          FROM gadgets g JOIN gadget_types gt ON g.type_id = gt.id`
	args := []interface{}{}
	where := ""
	if status != "" {
		args = append(args, status)
		where = fmt.Sprintf(" WHERE g.status = $%d", len(args))
	}
	if typeID != 0 {
		args = append(args, typeID)
		if where == "" {
			where = fmt.Sprintf(" WHERE g.type_id = $%d", len(args))
		} else {
			where += fmt.Sprintf(" AND g.type_id = $%d", len(args))
		}
	}
	query += where + " ORDER BY g.gadget_name"

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var gadgets []domain.Gadget
	for rows.Next() {
		var g domain.Gadget
		if err := rows.Scan(&g.ID, &g.SerialNumber, &g.Name, &g.TypeID, &g.TypeName, &g.Description, &g.PricePerDayCents, &g.Status, &g.CreatedOn); err != nil {
			return nil, err
		}
		gadgets = append(gadgets, g)
	}
	return gadgets, rows.Err()
}

// CountRentalReferences counts rental line items pointing at a gadget,
// historical ones included. Any reference blocks hard deletion.
func (r *gadgetRepository) CountRentalReferences(ctx context.Context, gadgetID int32) (int32, error) {
	var count int32
	err := r.db.QueryRowContext(ctx, `SELECT count(*) FROM rental_items WHERE gadget_id = $1`, gadgetID).Scan(&count)
	return count, err
}

func (r *gadgetRepository) CreateType(ctx context.Context, gt *domain.GadgetType) error {
	query := `INSERT INTO gadget_types (type_name) VALUES ($1) RETURNING id`
	return r.db.QueryRowContext(ctx, query, gt.Name).Scan(&gt.ID)
}

func (r *gadgetRepository) ListTypes(ctx context.Context) ([]domain.GadgetType, error) {
	rows, err := r.db.QueryContext(ctx, `SELECT id, type_name FROM gadget_types ORDER BY type_name`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var types []domain.GadgetType
	for rows.Next() {
		var gt domain.GadgetType
		if err := rows.Scan(&gt.ID, &gt.Name); err != nil {
			return nil, err
		}
		types = append(types, gt)
	}
	return types, rows.Err()
}

func (r *gadgetRepository) DeleteType(ctx context.Context, id int32) error {
	_, err := r.db.ExecContext(ctx, `DELETE FROM gadget_types WHERE id = $1`, id)
	return err
}
