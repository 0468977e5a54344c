package postgres

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"gadgetlend-backend/internal/domain"
	"gadgetlend-backend/internal/repository"
)

type extensionRepository struct {
	db DBTX
}

func NewExtensionRepository(db DBTX) repository.ExtensionRepository {
	return &extensionRepository{db: db}
}

func (r *extensionRepository) Create(ctx context.Context, ext *domain.RentalExtension) error {
	query := `INSERT INTO rental_extensions (rental_id, new_due_date, status, request_date)
	          VALUES ($1, $2, $3, $4) RETURNING id`
	if ext.RequestDate.IsZero() {
		ext.RequestDate = time.Now()
	}
	return r.db.QueryRowContext(ctx, query, ext.RentalID, ext.NewDueDate, ext.Status, ext.RequestDate).Scan(&ext.ID)
}

func (r *extensionRepository) GetByID(ctx context.Context, id int32) (*domain.RentalExtension, error) {
	ext := &domain.RentalExtension{}
	query := `SELECT e.id, e.rental_id, e.new_due_date, e.status, e.request_date, r.student_id, r.due_date, r.rental_status
	          FROM rental_extensions e JOIN rentals r ON e.rental_id = r.id
	          WHERE e.id = $1`
	rt := &domain.Rental{}
	err := r.db.QueryRowContext(ctx, query, id).Scan(
		&ext.ID, &ext.RentalID, &ext.NewDueDate, &ext.Status, &ext.RequestDate, &rt.StudentID, &rt.DueDate, &rt.Status)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, repository.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	rt.ID = ext.RentalID
	ext.Rental = rt
	return ext, nil
}

func (r *extensionRepository) UpdateStatus(ctx context.Context, id int32, status domain.RentalExtensionStatus) error {
	_, err := r.db.ExecContext(ctx, `UPDATE rental_extensions SET status=$1 WHERE id=$2`, status, id)
	return err
}

func (r *extensionRepository) List(ctx context.Context, status string) ([]domain.RentalExtension, error) {
	query := `SELECT e.id, e.rental_id, e.new_due_date, e.status, e.request_date, r.student_id, r.due_date, r.rental_status
	          FROM rental_extensions e JOIN rentals r ON e.rental_id = r.id`
	args := []interface{}{}
	if status != "" {
		query += " WHERE e.status = $1"
		args = append(args, status)
	}
	query += " ORDER BY e.request_date DESC"

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var exts []domain.RentalExtension
	for rows.Next() {
		var ext domain.RentalExtension
		rt := &domain.Rental{}
		if err := rows.Scan(&ext.ID, &ext.RentalID, &ext.NewDueDate, &ext.Status, &ext.RequestDate, &rt.StudentID, &rt.DueDate, &rt.Status); err != nil {
			return nil, err
		}
		rt.ID = ext.RentalID
		ext.Rental = rt
		exts = append(exts, ext)
	}
	return exts, rows.Err()
}
