package postgres

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"gadgetlend-backend/internal/domain"
	"gadgetlend-backend/internal/repository"
)

type rentalRepository struct {
	db DBTX
}

func NewRentalRepository(db DBTX) repository.RentalRepository {
	return &rentalRepository{db: db}
}

func (r *rentalRepository) Create(ctx context.Context, rt *domain.Rental) error {
	query := `INSERT INTO rentals (student_id, rental_date, due_date, rental_status, created_on, updated_on)
	          VALUES ($1, $2, $3, $4, $5, $6) RETURNING id`
	now := time.Now()
	return r.db.QueryRowContext(ctx, query, rt.StudentID, rt.RentalDate, rt.DueDate, rt.Status, now, now).Scan(&rt.ID)
}

func (r *rentalRepository) GetByID(ctx context.Context, id int32) (*domain.Rental, error) {
	rt := &domain.Rental{}
	query := `SELECT id, student_id, rental_date, due_date, pickup_date, return_date, rental_status, created_on, updated_on
	          FROM rentals WHERE id = $1`
	err := r.db.QueryRowContext(ctx, query, id).Scan(
		&rt.ID, &rt.StudentID, &rt.RentalDate, &rt.DueDate, &rt.PickupDate, &rt.ReturnDate, &rt.Status, &rt.CreatedOn, &rt.UpdatedOn)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, repository.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return rt, nil
}

func (r *rentalRepository) UpdateStatus(ctx context.Context, rt *domain.Rental) error {
	query := `UPDATE rentals SET rental_status=$1, pickup_date=$2, return_date=$3, updated_on=$4 WHERE id=$5`
	_, err := r.db.ExecContext(ctx, query, rt.Status, rt.PickupDate, rt.ReturnDate, time.Now(), rt.ID)
	return err
}

func (r *rentalRepository) List(ctx context.Context, status string) ([]domain.Rental, error) {
	query := `SELECT r.id, r.student_id, r.rental_date, r.due_date, r.pickup_date, r.return_date, r.rental_status,
	                 r.created_on, r.updated_on, s.name, s.email
	          FROM rentals r JOIN students s ON r.student_id = s.id`
	args := []interface{}{}
	if status != "" {
		query += " WHERE r.rental_status = $1"
		args = append(args, status)
	}
	query += " ORDER BY r.rental_date DESC"

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var rentals []domain.Rental
	for rows.Next() {
		var rt domain.Rental
		st := &domain.Student{}
		if err := rows.Scan(&rt.ID, &rt.StudentID, &rt.RentalDate, &rt.DueDate, &rt.PickupDate, &rt.ReturnDate,
			&rt.Status, &rt.CreatedOn, &rt.UpdatedOn, &st.Name, &st.Email); err != nil {
			return nil, err
		}
		st.ID = rt.StudentID
		rt.Student = st
		rentals = append(rentals, rt)
	}
	return rentals, rows.Err()
}

func (r *rentalRepository) AddItems(ctx context.Context, rentalID int32, items []domain.RentalItem) error {
	query := `INSERT INTO rental_items (rental_id, gadget_id, quantity) VALUES ($1, $2, $3)`
	for _, item := range items {
		qty := item.Quantity
		if qty == 0 {
			qty = 1
		}
		if _, err := r.db.ExecContext(ctx, query, rentalID, item.GadgetID, qty); err != nil {
			return err
		}
	}
	return nil
}

func (r *rentalRepository) GetItems(ctx context.Context, rentalID int32) ([]domain.RentalItem, error) {
	query := `SELECT ri.id, ri.rental_id, ri.gadget_id, ri.quantity, g.gadget_name, g.serial_number, g.status
	          FROM rental_items ri JOIN gadgets g ON ri.gadget_id = g.id
	          WHERE ri.rental_id = $1`
	rows, err := r.db.QueryContext(ctx, query, rentalID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var items []domain.RentalItem
	for rows.Next() {
		var item domain.RentalItem
		g := &domain.Gadget{}
		if err := rows.Scan(&item.ID, &item.RentalID, &item.GadgetID, &item.Quantity, &g.Name, &g.SerialNumber, &g.Status); err != nil {
			return nil, err
		}
		g.ID = item.GadgetID
		item.Gadget = g
		items = append(items, item)
	}
	return items, rows.Err()
}

func (r *rentalRepository) UpdateDueDate(ctx context.Context, rentalID int32, dueDate time.Time) error {
	query := `UPDATE rentals SET due_date=$1, updated_on=$2 WHERE id=$3`
	_, err := r.db.ExecContext(ctx, query, dueDate, time.Now(), rentalID)
	return err
}
