package postgres

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"gadgetlend-backend/internal/domain"
	"gadgetlend-backend/internal/repository"
)

type studentRepository struct {
	db DBTX
}

func NewStudentRepository(db DBTX) repository.StudentRepository {
	return &studentRepository{db: db}
}

func (r *studentRepository) Create(ctx context.Context, s *domain.Student) error {
	query := `INSERT INTO students (name, email, phone_number, major, year, account_status, created_on, updated_on)
	          VALUES ($1, $2, $3, $4, $5, $6, $7, $8) RETURNING id`
	now := time.Now()
	return r.db.QueryRowContext(ctx, query, s.Name, s.Email, s.PhoneNumber, s.Major, s.Year, s.AccountStatus, now, now).Scan(&s.ID)
}

func (r *studentRepository) GetByID(ctx context.Context, id int32) (*domain.Student, error) {
	s := &domain.Student{}
	query := `SELECT id, name, email, phone_number, major, year, account_status, created_on, updated_on
	          FROM students WHERE id = $1`
	err := r.db.QueryRowContext(ctx, query, id).Scan(
		&s.ID, &s.Name, &s.Email, &s.PhoneNumber, &s.Major, &s.Year, &s.AccountStatus, &s.CreatedOn, &s.UpdatedOn)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, repository.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return s, nil
}

func (r *studentRepository) Update(ctx context.Context, s *domain.Student) error {
	query := `UPDATE students SET name=$1, email=$2, phone_number=$3, major=$4, year=$5, account_status=$6, updated_on=$7 WHERE id=$8`
	_, err := r.db.ExecContext(ctx, query, s.Name, s.Email, s.PhoneNumber, s.Major, s.Year, s.AccountStatus, time.Now(), s.ID)
	return err
}

func (r *studentRepository) Delete(ctx context.Context, id int32) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM students WHERE id = $1`, id)
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

func (r *studentRepository) List(ctx context.Context, status string) ([]domain.Student, error) {
	query := `SELECT id, name, email, phone_number, major, year, account_status, created_on, updated_on FROM students`
	args := []interface{}{}
	if status != "" {
		query += " WHERE account_status = $1"
		args = append(args, status)
	}
	query += " ORDER BY name"

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var students []domain.Student
	for rows.Next() {
		var s domain.Student
		if err := rows.Scan(&s.ID, &s.Name, &s.Email, &s.PhoneNumber, &s.Major, &s.Year, &s.AccountStatus, &s.CreatedOn, &s.UpdatedOn); err != nil {
			return nil, err
		}
		students = append(students, s)
	}
	return students, rows.Err()
}

// CountActiveRentals counts the student's non-terminal rentals. A student
// with an open rental cannot be deleted.
func (r *studentRepository) CountActiveRentals(ctx context.Context, studentID int32) (int32, error) {
	var count int32
	query := `SELECT count(*) FROM rentals WHERE student_id = $1 AND rental_status IN ('Pending', 'Approved', 'Ongoing', 'Overdue')`
	err := r.db.QueryRowContext(ctx, query, studentID).Scan(&count)
	return count, err
}
