package postgres

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"gadgetlend-backend/internal/domain"
	"gadgetlend-backend/internal/repository"
)

type assessmentRepository struct {
	db DBTX
}

func NewAssessmentRepository(db DBTX) repository.AssessmentRepository {
	return &assessmentRepository{db: db}
}

func (r *assessmentRepository) Create(ctx context.Context, a *domain.DamageAssessment) error {
	query := `INSERT INTO damage_assessments (rental_id, initial_notes, final_notes, fine_cents, date_flagged, status)
	          VALUES ($1, $2, $3, $4, $5, $6) RETURNING id`
	if a.DateFlagged.IsZero() {
		a.DateFlagged = time.Now()
	}
	return r.db.QueryRowContext(ctx, query, a.RentalID, a.InitialNotes, a.FinalNotes, a.FineCents, a.DateFlagged, a.Status).Scan(&a.ID)
}

func (r *assessmentRepository) GetByID(ctx context.Context, id int32) (*domain.DamageAssessment, error) {
	a := &domain.DamageAssessment{}
	query := `SELECT a.id, a.rental_id, a.initial_notes, a.final_notes, a.fine_cents, a.date_flagged, a.status, r.student_id
	          FROM damage_assessments a JOIN rentals r ON a.rental_id = r.id
	          WHERE a.id = $1`
	rt := &domain.Rental{}
	err := r.db.QueryRowContext(ctx, query, id).Scan(
		&a.ID, &a.RentalID, &a.InitialNotes, &a.FinalNotes, &a.FineCents, &a.DateFlagged, &a.Status, &rt.StudentID)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, repository.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	rt.ID = a.RentalID
	a.Rental = rt
	return a, nil
}

func (r *assessmentRepository) UpdateStatus(ctx context.Context, id int32, status domain.AssessmentStatus) error {
	_, err := r.db.ExecContext(ctx, `UPDATE damage_assessments SET status=$1 WHERE id=$2`, status, id)
	return err
}

func (r *assessmentRepository) List(ctx context.Context, status string) ([]domain.DamageAssessment, error) {
	query := `SELECT a.id, a.rental_id, a.initial_notes, a.final_notes, a.fine_cents, a.date_flagged, a.status, r.student_id
	          FROM damage_assessments a JOIN rentals r ON a.rental_id = r.id`
	args := []interface{}{}
	if status != "" {
		query += " WHERE a.status = $1"
		args = append(args, status)
	}
	query += " ORDER BY a.date_flagged DESC"

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var assessments []domain.DamageAssessment
	for rows.Next() {
		var a domain.DamageAssessment
		rt := &domain.Rental{}
		if err := rows.Scan(&a.ID, &a.RentalID, &a.InitialNotes, &a.FinalNotes, &a.FineCents, &a.DateFlagged, &a.Status, &rt.StudentID); err != nil {
			return nil, err
		}
		rt.ID = a.RentalID
		a.Rental = rt
		assessments = append(assessments, a)
	}
	return assessments, rows.Err()
}
