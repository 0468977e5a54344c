package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"gadgetlend-backend/internal/domain"
	"gadgetlend-backend/internal/repository"
)

type transactionRepository struct {
	db DBTX
}

func NewTransactionRepository(db DBTX) repository.TransactionRepository {
	return &transactionRepository{db: db}
}

func (r *transactionRepository) Create(ctx context.Context, tx *domain.Transaction) error {
	query := `INSERT INTO transactions (student_id, rental_id, transaction_type, amount_cents, status, transaction_date)
	          VALUES ($1, $2, $3, $4, $5, $6) RETURNING id`
	if tx.TransactionDate.IsZero() {
		tx.TransactionDate = time.Now()
	}
	return r.db.QueryRowContext(ctx, query, tx.StudentID, tx.RentalID, tx.Type, tx.AmountCents, tx.Status, tx.TransactionDate).Scan(&tx.ID)
}

func (r *transactionRepository) GetByID(ctx context.Context, id int32) (*domain.Transaction, error) {
	tx := &domain.Transaction{}
	query := `SELECT id, student_id, rental_id, transaction_type, amount_cents, status, transaction_date
	          FROM transactions WHERE id = $1`
	err := r.db.QueryRowContext(ctx, query, id).Scan(
		&tx.ID, &tx.StudentID, &tx.RentalID, &tx.Type, &tx.AmountCents, &tx.Status, &tx.TransactionDate)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, repository.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return tx, nil
}

// MarkPaid flips status one way. Type, amount and rental reference are never
// updated after insert.
func (r *transactionRepository) MarkPaid(ctx context.Context, id int32) error {
	query := `UPDATE transactions SET status=$1 WHERE id=$2 AND status=$3`
	_, err := r.db.ExecContext(ctx, query, domain.TransactionStatusPaid, id, domain.TransactionStatusUnpaid)
	return err
}

func (r *transactionRepository) List(ctx context.Context, status string, txType string) ([]domain.Transaction, error) {
	query := `SELECT t.id, t.student_id, t.rental_id, t.transaction_type, t.amount_cents, t.status, t.transaction_date, s.name, s.email
	          FROM transactions t JOIN students s ON t.student_id = s.id`
	args := []interface{}{}
	where := ""
	if status != "" {
		args = append(args, status)
		where = fmt.Sprintf(" WHERE t.status = $%d", len(args))
	}
	if txType != "" {
		args = append(args, txType)
		if where == "" {
			where = fmt.Sprintf(" WHERE t.transaction_type = $%d", len(args))
		} else {
			where += fmt.Sprintf(" AND t.transaction_type = $%d", len(args))
		}
	}
	query += where + " ORDER BY t.transaction_date DESC"

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var txs []domain.Transaction
	for rows.Next() {
		var tx domain.Transaction
		st := &domain.Student{}
		if err := rows.Scan(&tx.ID, &tx.StudentID, &tx.RentalID, &tx.Type, &tx.AmountCents, &tx.Status, &tx.TransactionDate, &st.Name, &st.Email); err != nil {
			return nil, err
		}
		st.ID = tx.StudentID
		tx.Student = st
		txs = append(txs, tx)
	}
	return txs, rows.Err()
}

// ExistsForRental is the idempotency guard used by both overdue-fine paths:
// an existence check before insert, not a unique constraint.
func (r *transactionRepository) ExistsForRental(ctx context.Context, rentalID int32, txType domain.TransactionType) (bool, error) {
	var count int32
	query := `SELECT count(*) FROM transactions WHERE rental_id = $1 AND transaction_type = $2`
	if err := r.db.QueryRowContext(ctx, query, rentalID, txType).Scan(&count); err != nil {
		return false, err
	}
	return count > 0, nil
}
