package postgres

import (
	"context"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"

	"gadgetlend-backend/internal/domain"
)

func TestTransactionRepository_Create(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("error opening mock database: %v", err)
	}
	defer db.Close()

	repo := NewTransactionRepository(db)
	ctx := context.Background()

	rentalID := int32(5)
	tx := &domain.Transaction{
		StudentID:   1,
		RentalID:    &rentalID,
		Type:        domain.TransactionTypeOverdueFine,
		AmountCents: 15000,
		Status:      domain.TransactionStatusUnpaid,
	}

	mock.ExpectQuery("INSERT INTO transactions").
		WithArgs(tx.StudentID, tx.RentalID, tx.Type, tx.AmountCents, tx.Status, sqlmock.AnyArg()).
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(9))

	err = repo.Create(ctx, tx)
	assert.NoError(t, err)
	assert.Equal(t, int32(9), tx.ID)
	assert.False(t, tx.TransactionDate.IsZero())
}

func TestTransactionRepository_MarkPaid(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("error opening mock database: %v", err)
	}
	defer db.Close()

	repo := NewTransactionRepository(db)
	ctx := context.Background()

	mock.ExpectExec("UPDATE transactions SET status").
		WithArgs(domain.TransactionStatusPaid, int32(9), domain.TransactionStatusUnpaid).
		WillReturnResult(sqlmock.NewResult(0, 1))

	assert.NoError(t, repo.MarkPaid(ctx, 9))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestTransactionRepository_ExistsForRental(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("error opening mock database: %v", err)
	}
	defer db.Close()

	repo := NewTransactionRepository(db)
	ctx := context.Background()

	t.Run("Exists", func(t *testing.T) {
		mock.ExpectQuery("SELECT count\\(\\*\\) FROM transactions").
			WithArgs(int32(5), domain.TransactionTypeOverdueFine).
			WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(1))

		exists, err := repo.ExistsForRental(ctx, 5, domain.TransactionTypeOverdueFine)
		assert.NoError(t, err)
		assert.True(t, exists)
	})

	t.Run("Does not exist", func(t *testing.T) {
		mock.ExpectQuery("SELECT count\\(\\*\\) FROM transactions").
			WithArgs(int32(6), domain.TransactionTypeOverdueFine).
			WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(0))

		exists, err := repo.ExistsForRental(ctx, 6, domain.TransactionTypeOverdueFine)
		assert.NoError(t, err)
		assert.False(t, exists)
	})
}
