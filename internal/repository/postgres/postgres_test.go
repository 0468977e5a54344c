package postgres

import (
	"context"
	"errors"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"

	"gadgetlend-backend/internal/domain"
	"gadgetlend-backend/internal/repository"
)

func TestStore_ExecTx_Commit(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("error opening mock database: %v", err)
	}
	defer db.Close()

	store := NewStore(db)
	ctx := context.Background()

	mock.ExpectBegin()
	mock.ExpectExec("UPDATE transactions SET status").
		WithArgs(domain.TransactionStatusPaid, int32(9), domain.TransactionStatusUnpaid).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	err = store.ExecTx(ctx, func(tx repository.Store) error {
		return tx.Transactions().MarkPaid(ctx, 9)
	})
	assert.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestStore_ExecTx_RollbackOnError(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("error opening mock database: %v", err)
	}
	defer db.Close()

	store := NewStore(db)
	ctx := context.Background()

	boom := errors.New("boom")

	mock.ExpectBegin()
	mock.ExpectRollback()

	err = store.ExecTx(ctx, func(tx repository.Store) error {
		return boom
	})
	assert.ErrorIs(t, err, boom)
	assert.NoError(t, mock.ExpectationsWereMet())
}
