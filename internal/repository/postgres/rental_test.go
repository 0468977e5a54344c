package postgres

import (
	"context"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"

	"gadgetlend-backend/internal/domain"
	"gadgetlend-backend/internal/repository"
)

func TestRentalRepository_Create(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("error opening mock database: %v", err)
	}
	defer db.Close()

	repo := NewRentalRepository(db)
	ctx := context.Background()

	rental := &domain.Rental{
		StudentID:  1,
		RentalDate: time.Now(),
		DueDate:    time.Now().Add(72 * time.Hour),
		Status:     domain.RentalStatusPending,
	}

	mock.ExpectQuery("INSERT INTO rentals").
		WithArgs(rental.StudentID, rental.RentalDate, rental.DueDate, rental.Status, sqlmock.AnyArg(), sqlmock.AnyArg()).
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(5))

	err = repo.Create(ctx, rental)
	assert.NoError(t, err)
	assert.Equal(t, int32(5), rental.ID)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRentalRepository_GetByID(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("error opening mock database: %v", err)
	}
	defer db.Close()

	repo := NewRentalRepository(db)
	ctx := context.Background()

	t.Run("Success", func(t *testing.T) {
		now := time.Now()
		rows := sqlmock.NewRows([]string{"id", "student_id", "rental_date", "due_date", "pickup_date", "return_date", "rental_status", "created_on", "updated_on"}).
			AddRow(5, 1, now, now.Add(72*time.Hour), nil, nil, "Pending", now, now)

		mock.ExpectQuery("SELECT (.+) FROM rentals WHERE id = \\$1").
			WithArgs(int32(5)).
			WillReturnRows(rows)

		rental, err := repo.GetByID(ctx, 5)
		assert.NoError(t, err)
		assert.Equal(t, int32(5), rental.ID)
		assert.Equal(t, domain.RentalStatusPending, rental.Status)
		assert.Nil(t, rental.PickupDate)
	})

	t.Run("Not found", func(t *testing.T) {
		mock.ExpectQuery("SELECT (.+) FROM rentals WHERE id = \\$1").
			WithArgs(int32(99)).
			WillReturnRows(sqlmock.NewRows([]string{"id"}))

		rental, err := repo.GetByID(ctx, 99)
		assert.ErrorIs(t, err, repository.ErrNotFound)
		assert.Nil(t, rental)
	})
}

func TestRentalRepository_UpdateStatus(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("error opening mock database: %v", err)
	}
	defer db.Close()

	repo := NewRentalRepository(db)
	ctx := context.Background()

	now := time.Now()
	rental := &domain.Rental{ID: 5, Status: domain.RentalStatusCompleted, ReturnDate: &now}

	mock.ExpectExec("UPDATE rentals SET rental_status").
		WithArgs(rental.Status, rental.PickupDate, rental.ReturnDate, sqlmock.AnyArg(), rental.ID).
		WillReturnResult(sqlmock.NewResult(0, 1))

	assert.NoError(t, repo.UpdateStatus(ctx, rental))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRentalRepository_AddItems(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("error opening mock database: %v", err)
	}
	defer db.Close()

	repo := NewRentalRepository(db)
	ctx := context.Background()

	// Zero quantity defaults to one.
	mock.ExpectExec("INSERT INTO rental_items").
		WithArgs(int32(5), int32(10), int32(1)).
		WillReturnResult(sqlmock.NewResult(1, 1))
	mock.ExpectExec("INSERT INTO rental_items").
		WithArgs(int32(5), int32(11), int32(2)).
		WillReturnResult(sqlmock.NewResult(2, 1))

	err = repo.AddItems(ctx, 5, []domain.RentalItem{
		{GadgetID: 10},
		{GadgetID: 11, Quantity: 2},
	})
	assert.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRentalRepository_UpdateDueDate(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("error opening mock database: %v", err)
	}
	defer db.Close()

	repo := NewRentalRepository(db)
	ctx := context.Background()

	newDue := time.Now().Add(7 * 24 * time.Hour)
	mock.ExpectExec("UPDATE rentals SET due_date").
		WithArgs(newDue, sqlmock.AnyArg(), int32(5)).
		WillReturnResult(sqlmock.NewResult(0, 1))

	assert.NoError(t, repo.UpdateDueDate(ctx, 5, newDue))
	assert.NoError(t, mock.ExpectationsWereMet())
}
