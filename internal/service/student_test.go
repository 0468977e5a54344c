package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"gadgetlend-backend/internal/domain"
	"gadgetlend-backend/internal/notify"
)

func TestStudentService_CreateStudent(t *testing.T) {
	ctx := context.Background()
	store := newMockStore()
	svc := NewStudentService(store, notify.NewHub())

	store.StudentRepo.On("Create", ctx, mock.AnythingOfType("*domain.Student")).Return(nil)

	student := &domain.Student{Name: "Maria Santos", Email: "maria@university.edu"}
	err := svc.CreateStudent(ctx, student)
	assert.NoError(t, err)
	assert.Equal(t, domain.AccountStatusPending, student.AccountStatus)
}

func TestStudentService_DeleteStudent(t *testing.T) {
	ctx := context.Background()
	studentID := int32(1)

	t.Run("Open rentals block delete", func(t *testing.T) {
		store := newMockStore()
		svc := NewStudentService(store, notify.NewHub())

		store.StudentRepo.On("CountActiveRentals", ctx, studentID).Return(int32(1), nil)

		err := svc.DeleteStudent(ctx, studentID)
		assert.ErrorIs(t, err, ErrStudentHasRentals)
		store.StudentRepo.AssertNotCalled(t, "Delete", mock.Anything, mock.Anything)
	})

	t.Run("No open rentals", func(t *testing.T) {
		store := newMockStore()
		svc := NewStudentService(store, notify.NewHub())

		store.StudentRepo.On("CountActiveRentals", ctx, studentID).Return(int32(0), nil)
		store.StudentRepo.On("Delete", ctx, studentID).Return(nil)

		err := svc.DeleteStudent(ctx, studentID)
		assert.NoError(t, err)
	})
}
