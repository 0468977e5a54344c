package service

import (
	"context"

	"gadgetlend-backend/internal/domain"
	"gadgetlend-backend/internal/notify"
	"gadgetlend-backend/internal/repository"
)

type studentService struct {
	store repository.Store
	hub   *notify.Hub
}

func NewStudentService(store repository.Store, hub *notify.Hub) StudentService {
	return &studentService{store: store, hub: hub}
}

func (s *studentService) CreateStudent(ctx context.Context, student *domain.Student) error {
	if student.AccountStatus == "" {
		student.AccountStatus = domain.AccountStatusPending
	}
	if err := s.store.Students().Create(ctx, student); err != nil {
		return err
	}
	s.hub.Notify("students")
	return nil
}

func (s *studentService) GetStudent(ctx context.Context, id int32) (*domain.Student, error) {
	return s.store.Students().GetByID(ctx, id)
}

func (s *studentService) UpdateStudent(ctx context.Context, student *domain.Student) error {
	if err := s.store.Students().Update(ctx, student); err != nil {
		return err
	}
	s.hub.Notify("students")
	return nil
}

// DeleteStudent removes a student record. A student with any rental that is
// not yet closed out cannot be deleted.
func (s *studentService) DeleteStudent(ctx context.Context, id int32) error {
	active, err := s.store.Students().CountActiveRentals(ctx, id)
	if err != nil {
		return err
	}
	if active > 0 {
		return ErrStudentHasRentals
	}
	if err := s.store.Students().Delete(ctx, id); err != nil {
		return err
	}
	s.hub.Notify("students")
	return nil
}

func (s *studentService) ListStudents(ctx context.Context, status string) ([]domain.Student, error) {
	return s.store.Students().List(ctx, status)
}
