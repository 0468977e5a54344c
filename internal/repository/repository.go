package repository

import (
	"context"
	"errors"
	"time"

	"gadgetlend-backend/internal/domain"
)

// ErrNotFound is returned by Get* methods when no row matches.
var ErrNotFound = errors.New("record not found")

type StudentRepository interface {
	Create(ctx context.Context, student *domain.Student) error
	GetByID(ctx context.Context, id int32) (*domain.Student, error)
	Update(ctx context.Context, student *domain.Student) error
	Delete(ctx context.Context, id int32) error
	List(ctx context.Context, status string) ([]domain.Student, error)
	CountActiveRentals(ctx context.Context, studentID int32) (int32, error)
}

type GadgetRepository interface {
	Create(ctx context.Context, gadget *domain.Gadget) error
	GetByID(ctx context.Context, id int32) (*domain.Gadget, error)
	Update(ctx context.Context, gadget *domain.Gadget) error
	UpdateStatus(ctx context.Context, ids []int32, status domain.GadgetStatus) error
	Delete(ctx context.Context, id int32) error
	List(ctx context.Context, status domain.GadgetStatus, typeID int32) ([]domain.Gadget, error)
	CountRentalReferences(ctx context.Context, gadgetID int32) (int32, error)

	// Gadget types
	CreateType(ctx context.Context, gt *domain.GadgetType) error
	ListTypes(ctx context.Context) ([]domain.GadgetType, error)
	DeleteType(ctx context.Context, id int32) error
}

type RentalRepository interface {
	Create(ctx context.Context, rental *domain.Rental) error
	GetByID(ctx context.Context, id int32) (*domain.Rental, error)
	UpdateStatus(ctx context.Context, rental *domain.Rental) error
	List(ctx context.Context, status string) ([]domain.Rental, error)
	AddItems(ctx context.Context, rentalID int32, items []domain.RentalItem) error
	GetItems(ctx context.Context, rentalID int32) ([]domain.RentalItem, error)
	UpdateDueDate(ctx context.Context, rentalID int32, dueDate time.Time) error
}

type ExtensionRepository interface {
	Create(ctx context.Context, ext *domain.RentalExtension) error
	GetByID(ctx context.Context, id int32) (*domain.RentalExtension, error)
	UpdateStatus(ctx context.Context, id int32, status domain.RentalExtensionStatus) error
	List(ctx context.Context, status string) ([]domain.RentalExtension, error)
}

type AssessmentRepository interface {
	Create(ctx context.Context, a *domain.DamageAssessment) error
	GetByID(ctx context.Context, id int32) (*domain.DamageAssessment, error)
	UpdateStatus(ctx context.Context, id int32, status domain.AssessmentStatus) error
	List(ctx context.Context, status string) ([]domain.DamageAssessment, error)
}

type TransactionRepository interface {
	Create(ctx context.Context, tx *domain.Transaction) error
	GetByID(ctx context.Context, id int32) (*domain.Transaction, error)
	MarkPaid(ctx context.Context, id int32) error
	List(ctx context.Context, status string, txType string) ([]domain.Transaction, error)
	ExistsForRental(ctx context.Context, rentalID int32, txType domain.TransactionType) (bool, error)
}

type AdminRepository interface {
	GetByEmail(ctx context.Context, email string) (*domain.Admin, error)
	Create(ctx context.Context, admin *domain.Admin) error
}

// Store bundles every repository with a transactional runner. ExecTx calls
// fn with a Store bound to one database transaction; services use it for
// every transition that touches more than one record.
type Store interface {
	Students() StudentRepository
	Gadgets() GadgetRepository
	Rentals() RentalRepository
	Extensions() ExtensionRepository
	Assessments() AssessmentRepository
	Transactions() TransactionRepository
	Admins() AdminRepository

	ExecTx(ctx context.Context, fn func(Store) error) error
}
