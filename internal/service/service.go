package service

import (
	"context"

	"gadgetlend-backend/internal/domain"
)

type AuthService interface {
	Login(ctx context.Context, email, password string) (string, *domain.Admin, error)
}

type StudentService interface {
	CreateStudent(ctx context.Context, student *domain.Student) error
	GetStudent(ctx context.Context, id int32) (*domain.Student, error)
	UpdateStudent(ctx context.Context, student *domain.Student) error
	DeleteStudent(ctx context.Context, id int32) error
	ListStudents(ctx context.Context, status string) ([]domain.Student, error)
}

type GadgetService interface {
	AddGadget(ctx context.Context, gadget *domain.Gadget) error
	GetGadget(ctx context.Context, id int32) (*domain.Gadget, error)
	UpdateGadget(ctx context.Context, gadget *domain.Gadget) error
	DeleteGadget(ctx context.Context, id int32) error
	ListGadgets(ctx context.Context, status domain.GadgetStatus, typeID int32) ([]domain.Gadget, error)
	CreateType(ctx context.Context, gt *domain.GadgetType) error
	ListTypes(ctx context.Context) ([]domain.GadgetType, error)
	DeleteType(ctx context.Context, id int32) error
}

// RentalService is the rental lifecycle manager: the single authority for
// status transitions and their fee and inventory side effects.
type RentalService interface {
	CreateRental(ctx context.Context, studentID int32, dueDate string, gadgetIDs []int32) (*domain.Rental, error)
	ApproveRequest(ctx context.Context, rentalID int32) (*domain.Rental, error)
	RejectRequest(ctx context.Context, rentalID int32) (*domain.Rental, error)
	Pickup(ctx context.Context, rentalID int32) (*domain.Rental, error)
	MarkReturned(ctx context.Context, rentalID int32) (*domain.Rental, error)
	MarkLost(ctx context.Context, rentalID int32) (*domain.Rental, error)
	FlagDamage(ctx context.Context, rentalID int32, initialNotes, finalNotes string, fineCents *int32) (*domain.DamageAssessment, error)
	GetRental(ctx context.Context, rentalID int32) (*domain.Rental, error)
	ListRentals(ctx context.Context, status string) ([]domain.Rental, error)
}

type ExtensionService interface {
	RequestExtension(ctx context.Context, rentalID int32, newDueDate string) (*domain.RentalExtension, error)
	ApproveExtension(ctx context.Context, extensionID int32) (*domain.RentalExtension, error)
	RejectExtension(ctx context.Context, extensionID int32) (*domain.RentalExtension, error)
	ListExtensions(ctx context.Context, status string) ([]domain.RentalExtension, error)
}

type AssessmentService interface {
	ResolveWithFine(ctx context.Context, assessmentID int32) (*domain.Transaction, error)
	Resolve(ctx context.Context, assessmentID int32) error
	ListAssessments(ctx context.Context, status string) ([]domain.DamageAssessment, error)
}

type TransactionService interface {
	MarkPaid(ctx context.Context, transactionID int32) (*domain.Transaction, error)
	ListTransactions(ctx context.Context, status, txType string) ([]domain.Transaction, error)
}

type EmailService interface {
	SendOverdueNotice(ctx context.Context, email, name string, rentalID int32, dueDate string, fineCents int32) error
}
