package service

import (
	"context"
	"time"

	"gadgetlend-backend/internal/config"
	"gadgetlend-backend/internal/domain"
	"gadgetlend-backend/internal/notify"
	"gadgetlend-backend/internal/repository"
)

type extensionService struct {
	store repository.Store
	fines config.FinesConfig
	hub   *notify.Hub
}

func NewExtensionService(store repository.Store, fines config.FinesConfig, hub *notify.Hub) ExtensionService {
	return &extensionService{store: store, fines: fines, hub: hub}
}

func (s *extensionService) RequestExtension(ctx context.Context, rentalID int32, newDueDate string) (*domain.RentalExtension, error) {
	due, err := time.Parse("2006-01-02", newDueDate)
	if err != nil {
		return nil, ErrInvalidDueDate
	}

	// Only an in-flight rental can be extended.
	rental, err := s.store.Rentals().GetByID(ctx, rentalID)
	if err != nil {
		return nil, err
	}
	switch rental.Status {
	case domain.RentalStatusApproved, domain.RentalStatusOngoing, domain.RentalStatusOverdue:
	default:
		return nil, ErrInvalidTransition
	}

	ext := &domain.RentalExtension{
		RentalID:   rentalID,
		NewDueDate: due,
		Status:     domain.ExtensionStatusPending,
	}
	if err := s.store.Extensions().Create(ctx, ext); err != nil {
		return nil, err
	}
	s.hub.Notify("rental_extensions")
	return ext, nil
}

// ApproveExtension moves the rental's due date to the requested date and
// charges the extension fee, regardless of how many earlier requests for
// the rental were rejected.
func (s *extensionService) ApproveExtension(ctx context.Context, extensionID int32) (*domain.RentalExtension, error) {
	ext, err := s.store.Extensions().GetByID(ctx, extensionID)
	if err != nil {
		return nil, err
	}
	if ext.Status != domain.ExtensionStatusPending {
		return nil, ErrExtensionNotPending
	}

	err = s.store.ExecTx(ctx, func(tx repository.Store) error {
		if err := tx.Extensions().UpdateStatus(ctx, ext.ID, domain.ExtensionStatusApproved); err != nil {
			return err
		}
		if err := tx.Rentals().UpdateDueDate(ctx, ext.RentalID, ext.NewDueDate); err != nil {
			return err
		}
		fee := &domain.Transaction{
			StudentID:   ext.Rental.StudentID,
			RentalID:    &ext.RentalID,
			Type:        domain.TransactionTypeExtensionFee,
			AmountCents: s.fines.ExtensionFeeCents,
			Status:      domain.TransactionStatusUnpaid,
		}
		return tx.Transactions().Create(ctx, fee)
	})
	if err != nil {
		return nil, err
	}

	ext.Status = domain.ExtensionStatusApproved
	s.hub.Notify("rental_extensions", "rentals", "transactions")
	return ext, nil
}

func (s *extensionService) RejectExtension(ctx context.Context, extensionID int32) (*domain.RentalExtension, error) {
	ext, err := s.store.Extensions().GetByID(ctx, extensionID)
	if err != nil {
		return nil, err
	}
	if ext.Status != domain.ExtensionStatusPending {
		return nil, ErrExtensionNotPending
	}
	if err := s.store.Extensions().UpdateStatus(ctx, ext.ID, domain.ExtensionStatusRejected); err != nil {
		return nil, err
	}
	ext.Status = domain.ExtensionStatusRejected
	s.hub.Notify("rental_extensions")
	return ext, nil
}

func (s *extensionService) ListExtensions(ctx context.Context, status string) ([]domain.RentalExtension, error) {
	return s.store.Extensions().List(ctx, status)
}
