package service

import (
	"context"
	"fmt"
	"time"

	"gadgetlend-backend/internal/config"
	"gadgetlend-backend/internal/domain"
	"gadgetlend-backend/internal/logger"
	"gadgetlend-backend/internal/notify"
	"gadgetlend-backend/internal/repository"
)

type rentalService struct {
	store repository.Store
	fines config.FinesConfig
	hub   *notify.Hub
}

func NewRentalService(store repository.Store, fines config.FinesConfig, hub *notify.Hub) RentalService {
	return &rentalService{store: store, fines: fines, hub: hub}
}

// CreateRental inserts the rental, its line items, the gadget reservations
// and the rental payment fee as one unit. The student must be active and
// every selected gadget available.
func (s *rentalService) CreateRental(ctx context.Context, studentID int32, dueDate string, gadgetIDs []int32) (*domain.Rental, error) {
	if len(gadgetIDs) == 0 {
		return nil, ErrNoGadgetsSelected
	}
	due, err := time.Parse("2006-01-02", dueDate)
	if err != nil {
		return nil, ErrInvalidDueDate
	}

	student, err := s.store.Students().GetByID(ctx, studentID)
	if err != nil {
		return nil, err
	}
	if student.AccountStatus != domain.AccountStatusActive {
		return nil, ErrStudentNotActive
	}

	rental := &domain.Rental{
		StudentID:  studentID,
		RentalDate: time.Now(),
		DueDate:    due,
		Status:     domain.RentalStatusPending,
	}

	err = s.store.ExecTx(ctx, func(tx repository.Store) error {
		for _, id := range gadgetIDs {
			gadget, err := tx.Gadgets().GetByID(ctx, id)
			if err != nil {
				return err
			}
			if gadget.Status != domain.GadgetStatusAvailable {
				return fmt.Errorf("%w: %s", ErrGadgetNotAvailable, gadget.SerialNumber)
			}
		}

		if err := tx.Rentals().Create(ctx, rental); err != nil {
			return err
		}

		items := make([]domain.RentalItem, 0, len(gadgetIDs))
		for _, id := range gadgetIDs {
			items = append(items, domain.RentalItem{GadgetID: id, Quantity: 1})
		}
		if err := tx.Rentals().AddItems(ctx, rental.ID, items); err != nil {
			return err
		}

		if err := tx.Gadgets().UpdateStatus(ctx, gadgetIDs, domain.GadgetStatusReserved); err != nil {
			return err
		}

		fee := &domain.Transaction{
			StudentID:   studentID,
			RentalID:    &rental.ID,
			Type:        domain.TransactionTypeRentalPayment,
			AmountCents: s.fines.RentalFeeCents,
			Status:      domain.TransactionStatusUnpaid,
		}
		return tx.Transactions().Create(ctx, fee)
	})
	if err != nil {
		return nil, err
	}

	s.hub.Notify("rentals", "gadgets", "transactions")
	return rental, nil
}

// ApproveRequest moves a pending request to Approved and re-asserts the
// gadget reservations. Gadgets already Reserved stay Reserved.
func (s *rentalService) ApproveRequest(ctx context.Context, rentalID int32) (*domain.Rental, error) {
	rental, err := s.transition(ctx, rentalID, domain.RentalStatusApproved, func(tx repository.Store, rt *domain.Rental, gadgetIDs []int32) error {
		return tx.Gadgets().UpdateStatus(ctx, gadgetIDs, domain.GadgetStatusReserved)
	})
	if err != nil {
		return nil, err
	}
	s.hub.Notify("rentals", "gadgets")
	return rental, nil
}

// RejectRequest moves a pending request to Rejected. No gadget or fee
// changes.
func (s *rentalService) RejectRequest(ctx context.Context, rentalID int32) (*domain.Rental, error) {
	rental, err := s.transition(ctx, rentalID, domain.RentalStatusRejected, nil)
	if err != nil {
		return nil, err
	}
	s.hub.Notify("rentals")
	return rental, nil
}

// Pickup hands the gadgets to the student: Approved to Ongoing, pickup
// timestamp recorded, every gadget In Use.
func (s *rentalService) Pickup(ctx context.Context, rentalID int32) (*domain.Rental, error) {
	now := time.Now()
	rental, err := s.transition(ctx, rentalID, domain.RentalStatusOngoing, func(tx repository.Store, rt *domain.Rental, gadgetIDs []int32) error {
		rt.PickupDate = &now
		return tx.Gadgets().UpdateStatus(ctx, gadgetIDs, domain.GadgetStatusInUse)
	})
	if err != nil {
		return nil, err
	}
	s.hub.Notify("rentals", "gadgets")
	return rental, nil
}

// MarkReturned completes the rental, frees the gadgets and, when the return
// lands past the due date, creates a single overdue fine at the manual
// return rate. The existence check keeps this path and the overdue scanner
// from fining the same rental twice.
func (s *rentalService) MarkReturned(ctx context.Context, rentalID int32) (*domain.Rental, error) {
	now := time.Now()
	rental, err := s.transition(ctx, rentalID, domain.RentalStatusCompleted, func(tx repository.Store, rt *domain.Rental, gadgetIDs []int32) error {
		rt.ReturnDate = &now
		if err := tx.Gadgets().UpdateStatus(ctx, gadgetIDs, domain.GadgetStatusAvailable); err != nil {
			return err
		}

		daysLate := domain.DaysLate(rt.DueDate, now)
		if daysLate <= 0 {
			return nil
		}
		exists, err := tx.Transactions().ExistsForRental(ctx, rt.ID, domain.TransactionTypeOverdueFine)
		if err != nil {
			return err
		}
		if exists {
			logger.Debug("overdue fine already present, skipping", "rental_id", rt.ID)
			return nil
		}
		fine := &domain.Transaction{
			StudentID:   rt.StudentID,
			RentalID:    &rt.ID,
			Type:        domain.TransactionTypeOverdueFine,
			AmountCents: daysLate * s.fines.ReturnOverdueRateCents,
			Status:      domain.TransactionStatusUnpaid,
		}
		return tx.Transactions().Create(ctx, fine)
	})
	if err != nil {
		return nil, err
	}
	s.hub.Notify("rentals", "gadgets", "transactions")
	return rental, nil
}

// MarkLost closes the rental as Lost: gadgets to Lost, a pending
// damage/loss assessment at the fixed lost-fine amount, and a Lost Fine
// ledger entry, all in one transaction.
func (s *rentalService) MarkLost(ctx context.Context, rentalID int32) (*domain.Rental, error) {
	now := time.Now()
	lostFine := s.fines.LostFineCents
	rental, err := s.transition(ctx, rentalID, domain.RentalStatusLost, func(tx repository.Store, rt *domain.Rental, gadgetIDs []int32) error {
		rt.ReturnDate = &now
		if err := tx.Gadgets().UpdateStatus(ctx, gadgetIDs, domain.GadgetStatusLost); err != nil {
			return err
		}

		assessment := &domain.DamageAssessment{
			RentalID:     rt.ID,
			InitialNotes: "Item marked as lost by admin.",
			FinalNotes:   "Lost",
			FineCents:    &lostFine,
			Status:       domain.AssessmentStatusPending,
		}
		if err := tx.Assessments().Create(ctx, assessment); err != nil {
			return err
		}

		fine := &domain.Transaction{
			StudentID:   rt.StudentID,
			RentalID:    &rt.ID,
			Type:        domain.TransactionTypeLostFine,
			AmountCents: lostFine,
			Status:      domain.TransactionStatusUnpaid,
		}
		return tx.Transactions().Create(ctx, fine)
	})
	if err != nil {
		return nil, err
	}
	s.hub.Notify("rentals", "gadgets", "transactions", "damage_assessments")
	return rental, nil
}

// FlagDamage records a pending assessment against a completed rental. No
// fee is created until the assessment is resolved.
func (s *rentalService) FlagDamage(ctx context.Context, rentalID int32, initialNotes, finalNotes string, fineCents *int32) (*domain.DamageAssessment, error) {
	rental, err := s.store.Rentals().GetByID(ctx, rentalID)
	if err != nil {
		return nil, err
	}
	if rental.Status != domain.RentalStatusCompleted {
		return nil, ErrInvalidTransition
	}

	assessment := &domain.DamageAssessment{
		RentalID:     rentalID,
		InitialNotes: initialNotes,
		FinalNotes:   finalNotes,
		FineCents:    fineCents,
		Status:       domain.AssessmentStatusPending,
	}
	if err := s.store.Assessments().Create(ctx, assessment); err != nil {
		return nil, err
	}
	s.hub.Notify("damage_assessments")
	return assessment, nil
}

func (s *rentalService) GetRental(ctx context.Context, rentalID int32) (*domain.Rental, error) {
	rental, err := s.store.Rentals().GetByID(ctx, rentalID)
	if err != nil {
		return nil, err
	}
	items, err := s.store.Rentals().GetItems(ctx, rentalID)
	if err != nil {
		return nil, err
	}
	rental.Items = items
	rental.Overdue = rental.IsOverdue(time.Now())
	return rental, nil
}

func (s *rentalService) ListRentals(ctx context.Context, status string) ([]domain.Rental, error) {
	rentals, err := s.store.Rentals().List(ctx, status)
	if err != nil {
		return nil, err
	}
	now := time.Now()
	for i := range rentals {
		rentals[i].Overdue = rentals[i].IsOverdue(now)
	}
	return rentals, nil
}

// transition is the shared precondition check and write path for every
// status change. It rejects edges outside the state machine before any
// record is touched, then runs the status update plus sideEffects in one
// transaction. sideEffects receives the rental's gadget IDs since most
// transitions fan out to the inventory.
func (s *rentalService) transition(ctx context.Context, rentalID int32, next domain.RentalStatus,
	sideEffects func(tx repository.Store, rt *domain.Rental, gadgetIDs []int32) error) (*domain.Rental, error) {

	rental, err := s.store.Rentals().GetByID(ctx, rentalID)
	if err != nil {
		return nil, err
	}
	if !rental.Status.CanTransitionTo(next) {
		return nil, fmt.Errorf("%w: %s -> %s", ErrInvalidTransition, rental.Status, next)
	}

	err = s.store.ExecTx(ctx, func(tx repository.Store) error {
		items, err := tx.Rentals().GetItems(ctx, rentalID)
		if err != nil {
			return err
		}
		gadgetIDs := make([]int32, 0, len(items))
		for _, item := range items {
			gadgetIDs = append(gadgetIDs, item.GadgetID)
		}

		rental.Status = next
		if sideEffects != nil {
			if err := sideEffects(tx, rental, gadgetIDs); err != nil {
				return err
			}
		}
		return tx.Rentals().UpdateStatus(ctx, rental)
	})
	if err != nil {
		return nil, err
	}
	return rental, nil
}
