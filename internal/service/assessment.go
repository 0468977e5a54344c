package service

import (
	"context"

	"gadgetlend-backend/internal/domain"
	"gadgetlend-backend/internal/notify"
	"gadgetlend-backend/internal/repository"
)

type assessmentService struct {
	store repository.Store
	hub   *notify.Hub
}

func NewAssessmentService(store repository.Store, hub *notify.Hub) AssessmentService {
	return &assessmentService{store: store, hub: hub}
}

// ResolveWithFine turns a pending assessment into a ledger entry. The fine
// type follows the final notes: loss wording means Lost Fine, otherwise
// Damage Fine.
func (s *assessmentService) ResolveWithFine(ctx context.Context, assessmentID int32) (*domain.Transaction, error) {
	a, err := s.store.Assessments().GetByID(ctx, assessmentID)
	if err != nil {
		return nil, err
	}
	if a.Status != domain.AssessmentStatusPending {
		return nil, ErrAssessmentNotPending
	}
	if a.FineCents == nil || *a.FineCents <= 0 {
		return nil, ErrFineAmountMissing
	}

	fine := &domain.Transaction{
		StudentID:   a.Rental.StudentID,
		RentalID:    &a.RentalID,
		Type:        a.FineType(),
		AmountCents: *a.FineCents,
		Status:      domain.TransactionStatusUnpaid,
	}

	err = s.store.ExecTx(ctx, func(tx repository.Store) error {
		if err := tx.Transactions().Create(ctx, fine); err != nil {
			return err
		}
		return tx.Assessments().UpdateStatus(ctx, a.ID, domain.AssessmentStatusResolved)
	})
	if err != nil {
		return nil, err
	}

	s.hub.Notify("damage_assessments", "transactions")
	return fine, nil
}

// Resolve closes a pending assessment without creating a fine.
func (s *assessmentService) Resolve(ctx context.Context, assessmentID int32) error {
	a, err := s.store.Assessments().GetByID(ctx, assessmentID)
	if err != nil {
		return err
	}
	if a.Status != domain.AssessmentStatusPending {
		return ErrAssessmentNotPending
	}
	if err := s.store.Assessments().UpdateStatus(ctx, a.ID, domain.AssessmentStatusResolved); err != nil {
		return err
	}
	s.hub.Notify("damage_assessments")
	return nil
}

func (s *assessmentService) ListAssessments(ctx context.Context, status string) ([]domain.DamageAssessment, error) {
	return s.store.Assessments().List(ctx, status)
}
