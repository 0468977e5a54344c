package service

import (
	"context"

	"gadgetlend-backend/internal/domain"
	"gadgetlend-backend/internal/notify"
	"gadgetlend-backend/internal/repository"
)

type transactionService struct {
	store repository.Store
	hub   *notify.Hub
}

func NewTransactionService(store repository.Store, hub *notify.Hub) TransactionService {
	return &transactionService{store: store, hub: hub}
}

// MarkPaid settles an unpaid ledger entry. Calling it on an already paid
// entry is a no-op: the entry stays Paid and nothing else happens.
func (s *transactionService) MarkPaid(ctx context.Context, transactionID int32) (*domain.Transaction, error) {
	tx, err := s.store.Transactions().GetByID(ctx, transactionID)
	if err != nil {
		return nil, err
	}
	if tx.Status == domain.TransactionStatusPaid {
		return tx, nil
	}
	if err := s.store.Transactions().MarkPaid(ctx, tx.ID); err != nil {
		return nil, err
	}
	tx.Status = domain.TransactionStatusPaid
	s.hub.Notify("transactions")
	return tx, nil
}

func (s *transactionService) ListTransactions(ctx context.Context, status, txType string) ([]domain.Transaction, error) {
	return s.store.Transactions().List(ctx, status, txType)
}
