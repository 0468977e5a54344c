package domain

import "time"

type TransactionType string

const (
	TransactionTypeRentalPayment TransactionType = "Rental Payment"
	TransactionTypeExtensionFee  TransactionType = "Extension Fee"
	TransactionTypeDamageFine    TransactionType = "Damage Fine"
	TransactionTypeLostFine      TransactionType = "Lost Fine"
	TransactionTypeOverdueFine   TransactionType = "Overdue Fine"
)

type TransactionStatus string

const (
	TransactionStatusUnpaid TransactionStatus = "Unpaid"
	TransactionStatusPaid   TransactionStatus = "Paid"
)

// Transaction is a fee ledger entry. Type, amount and rental reference are
// immutable after creation; only Status moves, Unpaid to Paid, one way.
type Transaction struct {
	ID              int32             `json:"id"`
	StudentID       int32             `json:"student_id"`
	RentalID        *int32            `json:"rental_id,omitempty"`
	Type            TransactionType   `json:"transaction_type"`
	AmountCents     int32             `json:"amount_cents"`
	Status          TransactionStatus `json:"status"`
	TransactionDate time.Time         `json:"transaction_date"`
	Student         *Student          `json:"student,omitempty"`
}
