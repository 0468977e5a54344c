package domain

import (
	"strings"
	"time"
)

type AssessmentStatus string

const (
	AssessmentStatusPending  AssessmentStatus = "Pending"
	AssessmentStatusResolved AssessmentStatus = "Resolved"
)

type DamageAssessment struct {
	ID           int32            `json:"id"`
	RentalID     int32            `json:"rental_id"`
	InitialNotes string           `json:"initial_notes"`
	FinalNotes   string           `json:"final_notes"`
	FineCents    *int32           `json:"fine_cents,omitempty"`
	DateFlagged  time.Time        `json:"date_flagged"`
	Status       AssessmentStatus `json:"status"`
	Rental       *Rental          `json:"rental,omitempty"`
}

// FineType picks the ledger entry type for a resolved assessment: loss
// wording in the final notes makes it a Lost Fine, anything else a Damage
// Fine.
func (a *DamageAssessment) FineType() TransactionType {
	if strings.Contains(strings.ToLower(a.FinalNotes), "lost") {
		return TransactionTypeLostFine
	}
	return TransactionTypeDamageFine
}
