package domain

import (
	"math"
	"time"
)

type RentalStatus string

const (
	RentalStatusPending   RentalStatus = "Pending"
	RentalStatusApproved  RentalStatus = "Approved"
	RentalStatusRejected  RentalStatus = "Rejected"
	RentalStatusOngoing   RentalStatus = "Ongoing"
	RentalStatusOverdue   RentalStatus = "Overdue"
	RentalStatusCompleted RentalStatus = "Completed"
	RentalStatusLost      RentalStatus = "Lost"
)

// rentalTransitions is the authoritative edge set of the rental state
// machine. Overdue is persisted only by the overdue scanner; read paths
// should prefer IsOverdue.
var rentalTransitions = map[RentalStatus][]RentalStatus{
	RentalStatusPending:  {RentalStatusApproved, RentalStatusRejected},
	RentalStatusApproved: {RentalStatusOngoing},
	RentalStatusOngoing:  {RentalStatusCompleted, RentalStatusLost, RentalStatusOverdue},
	RentalStatusOverdue:  {RentalStatusCompleted, RentalStatusLost},
}

func (s RentalStatus) CanTransitionTo(next RentalStatus) bool {
	for _, allowed := range rentalTransitions[s] {
		if allowed == next {
			return true
		}
	}
	return false
}

// IsTerminal reports whether no further transitions are possible.
func (s RentalStatus) IsTerminal() bool {
	return len(rentalTransitions[s]) == 0
}

type Rental struct {
	ID           int32        `json:"id"`
	StudentID    int32        `json:"student_id"`
	Student      *Student     `json:"student,omitempty"`
	RentalDate   time.Time    `json:"rental_date"`
	DueDate      time.Time    `json:"due_date"`
	PickupDate   *time.Time   `json:"pickup_date,omitempty"`
	ReturnDate   *time.Time   `json:"return_date,omitempty"`
	Status       RentalStatus `json:"rental_status"`
	Overdue      bool         `json:"is_overdue"`
	Items        []RentalItem `json:"items,omitempty"`
	CreatedOn    time.Time    `json:"created_on"`
	UpdatedOn    time.Time    `json:"updated_on"`
}

type RentalItem struct {
	ID       int32   `json:"id"`
	RentalID int32   `json:"rental_id"`
	GadgetID int32   `json:"gadget_id"`
	Quantity int32   `json:"quantity"`
	Gadget   *Gadget `json:"gadget,omitempty"`
}

// IsOverdue derives lateness at read time so list views never depend on
// scanner timing. Read paths copy it into Overdue before serializing.
func (r *Rental) IsOverdue(now time.Time) bool {
	if r.Status != RentalStatusOngoing && r.Status != RentalStatusOverdue {
		return false
	}
	return r.DueDate.Before(now)
}

// DaysLate returns the number of whole days between due and returned,
// rounded up. Zero or negative lateness yields 0.
func DaysLate(due, returned time.Time) int32 {
	diff := returned.Sub(due)
	if diff <= 0 {
		return 0
	}
	return int32(math.Ceil(diff.Hours() / 24))
}

type RentalExtensionStatus string

const (
	ExtensionStatusPending  RentalExtensionStatus = "Pending"
	ExtensionStatusApproved RentalExtensionStatus = "Approved"
	ExtensionStatusRejected RentalExtensionStatus = "Rejected"
)

type RentalExtension struct {
	ID          int32                 `json:"id"`
	RentalID    int32                 `json:"rental_id"`
	NewDueDate  time.Time             `json:"new_due_date"`
	Status      RentalExtensionStatus `json:"status"`
	RequestDate time.Time             `json:"request_date"`
	Rental      *Rental               `json:"rental,omitempty"`
}
