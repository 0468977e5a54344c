package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestRentalStatus_CanTransitionTo(t *testing.T) {
	cases := []struct {
		from, to RentalStatus
		ok       bool
	}{
		{RentalStatusPending, RentalStatusApproved, true},
		{RentalStatusPending, RentalStatusRejected, true},
		{RentalStatusPending, RentalStatusOngoing, false},
		{RentalStatusApproved, RentalStatusOngoing, true},
		{RentalStatusApproved, RentalStatusCompleted, false},
		{RentalStatusOngoing, RentalStatusCompleted, true},
		{RentalStatusOngoing, RentalStatusLost, true},
		{RentalStatusOngoing, RentalStatusOverdue, true},
		{RentalStatusOverdue, RentalStatusCompleted, true},
		{RentalStatusOverdue, RentalStatusLost, true},
		{RentalStatusOverdue, RentalStatusOngoing, false},
		{RentalStatusCompleted, RentalStatusOngoing, false},
		{RentalStatusRejected, RentalStatusApproved, false},
		{RentalStatusLost, RentalStatusCompleted, false},
	}
	for _, c := range cases {
		assert.Equal(t, c.ok, c.from.CanTransitionTo(c.to), "%s -> %s", c.from, c.to)
	}
}

func TestRentalStatus_IsTerminal(t *testing.T) {
	assert.True(t, RentalStatusCompleted.IsTerminal())
	assert.True(t, RentalStatusRejected.IsTerminal())
	assert.True(t, RentalStatusLost.IsTerminal())
	assert.False(t, RentalStatusPending.IsTerminal())
	assert.False(t, RentalStatusOngoing.IsTerminal())
	assert.False(t, RentalStatusOverdue.IsTerminal())
}

func TestDaysLate(t *testing.T) {
	due := time.Date(2026, 3, 10, 17, 0, 0, 0, time.UTC)

	assert.Equal(t, int32(0), DaysLate(due, due))
	assert.Equal(t, int32(0), DaysLate(due, due.Add(-time.Hour)))
	// Any lateness counts as a full day.
	assert.Equal(t, int32(1), DaysLate(due, due.Add(time.Minute)))
	assert.Equal(t, int32(1), DaysLate(due, due.Add(24*time.Hour)))
	assert.Equal(t, int32(2), DaysLate(due, due.Add(25*time.Hour)))
	assert.Equal(t, int32(3), DaysLate(due, due.Add(71*time.Hour)))
}

func TestRental_IsOverdue(t *testing.T) {
	now := time.Date(2026, 3, 12, 9, 0, 0, 0, time.UTC)

	r := &Rental{Status: RentalStatusOngoing, DueDate: now.Add(-time.Hour)}
	assert.True(t, r.IsOverdue(now))

	r.DueDate = now.Add(time.Hour)
	assert.False(t, r.IsOverdue(now))

	// Closed rentals are never overdue, even past due.
	r = &Rental{Status: RentalStatusCompleted, DueDate: now.Add(-48 * time.Hour)}
	assert.False(t, r.IsOverdue(now))
}
