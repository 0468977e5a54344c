package jobs

import (
	"context"
	"fmt"
	"time"

	"gadgetlend-backend/internal/domain"
	"gadgetlend-backend/internal/logger"
	"gadgetlend-backend/internal/repository"
)

// DetectOverdues flips every Ongoing rental past its due date to Overdue and
// charges the scanner's daily overdue rate, at least one day's worth. Each
// rental is processed in its own transaction so one failure does not stall
// the rest of the batch. The existence check on the ledger keeps reruns and
// the manual return path from stacking a second fine on the same rental.
func (jr *JobRunner) DetectOverdues() {
	jr.runWithRecovery("DetectOverdues", func() {
		if err := jr.RunDetectOverdues(context.Background()); err != nil {
			logger.WithJob("DetectOverdues").Error("Overdue scan failed", "error", err)
		}
	})
}

// RunDetectOverdues performs one scan and reports whether it completed.
// The HTTP trigger calls it directly so the caller sees failures.
func (jr *JobRunner) RunDetectOverdues(ctx context.Context) error {
	log := logger.WithJob("DetectOverdues")

	query := `
		SELECT id FROM rentals
		WHERE rental_status = 'Ongoing'
		  AND due_date < NOW()
		ORDER BY id
	`
	rows, err := jr.db.QueryContext(ctx, query)
	if err != nil {
		return fmt.Errorf("querying overdue candidates: %w", err)
	}
	defer rows.Close()

	var ids []int32
	for rows.Next() {
		var id int32
		if err := rows.Scan(&id); err != nil {
			return fmt.Errorf("scanning rental id: %w", err)
		}
		ids = append(ids, id)
	}
	if err := rows.Err(); err != nil {
		return fmt.Errorf("iterating overdue candidates: %w", err)
	}

	now := time.Now()
	rate := jr.config.Fines.ScanOverdueRateCents
	count := 0
	failed := 0
	for _, id := range ids {
		if err := jr.markOverdue(ctx, id, now, rate); err != nil {
			log.Error("Failed to mark rental overdue", "rental_id", id, "error", err)
			failed++
			continue
		}
		count++
	}

	if count > 0 {
		jr.hub.Notify("rentals", "transactions")
	}
	log.Info("Marked rentals as overdue", "count", count, "candidates", len(ids))
	if failed > 0 {
		return fmt.Errorf("%d of %d overdue rentals failed", failed, len(ids))
	}
	return nil
}

func (jr *JobRunner) markOverdue(ctx context.Context, rentalID int32, now time.Time, rateCents int32) error {
	return jr.store.ExecTx(ctx, func(tx repository.Store) error {
		rental, err := tx.Rentals().GetByID(ctx, rentalID)
		if err != nil {
			return err
		}
		// Someone may have closed the rental between the scan and this point.
		if !rental.Status.CanTransitionTo(domain.RentalStatusOverdue) {
			return nil
		}

		rental.Status = domain.RentalStatusOverdue
		if err := tx.Rentals().UpdateStatus(ctx, rental); err != nil {
			return err
		}

		exists, err := tx.Transactions().ExistsForRental(ctx, rental.ID, domain.TransactionTypeOverdueFine)
		if err != nil {
			return err
		}
		if exists {
			return nil
		}

		daysLate := domain.DaysLate(rental.DueDate, now)
		if daysLate < 1 {
			daysLate = 1
		}
		fine := &domain.Transaction{
			StudentID:   rental.StudentID,
			RentalID:    &rental.ID,
			Type:        domain.TransactionTypeOverdueFine,
			AmountCents: daysLate * rateCents,
			Status:      domain.TransactionStatusUnpaid,
		}
		return tx.Transactions().Create(ctx, fine)
	})
}

// SendOverdueNotices emails every student holding an Overdue rental, with the
// fine already on their ledger for that rental.
func (jr *JobRunner) SendOverdueNotices() {
	jr.runWithRecovery("SendOverdueNotices", func() {
		ctx := context.Background()
		log := logger.WithJob("SendOverdueNotices")

		query := `
			SELECT r.id, r.due_date,
			       s.email, s.name,
			       COALESCE(t.amount_cents, 0)
			FROM rentals r
			JOIN students s ON r.student_id = s.id
			LEFT JOIN transactions t
			  ON t.rental_id = r.id AND t.transaction_type = 'Overdue Fine'
			WHERE r.rental_status = 'Overdue'
		`
		rows, err := jr.db.QueryContext(ctx, query)
		if err != nil {
			log.Error("Failed to query overdue rentals", "error", err)
			return
		}
		defer rows.Close()

		count := 0
		for rows.Next() {
			var (
				rentalID  int32
				dueDate   time.Time
				email     string
				name      string
				fineCents int32
			)
			if err := rows.Scan(&rentalID, &dueDate, &email, &name, &fineCents); err != nil {
				log.Error("Failed to scan overdue rental", "error", err)
				continue
			}

			err := jr.email.SendOverdueNotice(ctx, email, name, rentalID, dueDate.Format("2006-01-02"), fineCents)
			if err != nil {
				log.Error("Failed to send overdue notice",
					"rental_id", rentalID,
					"email", email,
					"error", err)
				continue
			}
			count++
			log.Debug("Sent overdue notice", "rental_id", rentalID, "email", email)
		}
		if err := rows.Err(); err != nil {
			log.Error("Error iterating overdue rentals", "error", err)
			return
		}

		log.Info("Sent overdue notices", "count", count)
	})
}
