package postgres

import (
	"context"
	"database/sql"
	"fmt"

	"gadgetlend-backend/internal/repository"

	_ "github.com/lib/pq"
)

// DBTX is satisfied by both *sql.DB and *sql.Tx so every repository can run
// standalone or inside a transaction started by Store.ExecTx.
type DBTX interface {
	ExecContext(ctx context.Context, query string, args ...interface{}) (sql.Result, error)
	QueryContext(ctx context.Context, query string, args ...interface{}) (*sql.Rows, error)
	QueryRowContext(ctx context.Context, query string, args ...interface{}) *sql.Row
}

type Store struct {
	db *sql.DB

	students     repository.StudentRepository
	gadgets      repository.GadgetRepository
	rentals      repository.RentalRepository
	extensions   repository.ExtensionRepository
	assessments  repository.AssessmentRepository
	transactions repository.TransactionRepository
	admins       repository.AdminRepository
}

func NewStore(db *sql.DB) *Store {
	return newStoreWith(db, db)
}

func newStoreWith(db *sql.DB, q DBTX) *Store {
	return &Store{
		db:           db,
		students:     NewStudentRepository(q),
		gadgets:      NewGadgetRepository(q),
		rentals:      NewRentalRepository(q),
		extensions:   NewExtensionRepository(q),
		assessments:  NewAssessmentRepository(q),
		transactions: NewTransactionRepository(q),
		admins:       NewAdminRepository(q),
	}
}

func (s *Store) Students() repository.StudentRepository         { return s.students }
func (s *Store) Gadgets() repository.GadgetRepository           { return s.gadgets }
func (s *Store) Rentals() repository.RentalRepository           { return s.rentals }
func (s *Store) Extensions() repository.ExtensionRepository     { return s.extensions }
func (s *Store) Assessments() repository.AssessmentRepository   { return s.assessments }
func (s *Store) Transactions() repository.TransactionRepository { return s.transactions }
func (s *Store) Admins() repository.AdminRepository             { return s.admins }

// ExecTx runs fn against a Store bound to a single database transaction.
// Every multi-record lifecycle transition goes through here so a failure
// partway through can no longer leave rentals, gadgets and fees disagreeing.
func (s *Store) ExecTx(ctx context.Context, fn func(repository.Store) error) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin tx: %w", err)
	}

	if err := fn(newStoreWith(s.db, tx)); err != nil {
		if rbErr := tx.Rollback(); rbErr != nil {
			return fmt.Errorf("tx error: %v, rollback error: %w", err, rbErr)
		}
		return err
	}
	return tx.Commit()
}
