package postgres

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"gadgetlend-backend/internal/domain"
	"gadgetlend-backend/internal/repository"
)

type adminRepository struct {
	db DBTX
}

func NewAdminRepository(db DBTX) repository.AdminRepository {
	return &adminRepository{db: db}
}

func (r *adminRepository) GetByEmail(ctx context.Context, email string) (*domain.Admin, error) {
	a := &domain.Admin{}
	query := `SELECT id, email, name, password_hash, created_on FROM admins WHERE email = $1`
	err := r.db.QueryRowContext(ctx, query, email).Scan(&a.ID, &a.Email, &a.Name, &a.PasswordHash, &a.CreatedOn)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, repository.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return a, nil
}

func (r *adminRepository) Create(ctx context.Context, a *domain.Admin) error {
	query := `INSERT INTO admins (email, name, password_hash, created_on) VALUES ($1, $2, $3, $4) RETURNING id`
	return r.db.QueryRowContext(ctx, query, a.Email, a.Name, a.PasswordHash, time.Now()).Scan(&a.ID)
}
