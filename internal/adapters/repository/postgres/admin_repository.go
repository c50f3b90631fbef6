package postgres

import (
	"context"
	"crypto/subtle"
	"database/sql"
	"errors"
	"fmt"

	"github.com/ballotbox/api/internal/core/domain"
	"github.com/ballotbox/api/internal/core/ports"
)

type adminRepository struct {
	db *sql.DB
}

func NewAdminRepository(db *sql.DB) ports.AdminRepository {
	return &adminRepository{db: db}
}

func (r *adminRepository) GetByUsername(ctx context.Context, username string) (*domain.AdminAccount, error) {
	query := `SELECT username, password, email FROM admin_accounts WHERE username = $1`
	account := &domain.AdminAccount{}
	err := r.db.QueryRowContext(ctx, query, username).Scan(&account.Username, &account.Password, &account.Email)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get admin account: %w", err)
	}
	return account, nil
}

func (r *adminRepository) Create(ctx context.Context, account *domain.AdminAccount) error {
	query := `
		INSERT INTO admin_accounts (username, password, email)
		VALUES ($1, $2, $3)
		ON CONFLICT (username) DO NOTHING
	`
	if _, err := r.db.ExecContext(ctx, query, account.Username, account.Password, account.Email); err != nil {
		return fmt.Errorf("failed to insert admin account: %w", err)
	}
	return nil
}

// CredentialVerifier compares against the stored password value. The scheme
// is intentionally behind ports.CredentialVerifier so a hashed comparison can
// replace it without changing callers.
type CredentialVerifier struct {
	repo ports.AdminRepository
}

func NewCredentialVerifier(repo ports.AdminRepository) ports.CredentialVerifier {
	return &CredentialVerifier{repo: repo}
}

func (v *CredentialVerifier) Verify(ctx context.Context, username, password string) (bool, error) {
	account, err := v.repo.GetByUsername(ctx, username)
	if err != nil {
		return false, err
	}
	if account == nil {
		return false, nil
	}
	return subtle.ConstantTimeCompare([]byte(account.Password), []byte(password)) == 1, nil
}
