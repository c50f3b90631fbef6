package ports

import (
	"context"

	"github.com/ballotbox/api/internal/core/domain"
)

type AdminRepository interface {
	GetByUsername(ctx context.Context, username string) (*domain.AdminAccount, error)
	Create(ctx context.Context, account *domain.AdminAccount) error
}

// CredentialVerifier hides the credential scheme from callers so a hashed
// comparison can replace the stored-value one without touching the service.
type CredentialVerifier interface {
	Verify(ctx context.Context, username, password string) (bool, error)
}

type AddCandidateInput struct {
	Name     string
	Party    string
	Bio      string
	Color    string
	Avatar   string
	ImageURL string
}

type AdminService interface {
	Login(ctx context.Context, username, password string) (*domain.LoginResult, error)
	AddCandidate(ctx context.Context, input AddCandidateInput) (*domain.Candidate, error)
	ListVoters(ctx context.Context) ([]domain.Voter, error)
	ResetElection(ctx context.Context) (*domain.ResetResult, error)
}

type SeedService interface {
	Seed(ctx context.Context) error
}
