package ports

import (
	"context"

	"github.com/ballotbox/api/internal/core/domain"
)

type VoterRepository interface {
	GetByID(ctx context.Context, id string) (*domain.Voter, error)
	// Register inserts the voter if the identifier is unknown. Registering
	// an existing identifier is a no-op, so concurrent first-time voters
	// cannot trip over each other.
	Register(ctx context.Context, voter *domain.Voter) error
	List(ctx context.Context) ([]domain.Voter, error)
	Counts(ctx context.Context) (total int64, voted int64, err error)
}

type VoterService interface {
	Status(ctx context.Context, voterID string) (*domain.VoterStatus, error)
}
