package ports

import (
	"context"

	"github.com/ballotbox/api/internal/core/domain"
)

type CandidateRepository interface {
	Create(ctx context.Context, candidate *domain.Candidate) error
	GetByID(ctx context.Context, id int64) (*domain.Candidate, error)
	// List returns all candidates ordered by votes descending, ties broken
	// by insertion order.
	List(ctx context.Context) ([]domain.Candidate, error)
	Count(ctx context.Context) (int64, error)
}

type CandidateService interface {
	List(ctx context.Context) ([]domain.Candidate, error)
}
