package services

import (
	"context"
	"fmt"

	"github.com/ballotbox/api/internal/core/domain"
	"github.com/ballotbox/api/internal/core/ports"
)

type voterService struct {
	repo ports.VoterRepository
}

func NewVoterService(repo ports.VoterRepository) ports.VoterService {
	return &voterService{repo: repo}
}

func (s *voterService) Status(ctx context.Context, voterID string) (*domain.VoterStatus, error) {
	voter, err := s.repo.GetByID(ctx, voterID)
	if err != nil {
		return nil, fmt.Errorf("failed to get voter: %w", err)
	}
	if voter == nil {
		// Unknown identifiers get the same placeholder shape the recorder
		// would register them with.
		return &domain.VoterStatus{
			Voter: domain.Voter{
				ID:    voterID,
				Name:  fmt.Sprintf("Voter %s", voterID),
				Email: fmt.Sprintf("%s@email.com", voterID),
			},
			IsNew: true,
		}, nil
	}
	return &domain.VoterStatus{Voter: *voter}, nil
}
