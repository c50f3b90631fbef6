package services

import (
	"context"
	"fmt"

	"github.com/ballotbox/api/internal/core/domain"
	"github.com/ballotbox/api/internal/core/ports"
)

type candidateService struct {
	repo ports.CandidateRepository
}

func NewCandidateService(repo ports.CandidateRepository) ports.CandidateService {
	return &candidateService{repo: repo}
}

func (s *candidateService) List(ctx context.Context) ([]domain.Candidate, error) {
	candidates, err := s.repo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list candidates: %w", err)
	}
	return candidates, nil
}
