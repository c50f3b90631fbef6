package services

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/ballotbox/api/internal/core/domain"
	"github.com/ballotbox/api/internal/core/ports"
)

type voteService struct {
	candidateRepo ports.CandidateRepository
	voterRepo     ports.VoterRepository
	ledger        ports.VoteEventRepository
	now           func() time.Time
}

func NewVoteService(candidateRepo ports.CandidateRepository, voterRepo ports.VoterRepository, ledger ports.VoteEventRepository) ports.VoteService {
	return &voteService{
		candidateRepo: candidateRepo,
		voterRepo:     voterRepo,
		ledger:        ledger,
		now:           time.Now,
	}
}

func (s *voteService) CastVote(ctx context.Context, input ports.CastVoteInput) (*domain.CastVoteResult, error) {
	voterID := strings.TrimSpace(input.VoterID)
	if voterID == "" || input.CandidateID <= 0 {
		return nil, domain.ErrInvalidRequest
	}

	voter, err := s.voterRepo.GetByID(ctx, voterID)
	if err != nil {
		return nil, fmt.Errorf("failed to look up voter: %w", err)
	}
	if voter != nil && voter.HasVoted {
		return nil, domain.ErrAlreadyVoted
	}
	if voter == nil {
		// Previously-unseen identifiers are registered lazily with
		// placeholder contact details. The insert itself happens inside
		// the ledger transaction so a rejected vote leaves no trace.
		voter = &domain.Voter{
			ID:    voterID,
			Name:  fmt.Sprintf("Voter %s", voterID),
			Email: fmt.Sprintf("%s@email.com", voterID),
		}
	}

	candidate, err := s.candidateRepo.GetByID(ctx, input.CandidateID)
	if err != nil {
		return nil, fmt.Errorf("failed to look up candidate: %w", err)
	}
	if candidate == nil {
		return nil, domain.ErrCandidateNotFound
	}

	castAt := s.now().UTC()

	// The ledger re-checks both preconditions inside its transaction, so a
	// concurrent vote for the same voter cannot slip past the read above.
	updated, err := s.ledger.Record(ctx, voter, candidate.ID, castAt)
	if err != nil {
		return nil, err
	}

	return &domain.CastVoteResult{
		Candidate: *updated,
		Timestamp: castAt,
	}, nil
}
