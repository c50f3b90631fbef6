package services

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ballotbox/api/internal/core/domain"
)

func TestSeed_Counts(t *testing.T) {
	var admins, candidates, registered, recorded int
	votesPerCandidate := map[int64]int{}

	adminRepo := &fakeAdminRepo{
		createFn: func(ctx context.Context, a *domain.AdminAccount) error {
			admins++
			return nil
		},
	}
	candidateRepo := &fakeCandidateRepo{
		createFn: func(ctx context.Context, c *domain.Candidate) error {
			candidates++
			c.ID = int64(candidates)
			return nil
		},
	}
	voterRepo := &fakeVoterRepo{
		registerFn: func(ctx context.Context, v *domain.Voter) error {
			registered++
			return nil
		},
	}
	ledger := &fakeLedger{
		recordFn: func(ctx context.Context, voter *domain.Voter, candidateID int64, castAt time.Time) (*domain.Candidate, error) {
			recorded++
			votesPerCandidate[candidateID]++
			return &domain.Candidate{ID: candidateID}, nil
		},
	}

	svc := NewSeedService(adminRepo, candidateRepo, voterRepo, ledger)
	require.NoError(t, svc.Seed(context.Background()))

	assert.Equal(t, 3, admins)
	assert.Equal(t, 8, candidates)
	assert.Equal(t, seedVotedCount, recorded)
	assert.Equal(t, seedVoterCount-seedVotedCount, registered)

	// The skewed ballot distribution must account for every recorded vote.
	var total int
	for _, n := range votesPerCandidate {
		total += n
	}
	assert.Equal(t, seedVotedCount, total)
	assert.Equal(t, 15, votesPerCandidate[1])
	assert.Equal(t, 15, votesPerCandidate[2])
	assert.Equal(t, 10, votesPerCandidate[3])
	assert.Equal(t, 1, votesPerCandidate[8])
}
