package ports

import (
	"context"
	"time"

	"github.com/ballotbox/api/internal/core/domain"
)

// VoteEventRepository is the write and aggregate side of the vote ledger.
type VoteEventRepository interface {
	// Record applies one vote as a single unit of work: it registers the
	// voter if unknown, flips has_voted from false to true, increments the
	// candidate tally and appends the vote event. It fails with
	// domain.ErrAlreadyVoted if the voter already voted (the check-then-set
	// is serialized per voter by the storage layer) and with
	// domain.ErrCandidateNotFound if the candidate does not exist; in both
	// cases no change is applied.
	Record(ctx context.Context, voter *domain.Voter, candidateID int64, castAt time.Time) (*domain.Candidate, error)
	// Reset clears all vote events, zeroes every candidate tally and marks
	// every voter as not having voted, atomically.
	Reset(ctx context.Context) error
	Count(ctx context.Context) (int64, error)
	// Timeline returns per-day vote counts for the most recent days
	// (up to limit distinct dates), newest first.
	Timeline(ctx context.Context, limit int) ([]domain.TimelineBucket, error)
	// MostActiveHour returns the hour of day ("00".."23") with the most
	// recorded votes, or ok=false when no votes exist.
	MostActiveHour(ctx context.Context) (hour string, ok bool, err error)
}

type CastVoteInput struct {
	VoterID     string
	CandidateID int64
}

type VoteService interface {
	CastVote(ctx context.Context, input CastVoteInput) (*domain.CastVoteResult, error)
}
