package services

import (
	"context"
	"fmt"
	"math"
	"time"

	"github.com/ballotbox/api/internal/core/domain"
	"github.com/ballotbox/api/internal/core/ports"
)

const timelineDays = 7

type resultsService struct {
	candidateRepo ports.CandidateRepository
	voterRepo     ports.VoterRepository
	ledger        ports.VoteEventRepository
	now           func() time.Time
}

func NewResultsService(candidateRepo ports.CandidateRepository, voterRepo ports.VoterRepository, ledger ports.VoteEventRepository) ports.ResultsService {
	return &resultsService{
		candidateRepo: candidateRepo,
		voterRepo:     voterRepo,
		ledger:        ledger,
		now:           time.Now,
	}
}

func (s *resultsService) Results(ctx context.Context) (*domain.ResultsSnapshot, error) {
	candidates, err := s.candidateRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list candidates: %w", err)
	}

	var totalVotes int64
	for _, c := range candidates {
		totalVotes += c.Votes
	}

	results := make([]domain.CandidateResult, 0, len(candidates))
	for _, c := range candidates {
		pct := 0.0
		if totalVotes > 0 {
			pct = round2(float64(c.Votes) / float64(totalVotes) * 100)
		}
		results = append(results, domain.CandidateResult{Candidate: c, Percentage: pct})
	}

	totalVoters, votedCount, err := s.voterRepo.Counts(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to count voters: %w", err)
	}

	votingPct := 0.0
	if totalVoters > 0 {
		votingPct = round2(float64(votedCount) / float64(totalVoters) * 100)
	}

	leading := "None"
	if len(results) > 0 {
		leading = results[0].Name
	}

	timeline, err := s.ledger.Timeline(ctx, timelineDays)
	if err != nil {
		return nil, fmt.Errorf("failed to build vote timeline: %w", err)
	}

	return &domain.ResultsSnapshot{
		Candidates: results,
		Summary: domain.ResultsSummary{
			TotalVotes:       totalVotes,
			TotalVoters:      totalVoters,
			VotedCount:       votedCount,
			VotingPercentage: votingPct,
			LeadingCandidate: leading,
			Timestamp:        s.now().UTC(),
		},
		Timeline: timeline,
	}, nil
}

func (s *resultsService) Stats(ctx context.Context) (*domain.StatsSnapshot, error) {
	candidateCount, err := s.candidateRepo.Count(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to count candidates: %w", err)
	}

	voterCount, votedCount, err := s.voterRepo.Counts(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to count voters: %w", err)
	}

	voteCount, err := s.ledger.Count(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to count vote events: %w", err)
	}

	votingRate := 0.0
	if voterCount > 0 {
		votingRate = round2(float64(votedCount) / float64(voterCount) * 100)
	}

	hour, ok, err := s.ledger.MostActiveHour(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to find most active hour: %w", err)
	}
	if !ok {
		hour = "N/A"
	}

	return &domain.StatsSnapshot{
		Statistics: domain.Statistics{
			Candidates:     candidateCount,
			Voters:         voterCount,
			TotalVotes:     voteCount,
			VotersVoted:    votedCount,
			VotingRate:     votingRate,
			MostActiveHour: hour,
		},
		System: domain.SystemInfo{
			Status:    "running",
			Timestamp: s.now().UTC(),
		},
	}, nil
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
