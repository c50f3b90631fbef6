package domain

import "time"

// VoteEvent is the append-only record of one accepted vote. Events are never
// updated; the whole set is cleared only by an administrative reset.
type VoteEvent struct {
	ID          int64     `json:"id"`
	VoterID     string    `json:"voter_id"`
	CandidateID int64     `json:"candidate_id"`
	CastAt      time.Time `json:"cast_at"`
}

// CastVoteResult is returned to the caller after a vote is accepted.
type CastVoteResult struct {
	Candidate Candidate `json:"candidate"`
	Timestamp time.Time `json:"timestamp"`
}
