package domain

import "time"

type ResultsSummary struct {
	TotalVotes       int64     `json:"total_votes"`
	TotalVoters      int64     `json:"total_voters"`
	VotedCount       int64     `json:"voted_count"`
	VotingPercentage float64   `json:"voting_percentage"`
	LeadingCandidate string    `json:"leading_candidate"`
	Timestamp        time.Time `json:"timestamp"`
}

// TimelineBucket is one calendar day of recorded votes.
type TimelineBucket struct {
	Date  string `json:"date"`
	Votes int64  `json:"votes"`
}

type ResultsSnapshot struct {
	Candidates []CandidateResult `json:"candidates"`
	Summary    ResultsSummary    `json:"summary"`
	Timeline   []TimelineBucket  `json:"timeline"`
}

type Statistics struct {
	Candidates     int64   `json:"candidates"`
	Voters         int64   `json:"voters"`
	TotalVotes     int64   `json:"total_votes"`
	VotersVoted    int64   `json:"voters_voted"`
	VotingRate     float64 `json:"voting_rate"`
	MostActiveHour string  `json:"most_active_hour"`
}

type SystemInfo struct {
	Status    string    `json:"status"`
	Timestamp time.Time `json:"timestamp"`
}

type StatsSnapshot struct {
	Statistics Statistics `json:"statistics"`
	System     SystemInfo `json:"system"`
}

type HealthReport struct {
	Status    string           `json:"status"`
	Database  string           `json:"database"`
	Tables    map[string]int64 `json:"tables"`
	Timestamp time.Time        `json:"timestamp"`
}
