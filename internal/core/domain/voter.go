package domain

import "time"

type Voter struct {
	ID       string     `json:"id"`
	Name     string     `json:"name"`
	Email    string     `json:"email"`
	HasVoted bool       `json:"has_voted"`
	VoteTime *time.Time `json:"vote_time"`
}

// VoterStatus is what the voter lookup endpoint returns. IsNew marks a
// synthesized placeholder for an identifier the system has never seen.
type VoterStatus struct {
	Voter
	IsNew bool `json:"is_new,omitempty"`
}
