package domain

type Candidate struct {
	ID       int64  `json:"id"`
	Name     string `json:"name"`
	Party    string `json:"party"`
	Bio      string `json:"bio,omitempty"`
	Color    string `json:"color,omitempty"`
	Avatar   string `json:"avatar,omitempty"`
	ImageURL string `json:"image_url,omitempty"`
	Votes    int64  `json:"votes"`
}

// CandidateResult is a candidate row enriched with its share of the total
// vote, as served by the results endpoint.
type CandidateResult struct {
	Candidate
	Percentage float64 `json:"percentage"`
}
