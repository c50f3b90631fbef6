package domain

type AdminAccount struct {
	Username string `json:"username"`
	Password string `json:"-"`
	Email    string `json:"email,omitempty"`
}

type LoginResult struct {
	Token string       `json:"token"`
	Admin AdminAccount `json:"admin"`
}

type ResetResult struct {
	VotesAdded int `json:"votes_added"`
}
