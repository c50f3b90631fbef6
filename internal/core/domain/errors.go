package domain

import "errors"

var (
	ErrInvalidRequest     = errors.New("voter id and candidate id are required")
	ErrAlreadyVoted       = errors.New("this voter has already voted")
	ErrCandidateNotFound  = errors.New("candidate not found")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrInternal           = errors.New("internal server error")
)
