package http

import (
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/ballotbox/api/internal/core/domain"
	"github.com/ballotbox/api/internal/core/ports"
)

type VoteHandler struct {
	service ports.VoteService
}

func NewVoteHandler(service ports.VoteService) *VoteHandler {
	return &VoteHandler{service: service}
}

type castVoteRequest struct {
	VoterID     string `json:"voter_id"`
	CandidateID int64  `json:"candidate_id"`
}

type castVoteResponse struct {
	Success   bool             `json:"success"`
	Message   string           `json:"message"`
	Timestamp time.Time        `json:"timestamp"`
	Candidate domain.Candidate `json:"candidate"`
}

func (h *VoteHandler) CastVote(w http.ResponseWriter, r *http.Request) {
	var req castVoteRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	result, err := h.service.CastVote(r.Context(), ports.CastVoteInput{
		VoterID:     req.VoterID,
		CandidateID: req.CandidateID,
	})
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrInvalidRequest):
			writeError(w, http.StatusBadRequest, err.Error())
		case errors.Is(err, domain.ErrAlreadyVoted):
			writeError(w, http.StatusForbidden, err.Error())
		case errors.Is(err, domain.ErrCandidateNotFound):
			writeError(w, http.StatusNotFound, err.Error())
		default:
			writeError(w, http.StatusInternalServerError, domain.ErrInternal.Error())
		}
		return
	}

	writeJSON(w, http.StatusOK, castVoteResponse{
		Success:   true,
		Message:   "Vote recorded successfully!",
		Timestamp: result.Timestamp,
		Candidate: result.Candidate,
	})
}
