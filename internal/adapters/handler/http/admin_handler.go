package http

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/ballotbox/api/internal/core/domain"
	"github.com/ballotbox/api/internal/core/ports"
)

type AdminHandler struct {
	service ports.AdminService
}

func NewAdminHandler(service ports.AdminService) *AdminHandler {
	return &AdminHandler{service: service}
}

type loginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

type loginResponse struct {
	Success bool                `json:"success"`
	Message string              `json:"message"`
	Token   string              `json:"token"`
	Admin   domain.AdminAccount `json:"admin"`
}

func (h *AdminHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req loginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	result, err := h.service.Login(r.Context(), req.Username, req.Password)
	if err != nil {
		if errors.Is(err, domain.ErrInvalidCredentials) {
			writeError(w, http.StatusUnauthorized, err.Error())
			return
		}
		writeError(w, http.StatusInternalServerError, domain.ErrInternal.Error())
		return
	}

	writeJSON(w, http.StatusOK, loginResponse{
		Success: true,
		Message: "Login successful",
		Token:   result.Token,
		Admin:   result.Admin,
	})
}

type addCandidateRequest struct {
	Name     string `json:"name"`
	Party    string `json:"party"`
	Bio      string `json:"bio"`
	Color    string `json:"color"`
	Avatar   string `json:"avatar"`
	ImageURL string `json:"image_url"`
}

type addCandidateResponse struct {
	Success   bool             `json:"success"`
	Message   string           `json:"message"`
	Candidate domain.Candidate `json:"candidate"`
}

func (h *AdminHandler) AddCandidate(w http.ResponseWriter, r *http.Request) {
	var req addCandidateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	candidate, err := h.service.AddCandidate(r.Context(), ports.AddCandidateInput{
		Name:     req.Name,
		Party:    req.Party,
		Bio:      req.Bio,
		Color:    req.Color,
		Avatar:   req.Avatar,
		ImageURL: req.ImageURL,
	})
	if err != nil {
		if errors.Is(err, domain.ErrInvalidRequest) {
			writeError(w, http.StatusBadRequest, "name and party are required")
			return
		}
		writeError(w, http.StatusInternalServerError, domain.ErrInternal.Error())
		return
	}

	writeJSON(w, http.StatusCreated, addCandidateResponse{
		Success:   true,
		Message:   "Candidate added successfully",
		Candidate: *candidate,
	})
}

func (h *AdminHandler) ListVoters(w http.ResponseWriter, r *http.Request) {
	voters, err := h.service.ListVoters(r.Context())
	if err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}
	if voters == nil {
		voters = []domain.Voter{}
	}
	writeJSON(w, http.StatusOK, voters)
}

type resetResponse struct {
	Success    bool   `json:"success"`
	Message    string `json:"message"`
	VotesAdded int    `json:"votes_added"`
}

func (h *AdminHandler) ResetElection(w http.ResponseWriter, r *http.Request) {
	result, err := h.service.ResetElection(r.Context())
	if err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}

	writeJSON(w, http.StatusOK, resetResponse{
		Success:    true,
		Message:    "Election reset",
		VotesAdded: result.VotesAdded,
	})
}
