package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

type Handlers struct {
	Candidate *CandidateHandler
	Vote      *VoteHandler
	Results   *ResultsHandler
	Voter     *VoterHandler
	Admin     *AdminHandler
	Health    *HealthHandler
}

func NewHandler(h Handlers, jwtSecret []byte) http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)

	r.Route("/api", func(r chi.Router) {
		r.Get("/", func(w http.ResponseWriter, r *http.Request) {
			writeJSON(w, http.StatusOK, map[string]string{
				"message": "Online Voting System Backend",
				"status":  "running",
			})
		})

		r.Get("/candidates", h.Candidate.ListCandidates)
		r.Post("/vote", h.Vote.CastVote)
		r.Get("/results", h.Results.GetResults)
		r.Get("/stats", h.Results.GetStats)
		r.Get("/voter/{id}", h.Voter.GetVoterStatus)
		r.Get("/health", h.Health.HealthCheck)

		r.Route("/admin", func(r chi.Router) {
			r.Post("/login", h.Admin.Login)

			r.Group(func(r chi.Router) {
				r.Use(RequireAdmin(jwtSecret))
				r.Post("/candidates", h.Admin.AddCandidate)
				r.Get("/voters", h.Admin.ListVoters)
				r.Post("/reset", h.Admin.ResetElection)
			})
		})
	})

	return r
}
