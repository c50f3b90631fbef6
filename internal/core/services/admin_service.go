package services

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"

	"github.com/ballotbox/api/internal/core/domain"
	"github.com/ballotbox/api/internal/core/ports"
)

const sessionTTL = 12 * time.Hour

type adminService struct {
	adminRepo     ports.AdminRepository
	candidateRepo ports.CandidateRepository
	voterRepo     ports.VoterRepository
	ledger        ports.VoteEventRepository
	verifier      ports.CredentialVerifier
	jwtSecret     []byte
}

func NewAdminService(adminRepo ports.AdminRepository, candidateRepo ports.CandidateRepository, voterRepo ports.VoterRepository, ledger ports.VoteEventRepository, verifier ports.CredentialVerifier, jwtSecret []byte) ports.AdminService {
	return &adminService{
		adminRepo:     adminRepo,
		candidateRepo: candidateRepo,
		voterRepo:     voterRepo,
		ledger:        ledger,
		verifier:      verifier,
		jwtSecret:     jwtSecret,
	}
}

func (s *adminService) Login(ctx context.Context, username, password string) (*domain.LoginResult, error) {
	ok, err := s.verifier.Verify(ctx, username, password)
	if err != nil {
		return nil, fmt.Errorf("failed to verify credentials: %w", err)
	}
	if !ok {
		return nil, domain.ErrInvalidCredentials
	}

	admin, err := s.adminRepo.GetByUsername(ctx, username)
	if err != nil {
		return nil, fmt.Errorf("failed to get admin account: %w", err)
	}
	if admin == nil {
		return nil, domain.ErrInvalidCredentials
	}

	token, err := s.generateSessionToken(admin.Username)
	if err != nil {
		return nil, fmt.Errorf("failed to generate session token: %w", err)
	}

	return &domain.LoginResult{Token: token, Admin: *admin}, nil
}

func (s *adminService) AddCandidate(ctx context.Context, input ports.AddCandidateInput) (*domain.Candidate, error) {
	name := strings.TrimSpace(input.Name)
	party := strings.TrimSpace(input.Party)
	if name == "" || party == "" {
		return nil, domain.ErrInvalidRequest
	}

	candidate := &domain.Candidate{
		Name:     name,
		Party:    party,
		Bio:      input.Bio,
		Color:    input.Color,
		Avatar:   input.Avatar,
		ImageURL: input.ImageURL,
	}
	if candidate.Color == "" {
		candidate.Color = "#FF6B6B"
	}
	if candidate.Avatar == "" {
		candidate.Avatar = "👤"
	}

	if err := s.candidateRepo.Create(ctx, candidate); err != nil {
		return nil, fmt.Errorf("failed to create candidate: %w", err)
	}
	return candidate, nil
}

func (s *adminService) ListVoters(ctx context.Context) ([]domain.Voter, error) {
	voters, err := s.voterRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list voters: %w", err)
	}
	return voters, nil
}

// ResetElection clears the ledger and zeroes every tally. Repopulating demo
// data is a separate concern handled by the seed service.
func (s *adminService) ResetElection(ctx context.Context) (*domain.ResetResult, error) {
	if err := s.ledger.Reset(ctx); err != nil {
		return nil, fmt.Errorf("failed to reset election: %w", err)
	}
	return &domain.ResetResult{VotesAdded: 0}, nil
}

func (s *adminService) generateSessionToken(username string) (string, error) {
	now := time.Now()
	claims := jwt.MapClaims{
		"sub": username,
		"iat": now.Unix(),
		"exp": now.Add(sessionTTL).Unix(),
		"jti": uuid.NewString(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(s.jwtSecret)
}
