package services

import (
	"context"
	"testing"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ballotbox/api/internal/core/domain"
	"github.com/ballotbox/api/internal/core/ports"
)

var testSecret = []byte("test-secret")

func TestLogin_InvalidCredentials(t *testing.T) {
	verifier := &fakeVerifier{
		verifyFn: func(ctx context.Context, username, password string) (bool, error) {
			return false, nil
		},
	}
	svc := NewAdminService(nil, nil, nil, nil, verifier, testSecret)

	_, err := svc.Login(context.Background(), "admin", "wrong")
	assert.ErrorIs(t, err, domain.ErrInvalidCredentials)
}

func TestLogin_TokenClaims(t *testing.T) {
	verifier := &fakeVerifier{
		verifyFn: func(ctx context.Context, username, password string) (bool, error) {
			return username == "admin" && password == "admin123", nil
		},
	}
	adminRepo := &fakeAdminRepo{
		getByUsernameFn: func(ctx context.Context, username string) (*domain.AdminAccount, error) {
			return &domain.AdminAccount{Username: username, Password: "admin123", Email: "admin@voting.com"}, nil
		},
	}
	svc := NewAdminService(adminRepo, nil, nil, nil, verifier, testSecret)

	result, err := svc.Login(context.Background(), "admin", "admin123")
	require.NoError(t, err)
	assert.Equal(t, "admin", result.Admin.Username)

	token, err := jwt.Parse(result.Token, func(t *jwt.Token) (any, error) {
		return testSecret, nil
	})
	require.NoError(t, err)
	require.True(t, token.Valid)

	claims, ok := token.Claims.(jwt.MapClaims)
	require.True(t, ok)
	assert.Equal(t, "admin", claims["sub"])
	assert.NotEmpty(t, claims["iat"])
	assert.NotEmpty(t, claims["exp"])
	assert.NotEmpty(t, claims["jti"])
}

func TestAddCandidate_Validation(t *testing.T) {
	svc := NewAdminService(nil, nil, nil, nil, nil, testSecret)

	cases := []ports.AddCandidateInput{
		{Name: "", Party: "Party"},
		{Name: "Name", Party: ""},
		{Name: "  ", Party: "Party"},
	}
	for _, input := range cases {
		_, err := svc.AddCandidate(context.Background(), input)
		assert.ErrorIs(t, err, domain.ErrInvalidRequest)
	}
}

func TestAddCandidate_Defaults(t *testing.T) {
	var created *domain.Candidate
	candidateRepo := &fakeCandidateRepo{
		createFn: func(ctx context.Context, c *domain.Candidate) error {
			c.ID = 9
			created = c
			return nil
		},
	}
	svc := NewAdminService(nil, candidateRepo, nil, nil, nil, testSecret)

	candidate, err := svc.AddCandidate(context.Background(), ports.AddCandidateInput{
		Name:  "Jane Doe",
		Party: "Indep",
	})
	require.NoError(t, err)

	require.NotNil(t, created)
	assert.Equal(t, int64(9), candidate.ID)
	assert.Equal(t, "#FF6B6B", candidate.Color)
	assert.Equal(t, "👤", candidate.Avatar)
	assert.Zero(t, candidate.Votes)
}

func TestResetElection_ReportsNoSeededVotes(t *testing.T) {
	resetCalled := false
	ledger := &fakeLedger{
		resetFn: func(ctx context.Context) error {
			resetCalled = true
			return nil
		},
	}
	svc := NewAdminService(nil, nil, nil, ledger, nil, testSecret)

	result, err := svc.ResetElection(context.Background())
	require.NoError(t, err)
	assert.True(t, resetCalled)
	assert.Zero(t, result.VotesAdded)
}
