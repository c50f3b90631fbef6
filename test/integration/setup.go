package integration

import (
	"bytes"
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	_ "github.com/lib/pq"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"

	handler "github.com/ballotbox/api/internal/adapters/handler/http"
	repo "github.com/ballotbox/api/internal/adapters/repository/postgres"
	"github.com/ballotbox/api/internal/core/ports"
	"github.com/ballotbox/api/internal/core/services"
)

var testJWTSecret = []byte("test-secret")

type TestApp struct {
	DB          *sql.DB
	Server      *httptest.Server
	Client      *http.Client
	SeedSvc     ports.SeedService
	DBContainer testcontainers.Container
}

func setupPostgresContainer(ctx context.Context) (testcontainers.Container, string, error) {
	pgContainer, err := postgres.Run(ctx, "postgres:15-alpine",
		postgres.WithDatabase("testdb"),
		postgres.WithUsername("user"),
		postgres.WithPassword("password"),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(5*time.Second),
		),
	)
	if err != nil {
		return nil, "", fmt.Errorf("failed to start postgres container: %w", err)
	}

	connStr, err := pgContainer.ConnectionString(ctx, "sslmode=disable")
	if err != nil {
		return nil, "", err
	}

	return pgContainer, connStr, nil
}

func setupTestApp(t *testing.T) *TestApp {
	t.Helper()

	ctx := context.Background()
	dbContainer, dbURL, err := setupPostgresContainer(ctx)
	require.NoError(t, err)

	db, err := sql.Open("postgres", dbURL)
	require.NoError(t, err)

	require.NoError(t, repo.ApplyMigrations(ctx, db))

	candidateRepo := repo.NewCandidateRepository(db)
	voterRepo := repo.NewVoterRepository(db)
	ledger := repo.NewVoteEventRepository(db)
	adminRepo := repo.NewAdminRepository(db)
	verifier := repo.NewCredentialVerifier(adminRepo)
	health := repo.NewHealthRepository(db)

	handlers := handler.Handlers{
		Candidate: handler.NewCandidateHandler(services.NewCandidateService(candidateRepo)),
		Vote:      handler.NewVoteHandler(services.NewVoteService(candidateRepo, voterRepo, ledger)),
		Results:   handler.NewResultsHandler(services.NewResultsService(candidateRepo, voterRepo, ledger)),
		Voter:     handler.NewVoterHandler(services.NewVoterService(voterRepo)),
		Admin:     handler.NewAdminHandler(services.NewAdminService(adminRepo, candidateRepo, voterRepo, ledger, verifier, testJWTSecret)),
		Health:    handler.NewHealthHandler(health),
	}

	server := httptest.NewServer(handler.NewHandler(handlers, testJWTSecret))

	return &TestApp{
		DB:          db,
		Server:      server,
		Client:      server.Client(),
		SeedSvc:     services.NewSeedService(adminRepo, candidateRepo, voterRepo, ledger),
		DBContainer: dbContainer,
	}
}

func (app *TestApp) Teardown(t *testing.T) {
	app.Server.Close()
	app.DB.Close()
	if err := app.DBContainer.Terminate(context.Background()); err != nil {
		t.Logf("failed to terminate container: %v", err)
	}
}

func createCandidate(t *testing.T, db *sql.DB, name, party string) int64 {
	t.Helper()

	var id int64
	err := db.QueryRow(
		"INSERT INTO candidates (name, party) VALUES ($1, $2) RETURNING id",
		name, party,
	).Scan(&id)
	require.NoError(t, err)
	return id
}

func createAdmin(t *testing.T, db *sql.DB, username, password string) {
	t.Helper()

	_, err := db.Exec(
		"INSERT INTO admin_accounts (username, password, email) VALUES ($1, $2, $3)",
		username, password, username+"@voting.com",
	)
	require.NoError(t, err)
}

// castVote submits a vote over HTTP and returns the raw response.
func (app *TestApp) castVote(t *testing.T, voterID string, candidateID int64) *http.Response {
	t.Helper()

	body, _ := json.Marshal(map[string]any{
		"voter_id":     voterID,
		"candidate_id": candidateID,
	})
	resp, err := app.Client.Post(app.Server.URL+"/api/vote", "application/json", bytes.NewReader(body))
	require.NoError(t, err)
	return resp
}

// adminLogin authenticates over HTTP and returns the session token.
func (app *TestApp) adminLogin(t *testing.T, username, password string) string {
	t.Helper()

	body, _ := json.Marshal(map[string]string{"username": username, "password": password})
	resp, err := app.Client.Post(app.Server.URL+"/api/admin/login", "application/json", bytes.NewReader(body))
	require.NoError(t, err)
	defer resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var loginResp struct {
		Token string `json:"token"`
	}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&loginResp))
	require.NotEmpty(t, loginResp.Token)
	return loginResp.Token
}

func (app *TestApp) candidateVotes(t *testing.T, id int64) int64 {
	t.Helper()

	var votes int64
	err := app.DB.QueryRow("SELECT votes FROM candidates WHERE id = $1", id).Scan(&votes)
	require.NoError(t, err)
	return votes
}
