package integration

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAdminLogin(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test")
	}

	app := setupTestApp(t)
	defer app.Teardown(t)

	createAdmin(t, app.DB, "admin", "admin123")

	// Wrong password is rejected.
	body, _ := json.Marshal(map[string]string{"username": "admin", "password": "nope"})
	resp, err := app.Client.Post(app.Server.URL+"/api/admin/login", "application/json", bytes.NewReader(body))
	require.NoError(t, err)
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
	resp.Body.Close()

	// Unknown account is rejected the same way.
	body, _ = json.Marshal(map[string]string{"username": "ghost", "password": "admin123"})
	resp, err = app.Client.Post(app.Server.URL+"/api/admin/login", "application/json", bytes.NewReader(body))
	require.NoError(t, err)
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
	resp.Body.Close()

	// Valid credentials return a token and never echo the password.
	body, _ = json.Marshal(map[string]string{"username": "admin", "password": "admin123"})
	resp, err = app.Client.Post(app.Server.URL+"/api/admin/login", "application/json", bytes.NewReader(body))
	require.NoError(t, err)
	defer resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var loginResp struct {
		Success bool   `json:"success"`
		Token   string `json:"token"`
		Admin   map[string]any
	}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&loginResp))
	assert.True(t, loginResp.Success)
	assert.NotEmpty(t, loginResp.Token)
	assert.NotContains(t, loginResp.Admin, "password")
}

func TestAdminRoutesRequireToken(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test")
	}

	app := setupTestApp(t)
	defer app.Teardown(t)

	protected := []struct {
		method, path string
	}{
		{http.MethodPost, "/api/admin/candidates"},
		{http.MethodGet, "/api/admin/voters"},
		{http.MethodPost, "/api/admin/reset"},
	}

	for _, route := range protected {
		req, err := http.NewRequest(route.method, app.Server.URL+route.path, nil)
		require.NoError(t, err)
		resp, err := app.Client.Do(req)
		require.NoError(t, err)
		assert.Equal(t, http.StatusUnauthorized, resp.StatusCode, route.path)
		resp.Body.Close()

		// A garbage token fails too.
		req, err = http.NewRequest(route.method, app.Server.URL+route.path, nil)
		require.NoError(t, err)
		req.Header.Set("Authorization", "Bearer not-a-token")
		resp, err = app.Client.Do(req)
		require.NoError(t, err)
		assert.Equal(t, http.StatusUnauthorized, resp.StatusCode, route.path)
		resp.Body.Close()
	}
}

func TestAdminAddCandidate(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test")
	}

	app := setupTestApp(t)
	defer app.Teardown(t)

	createAdmin(t, app.DB, "admin", "admin123")
	token := app.adminLogin(t, "admin", "admin123")

	post := func(payload map[string]string) *http.Response {
		body, _ := json.Marshal(payload)
		req, err := http.NewRequest(http.MethodPost, app.Server.URL+"/api/admin/candidates", bytes.NewReader(body))
		require.NoError(t, err)
		req.Header.Set("Content-Type", "application/json")
		req.Header.Set("Authorization", "Bearer "+token)
		resp, err := app.Client.Do(req)
		require.NoError(t, err)
		return resp
	}

	// Missing party is rejected.
	resp := post(map[string]string{"name": "Jane Doe"})
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	resp.Body.Close()

	resp = post(map[string]string{"name": "Jane Doe", "party": "Independent"})
	defer resp.Body.Close()
	require.Equal(t, http.StatusCreated, resp.StatusCode)

	var created struct {
		Success   bool `json:"success"`
		Candidate struct {
			ID     int64  `json:"id"`
			Name   string `json:"name"`
			Color  string `json:"color"`
			Avatar string `json:"avatar"`
			Votes  int64  `json:"votes"`
		} `json:"candidate"`
	}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&created))
	assert.True(t, created.Success)
	assert.NotZero(t, created.Candidate.ID)
	assert.Equal(t, "Jane Doe", created.Candidate.Name)
	assert.Equal(t, "#FF6B6B", created.Candidate.Color)
	assert.Equal(t, "👤", created.Candidate.Avatar)
	assert.Zero(t, created.Candidate.Votes)

	// Visible on the public listing.
	listResp, err := app.Client.Get(app.Server.URL + "/api/candidates")
	require.NoError(t, err)
	defer listResp.Body.Close()
	var candidates []struct {
		Name string `json:"name"`
	}
	require.NoError(t, json.NewDecoder(listResp.Body).Decode(&candidates))
	require.Len(t, candidates, 1)
	assert.Equal(t, "Jane Doe", candidates[0].Name)
}

func TestAdminListVoters(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test")
	}

	app := setupTestApp(t)
	defer app.Teardown(t)

	createAdmin(t, app.DB, "admin", "admin123")
	cand := createCandidate(t, app.DB, "Candidate A", "Party A")

	for _, id := range []string{"V003", "V001", "V002"} {
		resp := app.castVote(t, id, cand)
		require.Equal(t, http.StatusOK, resp.StatusCode)
		resp.Body.Close()
	}

	token := app.adminLogin(t, "admin", "admin123")

	req, err := http.NewRequest(http.MethodGet, app.Server.URL+"/api/admin/voters", nil)
	require.NoError(t, err)
	req.Header.Set("Authorization", "Bearer "+token)
	resp, err := app.Client.Do(req)
	require.NoError(t, err)
	defer resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var voters []struct {
		ID       string `json:"id"`
		HasVoted bool   `json:"has_voted"`
	}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&voters))
	require.Len(t, voters, 3)
	assert.Equal(t, "V001", voters[0].ID)
	assert.Equal(t, "V002", voters[1].ID)
	assert.Equal(t, "V003", voters[2].ID)
	for _, v := range voters {
		assert.True(t, v.HasVoted)
	}
}

func TestAdminResetElection(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test")
	}

	app := setupTestApp(t)
	defer app.Teardown(t)

	createAdmin(t, app.DB, "admin", "admin123")
	require.NoError(t, app.SeedSvc.Seed(context.Background()))

	token := app.adminLogin(t, "admin", "admin123")

	req, err := http.NewRequest(http.MethodPost, app.Server.URL+"/api/admin/reset", nil)
	require.NoError(t, err)
	req.Header.Set("Authorization", "Bearer "+token)
	resp, err := app.Client.Do(req)
	require.NoError(t, err)
	defer resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var reset struct {
		Success    bool `json:"success"`
		VotesAdded int  `json:"votes_added"`
	}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&reset))
	assert.True(t, reset.Success)
	assert.Zero(t, reset.VotesAdded)

	// Tallies are zeroed, events gone, voters eligible again, but the
	// candidate roster and voter rolls survive.
	var sumVotes, eventCount, votedCount, voterCount, candidateCount int64
	require.NoError(t, app.DB.QueryRow("SELECT COALESCE(SUM(votes), 0) FROM candidates").Scan(&sumVotes))
	require.NoError(t, app.DB.QueryRow("SELECT COUNT(*) FROM vote_events").Scan(&eventCount))
	require.NoError(t, app.DB.QueryRow("SELECT COUNT(*) FILTER (WHERE has_voted) FROM voters").Scan(&votedCount))
	require.NoError(t, app.DB.QueryRow("SELECT COUNT(*) FROM voters").Scan(&voterCount))
	require.NoError(t, app.DB.QueryRow("SELECT COUNT(*) FROM candidates").Scan(&candidateCount))
	assert.Zero(t, sumVotes)
	assert.Zero(t, eventCount)
	assert.Zero(t, votedCount)
	assert.Equal(t, int64(100), voterCount)
	assert.Equal(t, int64(8), candidateCount)

	// A previously-voted voter can vote again after the reset.
	var someVoter string
	require.NoError(t, app.DB.QueryRow("SELECT id FROM voters ORDER BY id LIMIT 1").Scan(&someVoter))
	var anyCandidate int64
	require.NoError(t, app.DB.QueryRow("SELECT id FROM candidates ORDER BY id LIMIT 1").Scan(&anyCandidate))

	voteResp := app.castVote(t, someVoter, anyCandidate)
	assert.Equal(t, http.StatusOK, voteResp.StatusCode)
	voteResp.Body.Close()
}
