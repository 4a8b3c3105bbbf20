//go:build e2e

package e2e_test

import (
	"bytes"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/slotswapper/backend/internal/adapter/postgres"
	eventrepo "github.com/slotswapper/backend/internal/adapter/postgres/event"
	swaprequestrepo "github.com/slotswapper/backend/internal/adapter/postgres/swaprequest"
	"github.com/slotswapper/backend/internal/adapter/postgres/testhelper"
	userrepo "github.com/slotswapper/backend/internal/adapter/postgres/user"
	authjwt "github.com/slotswapper/backend/internal/auth"
	"github.com/slotswapper/backend/internal/config"
	authsvc "github.com/slotswapper/backend/internal/service/auth"
	eventsvc "github.com/slotswapper/backend/internal/service/event"
	swapsvc "github.com/slotswapper/backend/internal/service/swap"
	"github.com/slotswapper/backend/internal/transport/middleware"
	"github.com/slotswapper/backend/internal/transport/rest"
)

// ---------------------------------------------------------------------------
// testServer wraps the full-stack HTTP server for E2E tests.
// ---------------------------------------------------------------------------

type testServer struct {
	URL    string
	Client *http.Client
	Pool   *pgxpool.Pool
}

// testLogWriter adapts testing.T to io.Writer for slog.
type testLogWriter struct{ t *testing.T }

func (w testLogWriter) Write(p []byte) (int, error) {
	w.t.Helper()
	w.t.Log(string(p))
	return len(p), nil
}

// setupTestServer bootstraps the full application stack backed by
// a real PostgreSQL container (shared via testhelper).
func setupTestServer(t *testing.T) *testServer {
	t.Helper()

	pool := testhelper.SetupTestDB(t)

	logger := slog.New(slog.NewTextHandler(testLogWriter{t}, nil))
	txManager := postgres.NewTxManager(pool)

	eventRepo := eventrepo.New(pool)
	swapRequestRepo := swaprequestrepo.New(pool)
	userRepo := userrepo.New(pool)

	jwtManager := authjwt.NewJWTManager(
		"test-secret-at-least-32-chars-long!!", "test-issuer", 15*time.Minute,
	)

	authService := authsvc.NewService(logger, userRepo, jwtManager, bcrypt.MinCost)
	eventService := eventsvc.NewService(logger, eventRepo, swapRequestRepo, txManager)
	swapService := swapsvc.NewService(logger, eventRepo, swapRequestRepo, txManager)

	mux := rest.NewRouter(
		rest.NewHealthHandler(pool, "test-version"),
		rest.NewAuthHandler(authService, logger),
		rest.NewEventHandler(eventService, logger),
		rest.NewSwapHandler(swapService, logger),
	)

	handler := middleware.Chain(
		middleware.Recovery(logger),
		middleware.RequestID,
		middleware.CORS(config.CORSConfig{
			AllowedOrigins:   "*",
			AllowedMethods:   "GET,POST,PUT,DELETE,OPTIONS",
			AllowedHeaders:   "Authorization,Content-Type",
			AllowCredentials: true,
			MaxAge:           86400,
		}),
		middleware.Auth(authService),
	)(mux)

	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	return &testServer{
		URL:    srv.URL,
		Client: srv.Client(),
		Pool:   pool,
	}
}

// ---------------------------------------------------------------------------
// Request helpers
// ---------------------------------------------------------------------------

// doJSON sends a JSON request and returns status + decoded body.
// A nil body sends no payload; a 204 response decodes to nil.
func (ts *testServer) doJSON(t *testing.T, method, path, token string, body any) (int, map[string]any) {
	t.Helper()

	var reader *bytes.Reader
	if body != nil {
		jsonBody, err := json.Marshal(body)
		require.NoError(t, err, "marshal request body")
		reader = bytes.NewReader(jsonBody)
	} else {
		reader = bytes.NewReader(nil)
	}

	req, err := http.NewRequest(method, ts.URL+path, reader)
	require.NoError(t, err, "create request")
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := ts.Client.Do(req)
	require.NoError(t, err, "do request")
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusNoContent {
		return resp.StatusCode, nil
	}

	// Some middleware rejections are plain text; callers only look at the
	// status code for those.
	var result map[string]any
	_ = json.NewDecoder(resp.Body).Decode(&result)
	return resp.StatusCode, result
}

// doJSONList is doJSON for endpoints that return a top-level array.
func (ts *testServer) doJSONList(t *testing.T, method, path, token string) (int, []any) {
	t.Helper()

	req, err := http.NewRequest(method, ts.URL+path, nil)
	require.NoError(t, err, "create request")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := ts.Client.Do(req)
	require.NoError(t, err, "do request")
	defer resp.Body.Close()

	var result []any
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&result), "decode response")
	return resp.StatusCode, result
}

// ---------------------------------------------------------------------------
// Scenario helpers
// ---------------------------------------------------------------------------

// signupUser registers a fresh user through the API and returns the access
// token plus the user's ID.
func signupUser(t *testing.T, ts *testServer, name string) (string, string) {
	t.Helper()

	status, result := ts.doJSON(t, http.MethodPost, "/api/auth/signup", "", map[string]any{
		"name":     name,
		"email":    fmt.Sprintf("%s-%d@example.com", name, time.Now().UnixNano()),
		"password": "correct horse battery staple",
	})
	require.Equal(t, http.StatusCreated, status, "signup: %v", result)

	token, ok := result["accessToken"].(string)
	require.True(t, ok, "expected accessToken in signup response")
	user, ok := result["user"].(map[string]any)
	require.True(t, ok, "expected user in signup response")
	id, ok := user["id"].(string)
	require.True(t, ok, "expected user id in signup response")

	return token, id
}

// createEvent creates an event through the API and returns its ID.
func createEvent(t *testing.T, ts *testServer, token, title, status string) string {
	t.Helper()

	start := time.Now().UTC().Add(24 * time.Hour).Truncate(time.Second)
	body := map[string]any{
		"title":     title,
		"startTime": start.Format(time.RFC3339),
		"endTime":   start.Add(time.Hour).Format(time.RFC3339),
	}
	if status != "" {
		body["status"] = status
	}

	code, result := ts.doJSON(t, http.MethodPost, "/api/events", token, body)
	require.Equal(t, http.StatusCreated, code, "create event: %v", result)

	id, ok := result["id"].(string)
	require.True(t, ok, "expected event id")
	return id
}

// getEvent fetches a single event through the API.
func getEvent(t *testing.T, ts *testServer, token, eventID string) map[string]any {
	t.Helper()

	code, result := ts.doJSON(t, http.MethodGet, "/api/events/"+eventID, token, nil)
	require.Equal(t, http.StatusOK, code, "get event: %v", result)
	return result
}

// createSwapRequest proposes a swap through the API and returns the request ID.
func createSwapRequest(t *testing.T, ts *testServer, token, mySlotID, theirSlotID string) string {
	t.Helper()

	code, result := ts.doJSON(t, http.MethodPost, "/api/swap-request", token, map[string]any{
		"mySlotId":    mySlotID,
		"theirSlotId": theirSlotID,
	})
	require.Equal(t, http.StatusCreated, code, "create swap request: %v", result)

	id, ok := result["id"].(string)
	require.True(t, ok, "expected request id")
	return id
}
