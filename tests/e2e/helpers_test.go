//go:build e2e

package e2e_test

import (
	"bytes"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"

	"github.com/folioview/backend/internal/adapter/memory"
	"github.com/folioview/backend/internal/auth"
	"github.com/folioview/backend/internal/config"
	"github.com/folioview/backend/internal/transport/rest"
)

const testJWTSecret = "e2e-test-secret-at-least-32-chars-long"

// testEnv is a fully wired HTTP server backed by in-memory preset storage.
type testEnv struct {
	server *httptest.Server
	jwt    *auth.JWTManager
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()

	log := slog.New(slog.NewTextHandler(io.Discard, nil))

	sessions := rest.NewSessionRegistry(log, memory.NewPresetStore(), config.SessionsConfig{
		IdleTTL:         time.Hour,
		CleanupInterval: time.Hour,
	})
	t.Cleanup(sessions.Stop)

	jwtManager := auth.NewJWTManager(testJWTSecret, "folioview", time.Hour)

	handler := rest.NewRouter(rest.RouterDeps{
		Log:       log,
		Sessions:  sessions,
		Health:    rest.NewHealthHandler(nil, "e2e"),
		Validator: jwtManager,
		CORS: config.CORSConfig{
			AllowedOrigins: "*",
			AllowedMethods: "GET,POST,PATCH,DELETE,OPTIONS",
			AllowedHeaders: "Authorization,Content-Type",
		},
	})

	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)

	return &testEnv{server: server, jwt: jwtManager}
}

// newUserToken issues a valid access token for a fresh user.
func (e *testEnv) newUserToken(t *testing.T) string {
	t.Helper()

	token, err := e.jwt.GenerateAccessToken(uuid.New())
	require.NoError(t, err)
	return token
}

// do sends an authenticated request and decodes the JSON response into out.
func (e *testEnv) do(t *testing.T, token, method, path string, body any, out any) int {
	t.Helper()

	var reqBody io.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		require.NoError(t, err)
		reqBody = bytes.NewReader(raw)
	}

	req, err := http.NewRequest(method, e.server.URL+path, reqBody)
	require.NoError(t, err)
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := e.server.Client().Do(req)
	require.NoError(t, err)
	defer resp.Body.Close()

	if out != nil {
		require.NoError(t, json.NewDecoder(resp.Body).Decode(out))
	}
	return resp.StatusCode
}
