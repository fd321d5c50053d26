package handlers

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	authMiddleware "github.com/coursehub/backend/libs/auth/middleware"
	"github.com/coursehub/backend/libs/auth/service"
	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/require"
)

const (
	testAdminEmail   = "admin@example.com"
	testLearnerEmail = "learner@example.com"
)

// testAuth issues tokens and builds the middlewares used by the router
type testAuth struct {
	t      *testing.T
	tokens *service.TokenGenerator
	policy *authMiddleware.AdminPolicy
}

func newTestAuth(t *testing.T) *testAuth {
	t.Helper()
	return &testAuth{
		t:      t,
		tokens: service.NewTokenGenerator("handler-test-secret", time.Hour),
		policy: authMiddleware.NewAdminPolicy([]string{testAdminEmail}),
	}
}

func (a *testAuth) token(email, name string) string {
	a.t.Helper()
	token, err := a.tokens.GenerateAccessToken(service.Identity{Email: email, Name: name})
	require.NoError(a.t, err)
	return token
}

func (a *testAuth) auth() func(http.Handler) http.Handler {
	return authMiddleware.AuthMiddleware(a.tokens)
}

func (a *testAuth) admin() func(http.Handler) http.Handler {
	return authMiddleware.AdminMiddleware(a.tokens, a.policy)
}

// doRequest serves a JSON request through the router
func doRequest(t *testing.T, r chi.Router, method, path, token string, body any) *httptest.ResponseRecorder {
	t.Helper()

	var payload *bytes.Reader
	switch b := body.(type) {
	case nil:
		payload = bytes.NewReader(nil)
	case string:
		payload = bytes.NewReader([]byte(b))
	default:
		raw, err := json.Marshal(b)
		require.NoError(t, err)
		payload = bytes.NewReader(raw)
	}

	req := httptest.NewRequest(method, path, payload)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)
	return rec
}

func decodeBody(t *testing.T, rec *httptest.ResponseRecorder, dst any) {
	t.Helper()
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), dst))
}
