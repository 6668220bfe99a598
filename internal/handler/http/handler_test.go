package http

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/avreyes/lingap/internal/config"
	"github.com/avreyes/lingap/internal/logger"
	"github.com/avreyes/lingap/internal/service"
	"github.com/avreyes/lingap/internal/store"
	"github.com/avreyes/lingap/internal/utils"
	"github.com/avreyes/lingap/models"
)

// testAPI bundles the wired router with the backing in-memory store so
// tests can seed data directly.
type testAPI struct {
	router *chi.Mux
	mem    *store.MemoryStore
}

func newTestAPI(t *testing.T) *testAPI {
	t.Helper()

	cfg := &config.StructuredConfig{
		App: config.App{
			TokenSignKey:       "test-sign-key",
			TokenIssuer:        "lingap",
			TokenDuration:      24 * time.Hour,
			RememberMeDuration: 720 * time.Hour,
		},
	}

	mem := store.NewMemoryStore()
	storages := &store.Storages{Users: mem, Cases: mem}
	services := service.NewServices(storages, cfg, logger.Nop())
	handler := NewHandler(services, cfg.App, logger.Nop())

	return &testAPI{router: handler.Init(), mem: mem}
}

// seedUser creates an account with a bcrypt-hashed password directly in
// the store.
func (a *testAPI) seedUser(t *testing.T, username, password string, role models.Role) models.User {
	t.Helper()

	hash, err := utils.HashPassword(password)
	if err != nil {
		t.Fatalf("hashing password: %v", err)
	}
	user, err := a.mem.CreateUser(context.Background(), models.User{
		Username:     username,
		PasswordHash: hash,
		FullName:     "Admin User",
		Role:         role,
	})
	if err != nil {
		t.Fatalf("seeding user: %v", err)
	}
	return user
}

// login performs the login request and returns the issued token string.
func (a *testAPI) login(t *testing.T, username, password string) string {
	t.Helper()

	rec := a.request(t, http.MethodPost, "/api/auth/login", "",
		models.LoginRequest{Username: username, Password: password})
	if rec.Code != http.StatusOK {
		t.Fatalf("login failed with status %d: %s", rec.Code, rec.Body.String())
	}

	var resp models.LoginResponse
	decodeBody(t, rec, &resp)
	if resp.Token == "" {
		t.Fatal("expected a token in the login response")
	}
	return resp.Token
}

// request performs one request against the router, attaching the bearer
// token and JSON-encoding the body when given.
func (a *testAPI) request(t *testing.T, method, target, token string, body any) *httptest.ResponseRecorder {
	t.Helper()

	var reader *bytes.Reader
	if body != nil {
		encoded, err := json.Marshal(body)
		if err != nil {
			t.Fatalf("encoding request body: %v", err)
		}
		reader = bytes.NewReader(encoded)
	} else {
		reader = bytes.NewReader(nil)
	}

	req := httptest.NewRequest(method, target, reader)
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	rec := httptest.NewRecorder()
	a.router.ServeHTTP(rec, req)
	return rec
}

func decodeBody(t *testing.T, rec *httptest.ResponseRecorder, dst any) {
	t.Helper()
	if err := json.NewDecoder(rec.Body).Decode(dst); err != nil {
		t.Fatalf("decoding response body: %v", err)
	}
}
