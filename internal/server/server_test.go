package server_test

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/sheikh-saqib/statement-ledger-service/internal/ledger"
	"github.com/sheikh-saqib/statement-ledger-service/internal/server"
	"github.com/sheikh-saqib/statement-ledger-service/internal/storage/memory"
	"github.com/sheikh-saqib/statement-ledger-service/internal/users"
	"go.uber.org/zap"
)

const testSecret = "test-secret"

func setupTestServer() http.Handler {
	userStore := memory.NewMemoryUserStore()
	statementStore := memory.NewMemoryStatementStore()
	logger := zap.NewNop()

	ledgerService := ledger.NewLedger(statementStore, userStore, nil, logger)
	userService := users.NewService(userStore, []byte(testSecret), time.Hour)
	return server.New(ledgerService, userService, []byte(testSecret), logger)
}

// helper to perform requests with an optional bearer token
func performRequest(h http.Handler, method, path string, body any, token string) *httptest.ResponseRecorder {
	var reader io.Reader
	if body != nil {
		data, _ := json.Marshal(body)
		reader = bytes.NewReader(data)
	}
	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	return rec
}

func registerAndLogin(t *testing.T, h http.Handler, email string) string {
	t.Helper()
	rec := performRequest(h, http.MethodPost, "/api/v1/users", map[string]string{
		"name": "user_name", "email": email, "password": "123456",
	}, "")
	if rec.Code != http.StatusCreated {
		t.Fatalf("register returned %d: %s", rec.Code, rec.Body)
	}

	rec = performRequest(h, http.MethodPost, "/api/v1/sessions", map[string]string{
		"email": email, "password": "123456",
	}, "")
	if rec.Code != http.StatusOK {
		t.Fatalf("login returned %d: %s", rec.Code, rec.Body)
	}
	var session struct {
		Token string `json:"token"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &session); err != nil || session.Token == "" {
		t.Fatalf("login response missing token: %s", rec.Body)
	}
	return session.Token
}

func TestFullFlow(t *testing.T) {
	h := setupTestServer()
	token := registerAndLogin(t, h, "user@mail.com")

	// profile is visible with the session token
	rec := performRequest(h, http.MethodGet, "/api/v1/profile", nil, token)
	if rec.Code != http.StatusOK {
		t.Fatalf("profile returned %d: %s", rec.Code, rec.Body)
	}

	// deposit 1000
	rec = performRequest(h, http.MethodPost, "/api/v1/statements/deposit", map[string]any{
		"amount": 1000, "description": "initial",
	}, token)
	if rec.Code != http.StatusCreated {
		t.Fatalf("deposit returned %d: %s", rec.Code, rec.Body)
	}
	var deposit struct {
		ID     string `json:"id"`
		UserID string `json:"user_id"`
		Type   string `json:"type"`
	}
	json.Unmarshal(rec.Body.Bytes(), &deposit)
	if deposit.ID == "" || deposit.Type != "deposit" {
		t.Fatalf("unexpected deposit response: %s", rec.Body)
	}

	// withdraw 600, then overdraft attempt
	rec = performRequest(h, http.MethodPost, "/api/v1/statements/withdraw", map[string]any{
		"amount": 600, "description": "rent",
	}, token)
	if rec.Code != http.StatusCreated {
		t.Fatalf("withdraw returned %d: %s", rec.Code, rec.Body)
	}
	rec = performRequest(h, http.MethodPost, "/api/v1/statements/withdraw", map[string]any{
		"amount": 600, "description": "too much",
	}, token)
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("overdraft returned %d, want 400: %s", rec.Code, rec.Body)
	}

	// balance reflects both applied operations
	rec = performRequest(h, http.MethodGet, "/api/v1/statements/balance", nil, token)
	if rec.Code != http.StatusOK {
		t.Fatalf("balance returned %d: %s", rec.Code, rec.Body)
	}
	var balance struct {
		Statement []json.RawMessage `json:"statement"`
		Balance   string            `json:"balance"` // decimal marshals as a quoted string
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &balance); err != nil {
		t.Fatalf("decode balance: %v", err)
	}
	if balance.Balance != "400" {
		t.Fatalf("balance = %s, want 400", balance.Balance)
	}
	if len(balance.Statement) != 2 {
		t.Fatalf("history has %d records, want 2", len(balance.Statement))
	}

	// statement lookup by id
	rec = performRequest(h, http.MethodGet, "/api/v1/statements/"+deposit.ID, nil, token)
	if rec.Code != http.StatusOK {
		t.Fatalf("statement lookup returned %d: %s", rec.Code, rec.Body)
	}
}

func TestStatementOfAnotherUserIsNotFound(t *testing.T) {
	h := setupTestServer()
	tokenA := registerAndLogin(t, h, "a@mail.com")
	tokenB := registerAndLogin(t, h, "b@mail.com")

	rec := performRequest(h, http.MethodPost, "/api/v1/statements/deposit", map[string]any{
		"amount": 100, "description": "mine",
	}, tokenA)
	if rec.Code != http.StatusCreated {
		t.Fatalf("deposit returned %d: %s", rec.Code, rec.Body)
	}
	var deposit struct {
		ID string `json:"id"`
	}
	json.Unmarshal(rec.Body.Bytes(), &deposit)

	rec = performRequest(h, http.MethodGet, "/api/v1/statements/"+deposit.ID, nil, tokenB)
	if rec.Code != http.StatusNotFound {
		t.Fatalf("cross-user lookup returned %d, want 404: %s", rec.Code, rec.Body)
	}
}

func TestLedgerRoutesRequireToken(t *testing.T) {
	h := setupTestServer()

	for _, path := range []string{
		"/api/v1/profile",
		"/api/v1/statements/balance",
	} {
		rec := performRequest(h, http.MethodGet, path, nil, "")
		if rec.Code != http.StatusUnauthorized {
			t.Fatalf("%s without token returned %d, want 401", path, rec.Code)
		}
	}
	rec := performRequest(h, http.MethodGet, "/api/v1/profile", nil, "not-a-jwt")
	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("garbage token returned %d, want 401", rec.Code)
	}
}

func TestSessionRejectsBadCredentials(t *testing.T) {
	h := setupTestServer()
	registerAndLogin(t, h, "user@mail.com")

	rec := performRequest(h, http.MethodPost, "/api/v1/sessions", map[string]string{
		"email": "user@mail.com", "password": "wrong",
	}, "")
	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("bad password returned %d, want 401", rec.Code)
	}

	rec = performRequest(h, http.MethodPost, "/api/v1/sessions", map[string]string{
		"email": "inexistent@user.com", "password": "password",
	}, "")
	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("unknown email returned %d, want 401", rec.Code)
	}
}

func TestDuplicateEmailRejected(t *testing.T) {
	h := setupTestServer()
	registerAndLogin(t, h, "same@mail.com")

	rec := performRequest(h, http.MethodPost, "/api/v1/users", map[string]string{
		"name": "user_name", "email": "same@mail.com", "password": "123456",
	}, "")
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("duplicate email returned %d, want 400: %s", rec.Code, rec.Body)
	}
}

func TestHealth(t *testing.T) {
	h := setupTestServer()

	rec := performRequest(h, http.MethodGet, "/health", nil, "")
	if rec.Code != http.StatusOK {
		t.Fatalf("health returned %d", rec.Code)
	}
}
