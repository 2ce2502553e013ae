//go:build integration

package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"os"
	"strings"
	"testing"
	"time"

	"github.com/joho/godotenv"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	tcpostgres "github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	"golang.org/x/crypto/bcrypt"

	"github.com/hongminglow/accounts-be/internal/accounts"
	"github.com/hongminglow/accounts-be/internal/auth"
	"github.com/hongminglow/accounts-be/internal/storage/postgres"
)

// TestAccountsIntegration exercises the user and business routes against a
// throwaway Postgres.
func TestAccountsIntegration(t *testing.T) {
	loadDotEnv()
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Minute)
	defer cancel()

	container, err := tcpostgres.Run(ctx,
		"postgres:17-alpine",
		tcpostgres.WithDatabase("accounts_test"),
		tcpostgres.WithUsername("accounts"),
		tcpostgres.WithPassword("accounts"),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(30*time.Second),
		),
	)
	require.NoError(t, err)
	t.Cleanup(func() { _ = container.Terminate(context.Background()) })

	dbURL, err := container.ConnectionString(ctx, "sslmode=disable")
	require.NoError(t, err)

	store, err := postgres.Open(ctx, dbURL)
	require.NoError(t, err)
	defer store.Close()

	hasher, err := auth.NewPasswordHasher(bcrypt.MinCost)
	require.NoError(t, err)
	tokens, err := auth.NewTokenManager(envOr("JWT_SECRET", "integration-secret"), envOr("JWT_ISSUER", "accounts-integration"), time.Hour)
	require.NoError(t, err)
	svc := accounts.NewService(store, store, hasher, tokens, slog.New(slog.NewTextHandler(io.Discard, nil)))

	mux := http.NewServeMux()
	NewUsersHandler(svc).Register(mux)
	NewBusinessesHandler(svc).Register(mux)
	ts := httptest.NewServer(mux)
	defer ts.Close()

	suffix := time.Now().UnixNano()
	username := fmt.Sprintf("apitest_%d", suffix)
	email := fmt.Sprintf("%s@example.com", username)
	password := fmt.Sprintf("Pass%d", suffix)

	status, created := post(t, ts.URL+"/api/users/register", map[string]any{
		"email":    email,
		"name":     "Api",
		"age":      30,
		"password": password,
		"username": username,
	})
	require.Equal(t, http.StatusCreated, status)
	assert.Equal(t, email, created["email"])

	status, _ = post(t, ts.URL+"/api/users/register", map[string]any{
		"email":    strings.ToUpper(email),
		"name":     "Dup",
		"age":      30,
		"password": password,
	})
	assert.Equal(t, http.StatusConflict, status)

	status, login := post(t, ts.URL+"/api/users/login", map[string]any{"email": email, "password": password})
	require.Equal(t, http.StatusOK, status)
	assert.NotEmpty(t, login["token"])

	status, updated := send(t, http.MethodPut, fmt.Sprintf("%s/api/users/%v", ts.URL, created["id"]), map[string]any{"surname": "Tester", "age": 31})
	require.Equal(t, http.StatusOK, status)
	updatedUser, ok := updated["updatedUser"].(map[string]any)
	require.True(t, ok)
	assert.Equal(t, "Tester", updatedUser["surname"])
	assert.EqualValues(t, 31, updatedUser["age"])

	status, _ = post(t, ts.URL+"/api/businesses/register", map[string]any{
		"email":         "biz_" + email,
		"name":          "Biz",
		"busi_username": "biz_" + username,
		"category":      "food",
		"rating":        4.5,
		"password":      password,
	})
	require.Equal(t, http.StatusCreated, status)

	status, bizLogin := post(t, ts.URL+"/api/businesses/login", map[string]any{"email": "biz_" + email, "password": password})
	require.Equal(t, http.StatusOK, status)
	bizUser, ok := bizLogin["user"].(map[string]any)
	require.True(t, ok)
	assert.InDelta(t, 4.5, bizUser["rating"], 0.0001)
}

func post(t *testing.T, url string, payload map[string]any) (int, map[string]any) {
	t.Helper()
	return send(t, http.MethodPost, url, payload)
}

func send(t *testing.T, method, url string, payload map[string]any) (int, map[string]any) {
	t.Helper()
	body, err := json.Marshal(payload)
	require.NoError(t, err)

	req, err := http.NewRequest(method, url, bytes.NewReader(body))
	require.NoError(t, err)
	req.Header.Set("Content-Type", "application/json")

	resp, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	defer resp.Body.Close()

	var out map[string]any
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&out))
	return resp.StatusCode, out
}

func envOr(key, def string) string {
	if v := strings.TrimSpace(os.Getenv(key)); v != "" {
		return v
	}
	return def
}

func loadDotEnv() {
	paths := []string{
		".env",
		"../.env",
		"../../.env",
		"../../../.env",
	}
	for _, path := range paths {
		_ = godotenv.Load(path)
	}
}
