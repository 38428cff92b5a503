package handler

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"smart-grocery/internal/application/services"
	"smart-grocery/internal/domain/entities"
	"smart-grocery/internal/infrastructure"
	"smart-grocery/internal/infrastructure/db/memory"
)

// newTestServer wires the full router against in-process stores, exactly as
// cmd/server does with the memory driver.
func newTestServer(t *testing.T) *echo.Echo {
	t.Helper()
	tokens := infrastructure.NewTokenService("test-secret", time.Hour)
	hasher := infrastructure.NewPasswordHasher(bcrypt.MinCost)
	auth := services.NewAuthService(memory.NewUserStore(), hasher, tokens)

	return NewRouter(
		NewAuthHandler(auth, tokens),
		tokens,
		memory.NewResourceStore[entities.GroceryItem](),
		memory.NewResourceStore[entities.Expense](),
	)
}

func doRequest(t *testing.T, e *echo.Echo, method, path, token, body string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	if body != "" {
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}
	if token != "" {
		req.Header.Set(echo.HeaderAuthorization, "Bearer "+token)
	}
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	return rec
}

func decodeBody(t *testing.T, rec *httptest.ResponseRecorder, out any) {
	t.Helper()
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), out))
}

// signup registers a user and returns the issued token.
func signup(t *testing.T, e *echo.Echo, username, password string) string {
	t.Helper()
	rec := doRequest(t, e, http.MethodPost, "/api/auth/signup", "",
		`{"username":"`+username+`","password":"`+password+`"}`)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	var result services.AuthResult
	decodeBody(t, rec, &result)
	require.NotEmpty(t, result.Token)
	return result.Token
}
