package handler

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"smart-grocery/internal/application/services"
)

func TestSignupReturnsIdentityAndToken(t *testing.T) {
	e := newTestServer(t)

	rec := doRequest(t, e, http.MethodPost, "/api/auth/signup", "", `{"username":"alice","password":"p1"}`)
	require.Equal(t, http.StatusOK, rec.Code)

	var result services.AuthResult
	decodeBody(t, rec, &result)
	assert.NotEmpty(t, result.ID)
	assert.Equal(t, "alice", result.Username)
	assert.NotEmpty(t, result.Token)
}

func TestSignupMissingFields(t *testing.T) {
	e := newTestServer(t)

	for _, body := range []string{
		`{"username":"alice"}`,
		`{"password":"p1"}`,
		`{}`,
	} {
		rec := doRequest(t, e, http.MethodPost, "/api/auth/signup", "", body)
		assert.Equal(t, http.StatusBadRequest, rec.Code, "body %s", body)
	}
}

func TestSignupDuplicateUsername(t *testing.T) {
	e := newTestServer(t)
	signup(t, e, "alice", "p1")

	rec := doRequest(t, e, http.MethodPost, "/api/auth/signup", "", `{"username":"alice","password":"other"}`)
	assert.Equal(t, http.StatusConflict, rec.Code)

	var body map[string]string
	decodeBody(t, rec, &body)
	assert.Equal(t, "username already exists", body["error"])
}

func TestLoginSucceedsWithSignupCredentials(t *testing.T) {
	e := newTestServer(t)
	signup(t, e, "alice", "p1")

	rec := doRequest(t, e, http.MethodPost, "/api/auth/login", "", `{"username":"alice","password":"p1"}`)
	require.Equal(t, http.StatusOK, rec.Code)

	var result services.AuthResult
	decodeBody(t, rec, &result)
	assert.Equal(t, "alice", result.Username)
	assert.NotEmpty(t, result.Token)
}

// Wrong password and unknown username must be byte-for-byte identical
// responses so an attacker cannot probe which usernames exist.
func TestLoginFailuresAreIndistinguishable(t *testing.T) {
	e := newTestServer(t)
	signup(t, e, "alice", "right-password")

	wrongPassword := doRequest(t, e, http.MethodPost, "/api/auth/login", "", `{"username":"alice","password":"nope"}`)
	unknownUser := doRequest(t, e, http.MethodPost, "/api/auth/login", "", `{"username":"mallory","password":"nope"}`)

	assert.Equal(t, http.StatusUnauthorized, wrongPassword.Code)
	assert.Equal(t, http.StatusUnauthorized, unknownUser.Code)
	assert.Equal(t, wrongPassword.Body.String(), unknownUser.Body.String())
}

func TestLoginMissingFields(t *testing.T) {
	e := newTestServer(t)

	rec := doRequest(t, e, http.MethodPost, "/api/auth/login", "", `{"username":"alice"}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestMeWithoutTokenIsStillOK(t *testing.T) {
	e := newTestServer(t)

	rec := doRequest(t, e, http.MethodGet, "/api/auth/me", "", "")
	require.Equal(t, http.StatusOK, rec.Code)

	var body struct {
		Authenticated bool `json:"authenticated"`
	}
	decodeBody(t, rec, &body)
	assert.False(t, body.Authenticated)
}

func TestMeWithGarbageTokenIsStillOK(t *testing.T) {
	e := newTestServer(t)

	rec := doRequest(t, e, http.MethodGet, "/api/auth/me", "garbage", "")
	require.Equal(t, http.StatusOK, rec.Code)

	var body struct {
		Authenticated bool `json:"authenticated"`
	}
	decodeBody(t, rec, &body)
	assert.False(t, body.Authenticated)
}

func TestMeWithValidToken(t *testing.T) {
	e := newTestServer(t)
	token := signup(t, e, "alice", "p1")

	rec := doRequest(t, e, http.MethodGet, "/api/auth/me", token, "")
	require.Equal(t, http.StatusOK, rec.Code)

	var body struct {
		Authenticated bool `json:"authenticated"`
		User          struct {
			Username string `json:"username"`
		} `json:"user"`
	}
	decodeBody(t, rec, &body)
	assert.True(t, body.Authenticated)
	assert.Equal(t, "alice", body.User.Username)
}

func TestLogoutIsStatelessNoContent(t *testing.T) {
	e := newTestServer(t)

	rec := doRequest(t, e, http.MethodPost, "/api/auth/logout", "", "")
	assert.Equal(t, http.StatusNoContent, rec.Code)
}
