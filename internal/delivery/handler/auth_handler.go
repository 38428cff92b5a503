package handler

import (
	"errors"
	"log"
	"net/http"

	"github.com/labstack/echo/v4"

	"smart-grocery/internal/application/services"
	"smart-grocery/internal/infrastructure"
)

type credentialsRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

type AuthHandler struct {
	auth   *services.AuthService
	tokens *infrastructure.TokenService
}

func NewAuthHandler(auth *services.AuthService, tokens *infrastructure.TokenService) *AuthHandler {
	return &AuthHandler{auth: auth, tokens: tokens}
}

func (h *AuthHandler) Signup(c echo.Context) error {
	var req credentialsRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, errorBody("username and password required"))
	}

	result, err := h.auth.Signup(c.Request().Context(), req.Username, req.Password)
	switch {
	case errors.Is(err, services.ErrMissingCredentials):
		return c.JSON(http.StatusBadRequest, errorBody("username and password required"))
	case errors.Is(err, services.ErrUsernameTaken):
		return c.JSON(http.StatusConflict, errorBody("username already exists"))
	case err != nil:
		log.Printf("signup failed: %v", err)
		return c.JSON(http.StatusInternalServerError, errorBody("Failed to signup"))
	}
	return c.JSON(http.StatusOK, result)
}

func (h *AuthHandler) Login(c echo.Context) error {
	var req credentialsRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, errorBody("username and password required"))
	}

	result, err := h.auth.Login(c.Request().Context(), req.Username, req.Password)
	switch {
	case errors.Is(err, services.ErrMissingCredentials):
		return c.JSON(http.StatusBadRequest, errorBody("username and password required"))
	case errors.Is(err, services.ErrInvalidCredentials):
		return c.JSON(http.StatusUnauthorized, errorBody("Invalid credentials"))
	case err != nil:
		log.Printf("login failed: %v", err)
		return c.JSON(http.StatusInternalServerError, errorBody("Failed to login"))
	}
	return c.JSON(http.StatusOK, result)
}

// Me is a liveness probe for client-side session checks. It always answers
// 200, authenticated or not.
func (h *AuthHandler) Me(c echo.Context) error {
	username, ok := principal(h.tokens, c.Request().Header)
	if !ok {
		return c.JSON(http.StatusOK, echo.Map{"authenticated": false})
	}
	return c.JSON(http.StatusOK, echo.Map{
		"authenticated": true,
		"user":          echo.Map{"username": username},
	})
}

// Logout acknowledges without doing anything: tokens are not tracked
// server-side, so invalidation is the client discarding the token.
func (h *AuthHandler) Logout(c echo.Context) error {
	return c.NoContent(http.StatusNoContent)
}
