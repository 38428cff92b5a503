package handler

import (
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"smart-grocery/internal/infrastructure"
)

// The prefix match is case-sensitive with exactly one space, per the
// Authorization header contract.
const bearerPrefix = "Bearer "

const principalKey = "principal"

// principal extracts and validates the bearer token from the request
// headers, yielding the authenticated username. It never touches a store.
func principal(tokens *infrastructure.TokenService, header http.Header) (string, bool) {
	auth := header.Get(echo.HeaderAuthorization)
	if !strings.HasPrefix(auth, bearerPrefix) {
		return "", false
	}
	username, err := tokens.Verify(strings.TrimPrefix(auth, bearerPrefix))
	if err != nil {
		return "", false
	}
	return username, true
}

// requireAuth rejects unauthenticated requests before any handler or store
// is reached.
func requireAuth(tokens *infrastructure.TokenService) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			username, ok := principal(tokens, c.Request().Header)
			if !ok {
				return c.JSON(http.StatusUnauthorized, errorBody("Unauthorized"))
			}
			c.Set(principalKey, username)
			return next(c)
		}
	}
}

func principalFrom(c echo.Context) string {
	username, _ := c.Get(principalKey).(string)
	return username
}

func errorBody(message string) echo.Map {
	return echo.Map{"error": message}
}
