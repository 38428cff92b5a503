package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"

	"smart-grocery/internal/domain/entities"
	"smart-grocery/internal/domain/repositories"
	"smart-grocery/internal/infrastructure"
)

// NewRouter wires the full HTTP surface onto an echo instance.
func NewRouter(
	auth *AuthHandler,
	tokens *infrastructure.TokenService,
	groceries repositories.ResourceRepository[*entities.GroceryItem],
	expenses repositories.ResourceRepository[*entities.Expense],
) *echo.Echo {
	e := echo.New()
	e.HideBanner = true

	e.Use(middleware.Logger())
	e.Use(middleware.Recover())
	e.Use(middleware.CORSWithConfig(middleware.CORSConfig{
		AllowOrigins: []string{"*"},
		AllowMethods: []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodDelete, http.MethodOptions},
		AllowHeaders: []string{echo.HeaderContentType, echo.HeaderAuthorization, "X-Requested-With"},
	}))

	api := e.Group("/api")

	api.POST("/auth/signup", auth.Signup)
	api.POST("/auth/login", auth.Login)
	api.GET("/auth/me", auth.Me)
	api.POST("/auth/logout", auth.Logout)

	registerResource[entities.GroceryItem](api.Group("/groceries", requireAuth(tokens)), groceries)
	registerResource[entities.Expense](api.Group("/expenses", requireAuth(tokens)), expenses)

	return e
}

func registerResource[E any, T interface {
	*E
	entities.Owned
}](g *echo.Group, repo repositories.ResourceRepository[T]) {
	h := newResourceHandler[E, T](repo)
	g.GET("", h.list)
	g.POST("", h.create)
	g.PUT("/:id", h.update)
	g.DELETE("/:id", h.remove)
}
