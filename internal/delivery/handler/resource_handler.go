package handler

import (
	"log"
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	"smart-grocery/internal/domain/entities"
	"smart-grocery/internal/domain/repositories"
)

// resourceHandler serves one owned collection. The same handler backs both
// groceries and expenses; everything resource-specific lives in the entity
// type and the repository behind it.
type resourceHandler[E any, T interface {
	*E
	entities.Owned
}] struct {
	repo repositories.ResourceRepository[T]
}

func newResourceHandler[E any, T interface {
	*E
	entities.Owned
}](repo repositories.ResourceRepository[T]) *resourceHandler[E, T] {
	return &resourceHandler[E, T]{repo: repo}
}

func (h *resourceHandler[E, T]) list(c echo.Context) error {
	records, err := h.repo.FindByOwner(c.Request().Context(), principalFrom(c))
	if err != nil {
		return storeError(c, err)
	}
	if records == nil {
		records = make([]T, 0)
	}
	return c.JSON(http.StatusOK, records)
}

func (h *resourceHandler[E, T]) create(c echo.Context) error {
	record := T(new(E))
	if err := c.Bind(record); err != nil {
		return c.JSON(http.StatusBadRequest, errorBody("invalid request body"))
	}

	// Server-assigned fields win over anything the client sent.
	record.SetID(uuid.NewString())
	record.SetOwner(principalFrom(c))
	record.SetCreatedAt(time.Now().UTC().Format(time.RFC3339Nano))

	if err := h.repo.Save(c.Request().Context(), record); err != nil {
		return storeError(c, err)
	}
	return c.JSON(http.StatusOK, record)
}

func (h *resourceHandler[E, T]) update(c echo.Context) error {
	id := c.Param("id")
	owner := principalFrom(c)

	existing, err := h.repo.FindByID(c.Request().Context(), id)
	if err != nil {
		return storeError(c, err)
	}
	// Absent and owned-by-someone-else are indistinguishable on purpose.
	if existing == nil || existing.Owner() != owner {
		return c.JSON(http.StatusNotFound, errorBody("not found"))
	}

	record := T(new(E))
	if err := c.Bind(record); err != nil {
		return c.JSON(http.StatusBadRequest, errorBody("invalid request body"))
	}
	// Full replace with forced continuity of id and ownership.
	record.SetID(id)
	record.SetOwner(owner)

	if err := h.repo.Save(c.Request().Context(), record); err != nil {
		return storeError(c, err)
	}
	return c.JSON(http.StatusOK, record)
}

func (h *resourceHandler[E, T]) remove(c echo.Context) error {
	id := c.Param("id")
	owner := principalFrom(c)

	existing, err := h.repo.FindByID(c.Request().Context(), id)
	if err != nil {
		return storeError(c, err)
	}
	if existing == nil || existing.Owner() != owner {
		return c.JSON(http.StatusNotFound, errorBody("not found"))
	}

	if err := h.repo.DeleteByID(c.Request().Context(), id); err != nil {
		return storeError(c, err)
	}
	return c.NoContent(http.StatusNoContent)
}

func storeError(c echo.Context, err error) error {
	log.Printf("store error: %v", err)
	return c.JSON(http.StatusInternalServerError, errorBody("internal server error"))
}
