// Package server contains the HTTP handlers for the application's API endpoints.
package server

import (
	"errors"
	"strings"

	"cortado/internal/models"
	"cortado/internal/validation"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

// errResponseWritten is a sentinel indicating the HTTP response was already
// committed by a helper.  Handlers must return nil (not this error) to avoid
// Fiber's ErrorHandler overwriting the response.
var errResponseWritten = errors.New("response already written")

// parseID extracts a route parameter by name as a positive uint.
// On failure it writes a 400 JSON response and returns errResponseWritten.
// Callers should check: if err != nil { return nil }
func (s *Server) parseID(c *fiber.Ctx, param string) (uint, error) {
	id, err := c.ParamsInt(param)
	if err != nil || id <= 0 {
		_ = models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Invalid ID"))
		return 0, errResponseWritten
	}
	return uint(id), nil
}

// ownedResource is any entity that knows its owning user.
type ownedResource interface {
	OwnerID() uint
}

// requireOwned loads a resource and enforces that it belongs to userID. Every
// ownership-checked handler goes through this guard so the not-found vs
// forbidden distinction cannot drift between handlers: a missing row is 404,
// an existing row owned by someone else is 403 (existence is revealed, access
// is not).
//
// On failure it writes the response and returns errResponseWritten; callers
// should check: if err != nil { return nil }.
func requireOwned[T ownedResource](c *fiber.Ctx, resource string, userID uint, load func() (T, error)) (T, error) {
	var zero T

	res, err := load()
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			_ = models.RespondWithError(c, fiber.StatusNotFound,
				models.NewNotFoundError(resource, c.Params("id")))
		} else {
			_ = models.RespondWithError(c, fiber.StatusInternalServerError,
				models.NewInternalError(err))
		}
		return zero, errResponseWritten
	}

	if res.OwnerID() != userID {
		_ = models.RespondWithError(c, fiber.StatusForbidden,
			models.NewForbiddenError("You can only access your own "+strings.ToLower(resource)+"s"))
		return zero, errResponseWritten
	}

	return res, nil
}

// respondValidationError maps a validation failure to a 400 with the per-field
// breakdown when available.
func respondValidationError(c *fiber.Ctx, err error) error {
	var fieldErrs validation.FieldErrors
	if errors.As(err, &fieldErrs) {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewFieldValidationError(fieldErrs))
	}
	return models.RespondWithError(c, fiber.StatusBadRequest,
		models.NewValidationError(err.Error()))
}
