package server

import (
	"cortado/internal/models"
	"cortado/internal/validation"

	"github.com/gofiber/fiber/v2"
)

// GetSettings handles GET /api/settings. The row is global, not per-user.
func (s *Server) GetSettings(c *fiber.Ctx) error {
	settings, err := s.settingsRepo.Get(c.Context())
	if err != nil {
		return models.RespondWithError(c, fiber.StatusInternalServerError,
			models.NewInternalError(err))
	}

	return c.JSON(settings)
}

// UpdateSettings handles PATCH /api/settings. Every range field must be
// present; the update replaces the full record.
func (s *Server) UpdateSettings(c *fiber.Ctx) error {
	var in validation.SettingsInput
	if err := c.BodyParser(&in); err != nil {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Invalid request body"))
	}

	if err := validation.ValidateSettings(&in); err != nil {
		return respondValidationError(c, err)
	}

	settings, err := s.settingsRepo.Update(c.Context(), &models.Settings{
		GrinderSettingMin: *in.GrinderSettingMin,
		GrinderSettingMax: *in.GrinderSettingMax,
		DialSettingMin:    *in.DialSettingMin,
		DialSettingMax:    *in.DialSettingMax,
		GrindAmountMin:    *in.GrindAmountMin,
		GrindAmountMax:    *in.GrindAmountMax,
	})
	if err != nil {
		return models.RespondWithError(c, fiber.StatusInternalServerError,
			models.NewInternalError(err))
	}

	return c.JSON(settings)
}
