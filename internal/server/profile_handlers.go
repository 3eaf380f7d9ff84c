package server

import (
	"cortado/internal/models"
	"cortado/internal/validation"

	"github.com/gofiber/fiber/v2"
)

// ListProfiles handles GET /api/profiles. Only the caller's rows are
// returned.
func (s *Server) ListProfiles(c *fiber.Ctx) error {
	userID := c.Locals("userID").(uint)

	profiles, err := s.profileRepo.ListByUserID(c.Context(), userID)
	if err != nil {
		return models.RespondWithError(c, fiber.StatusInternalServerError,
			models.NewInternalError(err))
	}

	return c.JSON(profiles)
}

// GetProfile handles GET /api/profiles/:id
func (s *Server) GetProfile(c *fiber.Ctx) error {
	userID := c.Locals("userID").(uint)

	id, err := s.parseID(c, "id")
	if err != nil {
		return nil
	}

	profile, err := requireOwned(c, "Profile", userID, func() (*models.Profile, error) {
		return s.profileRepo.GetByID(c.Context(), id)
	})
	if err != nil {
		return nil
	}

	return c.JSON(profile)
}

// CreateProfile handles POST /api/profiles. The new row is bound to the
// caller; the request cannot name another owner.
func (s *Server) CreateProfile(c *fiber.Ctx) error {
	userID := c.Locals("userID").(uint)

	var in validation.ProfileInput
	if err := c.BodyParser(&in); err != nil {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Invalid request body"))
	}

	if err := validation.ValidateProfile(&in, false); err != nil {
		return respondValidationError(c, err)
	}

	profile := &models.Profile{
		Brand:            *in.Brand,
		Product:          *in.Product,
		Roast:            *in.Roast,
		GrinderSetting:   in.GrinderSetting,
		GrindAmount:      in.GrindAmount,
		GrindAmountGrams: in.GrindAmountGrams,
		Rating:           in.Rating,
		Appearance:       in.Appearance,
		Aroma:            in.Aroma,
		Taste:            in.Taste,
		Body:             in.Body,
		Aftertaste:       in.Aftertaste,
		ExtractionTime:   in.ExtractionTime,
		UserID:           userID,
	}
	if in.AdvancedFeedback != nil {
		profile.AdvancedFeedback = *in.AdvancedFeedback
	}

	if err := s.profileRepo.Create(c.Context(), profile); err != nil {
		return models.RespondWithError(c, fiber.StatusInternalServerError,
			models.NewInternalError(err))
	}

	return c.Status(fiber.StatusCreated).JSON(profile)
}

// UpdateProfile handles PATCH /api/profiles/:id. Only validated present
// fields are merged; absent fields keep their prior values.
func (s *Server) UpdateProfile(c *fiber.Ctx) error {
	userID := c.Locals("userID").(uint)

	id, err := s.parseID(c, "id")
	if err != nil {
		return nil
	}

	var in validation.ProfileInput
	if err := c.BodyParser(&in); err != nil {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Invalid request body"))
	}

	if err := validation.ValidateProfile(&in, true); err != nil {
		return respondValidationError(c, err)
	}

	profile, err := requireOwned(c, "Profile", userID, func() (*models.Profile, error) {
		return s.profileRepo.GetByID(c.Context(), id)
	})
	if err != nil {
		return nil
	}

	applyProfileInput(profile, &in)

	if err := s.profileRepo.Update(c.Context(), profile); err != nil {
		return models.RespondWithError(c, fiber.StatusInternalServerError,
			models.NewInternalError(err))
	}

	return c.JSON(profile)
}

// DeleteProfile handles DELETE /api/profiles/:id
func (s *Server) DeleteProfile(c *fiber.Ctx) error {
	userID := c.Locals("userID").(uint)

	id, err := s.parseID(c, "id")
	if err != nil {
		return nil
	}

	if _, err := requireOwned(c, "Profile", userID, func() (*models.Profile, error) {
		return s.profileRepo.GetByID(c.Context(), id)
	}); err != nil {
		return nil
	}

	if err := s.profileRepo.Delete(c.Context(), id); err != nil {
		return models.RespondWithError(c, fiber.StatusInternalServerError,
			models.NewInternalError(err))
	}

	return c.SendStatus(fiber.StatusNoContent)
}

// applyProfileInput merges the present fields of a validated partial update
// onto an existing row.
func applyProfileInput(profile *models.Profile, in *validation.ProfileInput) {
	if in.Brand != nil {
		profile.Brand = *in.Brand
	}
	if in.Product != nil {
		profile.Product = *in.Product
	}
	if in.Roast != nil {
		profile.Roast = *in.Roast
	}
	if in.GrinderSetting != nil {
		profile.GrinderSetting = in.GrinderSetting
	}
	if in.GrindAmount != nil {
		profile.GrindAmount = in.GrindAmount
	}
	if in.GrindAmountGrams != nil {
		profile.GrindAmountGrams = in.GrindAmountGrams
	}
	if in.Rating != nil {
		profile.Rating = in.Rating
	}
	if in.AdvancedFeedback != nil {
		profile.AdvancedFeedback = *in.AdvancedFeedback
	}
	if in.Appearance != nil {
		profile.Appearance = in.Appearance
	}
	if in.Aroma != nil {
		profile.Aroma = in.Aroma
	}
	if in.Taste != nil {
		profile.Taste = in.Taste
	}
	if in.Body != nil {
		profile.Body = in.Body
	}
	if in.Aftertaste != nil {
		profile.Aftertaste = in.Aftertaste
	}
	if in.ExtractionTime != nil {
		profile.ExtractionTime = in.ExtractionTime
	}
}
