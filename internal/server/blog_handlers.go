package server

import (
	"cortado/internal/models"
	"cortado/internal/validation"

	"github.com/gofiber/fiber/v2"
)

// ListBlogs handles GET /api/blogs
func (s *Server) ListBlogs(c *fiber.Ctx) error {
	userID := c.Locals("userID").(uint)

	blogs, err := s.blogRepo.ListByUserID(c.Context(), userID)
	if err != nil {
		return models.RespondWithError(c, fiber.StatusInternalServerError,
			models.NewInternalError(err))
	}

	return c.JSON(blogs)
}

// GetBlog handles GET /api/blogs/:id
func (s *Server) GetBlog(c *fiber.Ctx) error {
	userID := c.Locals("userID").(uint)

	id, err := s.parseID(c, "id")
	if err != nil {
		return nil
	}

	blog, err := requireOwned(c, "Blog", userID, func() (*models.Blog, error) {
		return s.blogRepo.GetByID(c.Context(), id)
	})
	if err != nil {
		return nil
	}

	return c.JSON(blog)
}

// CreateBlog handles POST /api/blogs
func (s *Server) CreateBlog(c *fiber.Ctx) error {
	userID := c.Locals("userID").(uint)

	var in validation.BlogInput
	if err := c.BodyParser(&in); err != nil {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Invalid request body"))
	}

	if err := validation.ValidateBlog(&in, false); err != nil {
		return respondValidationError(c, err)
	}

	blog := &models.Blog{
		Title:   *in.Title,
		Content: *in.Content,
		UserID:  userID,
	}
	if in.Published != nil {
		blog.Published = *in.Published
	}

	if err := s.blogRepo.Create(c.Context(), blog); err != nil {
		return models.RespondWithError(c, fiber.StatusInternalServerError,
			models.NewInternalError(err))
	}

	return c.Status(fiber.StatusCreated).JSON(blog)
}

// UpdateBlog handles PATCH /api/blogs/:id
func (s *Server) UpdateBlog(c *fiber.Ctx) error {
	userID := c.Locals("userID").(uint)

	id, err := s.parseID(c, "id")
	if err != nil {
		return nil
	}

	var in validation.BlogInput
	if err := c.BodyParser(&in); err != nil {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Invalid request body"))
	}

	if err := validation.ValidateBlog(&in, true); err != nil {
		return respondValidationError(c, err)
	}

	blog, err := requireOwned(c, "Blog", userID, func() (*models.Blog, error) {
		return s.blogRepo.GetByID(c.Context(), id)
	})
	if err != nil {
		return nil
	}

	if in.Title != nil {
		blog.Title = *in.Title
	}
	if in.Content != nil {
		blog.Content = *in.Content
	}
	if in.Published != nil {
		blog.Published = *in.Published
	}

	if err := s.blogRepo.Update(c.Context(), blog); err != nil {
		return models.RespondWithError(c, fiber.StatusInternalServerError,
			models.NewInternalError(err))
	}

	return c.JSON(blog)
}

// DeleteBlog handles DELETE /api/blogs/:id
func (s *Server) DeleteBlog(c *fiber.Ctx) error {
	userID := c.Locals("userID").(uint)

	id, err := s.parseID(c, "id")
	if err != nil {
		return nil
	}

	if _, err := requireOwned(c, "Blog", userID, func() (*models.Blog, error) {
		return s.blogRepo.GetByID(c.Context(), id)
	}); err != nil {
		return nil
	}

	if err := s.blogRepo.Delete(c.Context(), id); err != nil {
		return models.RespondWithError(c, fiber.StatusInternalServerError,
			models.NewInternalError(err))
	}

	return c.SendStatus(fiber.StatusNoContent)
}
