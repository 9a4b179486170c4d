package server

import (
	"bloglist/internal/models"

	"github.com/gofiber/fiber/v2"
)

// ListBlogs handles GET /api/blogs
func (s *Server) ListBlogs(c *fiber.Ctx) error {
	blogs, err := s.blogRepo.List(c.Context())
	if err != nil {
		return models.RespondWithError(c, fiber.StatusInternalServerError, err)
	}
	return c.JSON(blogs)
}

// CreateBlog handles POST /api/blogs
func (s *Server) CreateBlog(c *fiber.Ctx) error {
	var req struct {
		Title  string `json:"title"`
		Author string `json:"author"`
		URL    string `json:"url"`
	}
	if err := c.BodyParser(&req); err != nil {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Invalid request body"))
	}

	if req.Title == "" {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Title is required"))
	}

	userID := c.Locals("userID").(string)
	blog := &models.Blog{
		Title:  req.Title,
		Author: req.Author,
		URL:    req.URL,
		UserID: userID,
	}
	if err := s.blogRepo.Create(c.Context(), blog); err != nil {
		return models.RespondWithError(c, fiber.StatusInternalServerError, err)
	}

	return c.Status(fiber.StatusCreated).JSON(blog)
}

// UpdateBlog handles PUT /api/blogs/:id
func (s *Server) UpdateBlog(c *fiber.Ctx) error {
	id := c.Params("id")

	blog, err := s.blogRepo.GetByID(c.Context(), id)
	if err != nil {
		return models.RespondWithError(c, fiber.StatusInternalServerError, err)
	}
	if blog == nil {
		return models.RespondWithError(c, fiber.StatusNotFound,
			models.NewNotFoundError("blog", id))
	}

	var req struct {
		Title  string `json:"title"`
		Author string `json:"author"`
		URL    string `json:"url"`
		Likes  int    `json:"likes"`
	}
	if err := c.BodyParser(&req); err != nil {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Invalid request body"))
	}
	if req.Likes < 0 {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Likes cannot be negative"))
	}

	if req.Title != "" {
		blog.Title = req.Title
	}
	if req.Author != "" {
		blog.Author = req.Author
	}
	if req.URL != "" {
		blog.URL = req.URL
	}
	blog.Likes = req.Likes

	if err := s.blogRepo.Update(c.Context(), blog); err != nil {
		return models.RespondWithError(c, fiber.StatusInternalServerError, err)
	}

	return c.JSON(blog)
}

// DeleteBlog handles DELETE /api/blogs/:id
func (s *Server) DeleteBlog(c *fiber.Ctx) error {
	id := c.Params("id")

	blog, err := s.blogRepo.GetByID(c.Context(), id)
	if err != nil {
		return models.RespondWithError(c, fiber.StatusInternalServerError, err)
	}
	if blog == nil {
		return models.RespondWithError(c, fiber.StatusNotFound,
			models.NewNotFoundError("blog", id))
	}

	// The server is the authority on ownership; the client-side gate only
	// hides the affordance.
	userID := c.Locals("userID").(string)
	if blog.UserID != userID {
		return models.RespondWithError(c, fiber.StatusForbidden,
			models.NewUnauthorizedError("You can only delete your own blogs"))
	}

	if err := s.blogRepo.Delete(c.Context(), id); err != nil {
		return models.RespondWithError(c, fiber.StatusInternalServerError, err)
	}

	return c.SendStatus(fiber.StatusNoContent)
}
