package server

import (
	"instaclone/internal/models"

	"github.com/gofiber/fiber/v2"
)

// AddComment handles POST /api/v1/post/:id/comment
func (s *Server) AddComment(c *fiber.Ctx) error {
	postID, err := s.parseID(c, "id")
	if err != nil {
		return nil
	}

	var req struct {
		Text string `json:"text"`
	}
	if err := c.BodyParser(&req); err != nil {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Invalid request body"))
	}

	post, err := s.commentService.AddComment(c.Context(), currentUserID(c), postID, req.Text)
	if err != nil {
		return models.RespondWithServiceError(c, err)
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"message": "Comment added",
		"post":    post,
	})
}

// GetComments handles GET /api/v1/post/:id/comments
func (s *Server) GetComments(c *fiber.Ctx) error {
	postID, err := s.parseID(c, "id")
	if err != nil {
		return nil
	}

	comments, err := s.commentService.ListComments(c.Context(), postID)
	if err != nil {
		return models.RespondWithServiceError(c, err)
	}

	return c.JSON(fiber.Map{"comments": comments})
}
