package server

import (
	"instaclone/internal/models"
	"instaclone/internal/service"

	"github.com/gofiber/fiber/v2"
)

// GetProfile handles GET /api/v1/user/profile/:id
func (s *Server) GetProfile(c *fiber.Ctx) error {
	id, err := s.parseID(c, "id")
	if err != nil {
		return nil
	}

	profile, err := s.userService.GetProfile(c.Context(), id, currentUserID(c))
	if err != nil {
		return models.RespondWithServiceError(c, err)
	}

	return c.JSON(profile)
}

// UpdateProfile handles PATCH /api/v1/user/profile
func (s *Server) UpdateProfile(c *fiber.Ctx) error {
	var req struct {
		Username string `json:"username"`
		Bio      string `json:"bio"`
		Gender   string `json:"gender"`
		Avatar   string `json:"avatar"`
	}
	if err := c.BodyParser(&req); err != nil {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Invalid request body"))
	}

	user, err := s.userService.UpdateProfile(c.Context(), service.UpdateProfileInput{
		UserID:   currentUserID(c),
		Username: req.Username,
		Bio:      req.Bio,
		Gender:   req.Gender,
		Avatar:   req.Avatar,
	})
	if err != nil {
		return models.RespondWithServiceError(c, err)
	}

	return c.JSON(fiber.Map{
		"message": "Profile updated",
		"user":    user,
	})
}

// GetSuggestedUsers handles GET /api/v1/user/suggestions
func (s *Server) GetSuggestedUsers(c *fiber.Ctx) error {
	pagination := parsePagination(c, 10)

	users, err := s.userService.GetSuggestedUsers(c.Context(), currentUserID(c), pagination.Limit)
	if err != nil {
		return models.RespondWithServiceError(c, err)
	}

	return c.JSON(fiber.Map{"users": users})
}

// ToggleFollow handles POST /api/v1/user/:id/follow
func (s *Server) ToggleFollow(c *fiber.Ctx) error {
	targetID, err := s.parseID(c, "id")
	if err != nil {
		return nil
	}

	following, err := s.userService.ToggleFollow(c.Context(), currentUserID(c), targetID)
	if err != nil {
		return models.RespondWithServiceError(c, err)
	}

	message := "Unfollowed"
	if following {
		message = "Followed"
	}

	return c.JSON(fiber.Map{
		"message":   message,
		"following": following,
	})
}
