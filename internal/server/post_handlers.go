package server

import (
	"instaclone/internal/models"
	"instaclone/internal/service"

	"github.com/gofiber/fiber/v2"
)

// CreatePost handles POST /api/v1/post
func (s *Server) CreatePost(c *fiber.Ctx) error {
	var req struct {
		Caption  string `json:"caption"`
		ImageURL string `json:"image_url"`
	}
	if err := c.BodyParser(&req); err != nil {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Invalid request body"))
	}

	post, err := s.postService.CreatePost(c.Context(), service.CreatePostInput{
		UserID:   currentUserID(c),
		Caption:  req.Caption,
		ImageURL: req.ImageURL,
	})
	if err != nil {
		return models.RespondWithServiceError(c, err)
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"message": "New post added",
		"post":    post,
	})
}

// GetPosts handles GET /api/v1/post
func (s *Server) GetPosts(c *fiber.Ctx) error {
	pagination := parsePagination(c, 20)

	posts, err := s.postService.ListPosts(c.Context(), pagination.Limit, pagination.Offset, currentUserID(c))
	if err != nil {
		return models.RespondWithServiceError(c, err)
	}

	return c.JSON(fiber.Map{"posts": posts})
}

// GetUserPosts handles GET /api/v1/user/:id/posts
func (s *Server) GetUserPosts(c *fiber.Ctx) error {
	userID, err := s.parseID(c, "id")
	if err != nil {
		return nil
	}
	pagination := parsePagination(c, 20)

	posts, err := s.postService.GetUserPosts(c.Context(), userID, pagination.Limit, pagination.Offset, currentUserID(c))
	if err != nil {
		return models.RespondWithServiceError(c, err)
	}

	return c.JSON(fiber.Map{"posts": posts})
}

// GetPost handles GET /api/v1/post/:id
func (s *Server) GetPost(c *fiber.Ctx) error {
	id, err := s.parseID(c, "id")
	if err != nil {
		return nil
	}

	post, err := s.postService.GetPost(c.Context(), id, currentUserID(c))
	if err != nil {
		return models.RespondWithServiceError(c, err)
	}

	return c.JSON(fiber.Map{"post": post})
}

// ToggleLike handles POST /api/v1/post/:id/like
func (s *Server) ToggleLike(c *fiber.Ctx) error {
	postID, err := s.parseID(c, "id")
	if err != nil {
		return nil
	}

	post, notification, err := s.postService.ToggleLike(c.Context(), currentUserID(c), postID)
	if err != nil {
		return models.RespondWithServiceError(c, err)
	}

	// Best-effort push to the post author; never affects the response.
	s.dispatcher.Dispatch(notification)

	message := "Post disliked"
	if post.Liked {
		message = "Post liked"
	}

	return c.JSON(fiber.Map{
		"message": message,
		"post":    post,
	})
}

// ToggleBookmark handles POST /api/v1/post/:id/bookmark
func (s *Server) ToggleBookmark(c *fiber.Ctx) error {
	postID, err := s.parseID(c, "id")
	if err != nil {
		return nil
	}

	bookmarked, err := s.postService.ToggleBookmark(c.Context(), currentUserID(c), postID)
	if err != nil {
		return models.RespondWithServiceError(c, err)
	}

	message := "Post removed from bookmarks"
	if bookmarked {
		message = "Post bookmarked"
	}

	return c.JSON(fiber.Map{
		"message":    message,
		"bookmarked": bookmarked,
	})
}

// GetBookmarkedPosts handles GET /api/v1/user/bookmarks
func (s *Server) GetBookmarkedPosts(c *fiber.Ctx) error {
	posts, err := s.postService.GetBookmarkedPosts(c.Context(), currentUserID(c))
	if err != nil {
		return models.RespondWithServiceError(c, err)
	}

	return c.JSON(fiber.Map{"posts": posts})
}

// DeletePost handles DELETE /api/v1/post/:id
func (s *Server) DeletePost(c *fiber.Ctx) error {
	postID, err := s.parseID(c, "id")
	if err != nil {
		return nil
	}

	if err := s.postService.DeletePost(c.Context(), currentUserID(c), postID); err != nil {
		return models.RespondWithServiceError(c, err)
	}

	return c.JSON(fiber.Map{"message": "Post deleted"})
}
