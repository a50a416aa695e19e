package server

import (
	"io"

	"instaclone/internal/models"

	"github.com/gofiber/fiber/v2"
)

// UploadImage handles POST /api/v1/post/image. The returned URL is what a
// subsequent CreatePost stores as image_url.
func (s *Server) UploadImage(c *fiber.Ctx) error {
	file, err := c.FormFile("image")
	if err != nil {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("No file uploaded"))
	}

	src, err := file.Open()
	if err != nil {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Unable to read uploaded file"))
	}
	defer func() { _ = src.Close() }()

	content, err := io.ReadAll(src)
	if err != nil {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Unable to read uploaded file"))
	}

	ref, err := s.imageService.Transcode(content)
	if err != nil {
		return models.RespondWithServiceError(c, err)
	}

	return c.JSON(fiber.Map{"image": ref})
}
