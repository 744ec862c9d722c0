package routes

import (
	"path/filepath"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

// uploadImage stores an uploaded image under uploads/ with a unique name
// and returns the public path to store on a record.
func (h *Handler) uploadImage(c *fiber.Ctx) error {
	file, err := c.FormFile("image")
	if err != nil {
		return respondError(c, fiber.StatusBadRequest, "Failed to get uploaded file")
	}

	filename := uuid.New().String() + filepath.Ext(file.Filename)
	if err := c.SaveFile(file, "./uploads/"+filename); err != nil {
		h.log.Error().Err(err).Msg("Failed to save uploaded file")
		return respondError(c, fiber.StatusInternalServerError, "Failed to save file")
	}

	return respondData(c, fiber.StatusCreated, fiber.Map{
		"filename": filename,
		"path":     "/uploads/" + filename,
	})
}
