package routes

import (
	"errors"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

// Every response uses the envelope {success, data|message, count?}.

func respondData(c *fiber.Ctx, status int, data interface{}) error {
	return c.Status(status).JSON(fiber.Map{
		"success": true,
		"data":    data,
	})
}

func respondList(c *fiber.Ctx, data interface{}, count int) error {
	return c.JSON(fiber.Map{
		"success": true,
		"count":   count,
		"data":    data,
	})
}

func respondMessage(c *fiber.Ctx, status int, message string) error {
	return c.Status(status).JSON(fiber.Map{
		"success": true,
		"message": message,
	})
}

func respondError(c *fiber.Ctx, status int, message string) error {
	return c.Status(status).JSON(fiber.Map{
		"success": false,
		"message": message,
	})
}

// respondValidationError surfaces schema validation as a 400 with a
// per-field error list, distinguishable from store errors.
func respondValidationError(c *fiber.Ctx, err error) error {
	fields := []fiber.Map{}

	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) {
		for _, fe := range verrs {
			fields = append(fields, fiber.Map{
				"field": fe.Field(),
				"rule":  fe.Tag(),
			})
		}
	}

	return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
		"success": false,
		"message": "Validation failed",
		"errors":  fields,
	})
}

// respondStoreError maps a missing record to 404 and everything else to 500.
func respondStoreError(c *fiber.Ctx, err error, notFoundMessage string) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return respondError(c, fiber.StatusNotFound, notFoundMessage)
	}
	return respondError(c, fiber.StatusInternalServerError, err.Error())
}
