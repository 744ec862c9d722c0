package routes

import (
	"supermall/models"

	"github.com/gofiber/fiber/v2"
)

func (h *Handler) listFloors(c *fiber.Ctx) error {
	var floors []models.Floor
	if err := h.db.Where("is_active = ?", true).Order("number ASC").Find(&floors).Error; err != nil {
		h.log.Error().Err(err).Msg("Failed to list floors")
		return respondError(c, fiber.StatusInternalServerError, "Failed to get floors")
	}
	return respondList(c, floors, len(floors))
}

func (h *Handler) getFloor(c *fiber.Ctx) error {
	var floor models.Floor
	if err := h.db.First(&floor, "id = ?", c.Params("id")).Error; err != nil {
		return respondStoreError(c, err, "Floor not found")
	}
	return respondData(c, fiber.StatusOK, floor)
}

func (h *Handler) createFloor(c *fiber.Ctx) error {
	floor := new(models.Floor)
	if err := c.BodyParser(floor); err != nil {
		return respondError(c, fiber.StatusBadRequest, "Failed to parse request body")
	}
	floor.IsActive = true
	if err := h.validate.Struct(floor); err != nil {
		return respondValidationError(c, err)
	}

	if err := h.db.Create(floor).Error; err != nil {
		h.log.Error().Err(err).Msg("Failed to create floor")
		return respondError(c, fiber.StatusInternalServerError, "Failed to create floor")
	}

	h.log.Info().Str("name", floor.Name).Msg("Floor created")
	return respondData(c, fiber.StatusCreated, floor)
}

func (h *Handler) updateFloor(c *fiber.Ctx) error {
	var floor models.Floor
	if err := h.db.First(&floor, "id = ?", c.Params("id")).Error; err != nil {
		return respondStoreError(c, err, "Floor not found")
	}

	id := floor.ID
	if err := c.BodyParser(&floor); err != nil {
		return respondError(c, fiber.StatusBadRequest, "Failed to parse request body")
	}
	floor.ID = id
	if err := h.validate.Struct(&floor); err != nil {
		return respondValidationError(c, err)
	}

	if err := h.db.Save(&floor).Error; err != nil {
		h.log.Error().Err(err).Msg("Failed to update floor")
		return respondError(c, fiber.StatusInternalServerError, "Failed to update floor")
	}

	h.log.Info().Str("name", floor.Name).Msg("Floor updated")
	return respondData(c, fiber.StatusOK, floor)
}

func (h *Handler) deleteFloor(c *fiber.Ctx) error {
	var floor models.Floor
	if err := h.db.First(&floor, "id = ?", c.Params("id")).Error; err != nil {
		return respondStoreError(c, err, "Floor not found")
	}

	if err := h.db.Model(&floor).Update("is_active", false).Error; err != nil {
		h.log.Error().Err(err).Msg("Failed to delete floor")
		return respondError(c, fiber.StatusInternalServerError, "Failed to delete floor")
	}

	h.log.Info().Str("name", floor.Name).Msg("Floor deleted (soft)")
	return respondMessage(c, fiber.StatusOK, "Floor deleted successfully")
}
