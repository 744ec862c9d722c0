package routes

import (
	"supermall/models"

	"github.com/gofiber/fiber/v2"
)

func (h *Handler) listCategories(c *fiber.Ctx) error {
	var categories []models.Category
	if err := h.db.Where("is_active = ?", true).Order("sort_order ASC").Find(&categories).Error; err != nil {
		h.log.Error().Err(err).Msg("Failed to list categories")
		return respondError(c, fiber.StatusInternalServerError, "Failed to get categories")
	}
	return respondList(c, categories, len(categories))
}

func (h *Handler) getCategory(c *fiber.Ctx) error {
	var category models.Category
	if err := h.db.First(&category, "id = ?", c.Params("id")).Error; err != nil {
		return respondStoreError(c, err, "Category not found")
	}
	return respondData(c, fiber.StatusOK, category)
}

func (h *Handler) createCategory(c *fiber.Ctx) error {
	category := new(models.Category)
	if err := c.BodyParser(category); err != nil {
		return respondError(c, fiber.StatusBadRequest, "Failed to parse request body")
	}
	if category.Icon == "" {
		category.Icon = "🏪"
	}
	category.IsActive = true
	if err := h.validate.Struct(category); err != nil {
		return respondValidationError(c, err)
	}

	if err := h.db.Create(category).Error; err != nil {
		h.log.Error().Err(err).Msg("Failed to create category")
		return respondError(c, fiber.StatusInternalServerError, "Failed to create category")
	}

	h.log.Info().Str("name", category.Name).Msg("Category created")
	return respondData(c, fiber.StatusCreated, category)
}

func (h *Handler) updateCategory(c *fiber.Ctx) error {
	var category models.Category
	if err := h.db.First(&category, "id = ?", c.Params("id")).Error; err != nil {
		return respondStoreError(c, err, "Category not found")
	}

	id := category.ID
	if err := c.BodyParser(&category); err != nil {
		return respondError(c, fiber.StatusBadRequest, "Failed to parse request body")
	}
	category.ID = id
	if err := h.validate.Struct(&category); err != nil {
		return respondValidationError(c, err)
	}

	if err := h.db.Save(&category).Error; err != nil {
		h.log.Error().Err(err).Msg("Failed to update category")
		return respondError(c, fiber.StatusInternalServerError, "Failed to update category")
	}

	h.log.Info().Str("name", category.Name).Msg("Category updated")
	return respondData(c, fiber.StatusOK, category)
}

func (h *Handler) deleteCategory(c *fiber.Ctx) error {
	var category models.Category
	if err := h.db.First(&category, "id = ?", c.Params("id")).Error; err != nil {
		return respondStoreError(c, err, "Category not found")
	}

	if err := h.db.Model(&category).Update("is_active", false).Error; err != nil {
		h.log.Error().Err(err).Msg("Failed to delete category")
		return respondError(c, fiber.StatusInternalServerError, "Failed to delete category")
	}

	h.log.Info().Str("name", category.Name).Msg("Category deleted (soft)")
	return respondMessage(c, fiber.StatusOK, "Category deleted successfully")
}
