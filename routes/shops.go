package routes

import (
	"strings"

	"supermall/models"

	"github.com/gofiber/fiber/v2"
)

func (h *Handler) listShops(c *fiber.Ctx) error {
	query := h.db.Preload("Category").Preload("Floor").Where("is_active = ?", true)

	if category := c.Query("category"); category != "" {
		query = query.Where("category_id = ?", category)
	}
	if floor := c.Query("floor"); floor != "" {
		query = query.Where("floor_id = ?", floor)
	}
	if search := c.Query("search"); search != "" {
		query = query.Where("LOWER(name) LIKE ?", "%"+strings.ToLower(search)+"%")
	}

	var shops []models.Shop
	if err := query.Order("created_at DESC").Find(&shops).Error; err != nil {
		h.log.Error().Err(err).Msg("Failed to list shops")
		return respondError(c, fiber.StatusInternalServerError, "Failed to get shops")
	}
	return respondList(c, shops, len(shops))
}

func (h *Handler) listShopsByFloor(c *fiber.Ctx) error {
	var shops []models.Shop
	err := h.db.Preload("Category").Preload("Floor").
		Where("is_active = ? AND floor_id = ?", true, c.Params("floorId")).
		Order("created_at DESC").Find(&shops).Error
	if err != nil {
		h.log.Error().Err(err).Msg("Failed to list shops by floor")
		return respondError(c, fiber.StatusInternalServerError, "Failed to get shops")
	}
	return respondList(c, shops, len(shops))
}

func (h *Handler) listShopsByCategory(c *fiber.Ctx) error {
	var shops []models.Shop
	err := h.db.Preload("Category").Preload("Floor").
		Where("is_active = ? AND category_id = ?", true, c.Params("categoryId")).
		Order("created_at DESC").Find(&shops).Error
	if err != nil {
		h.log.Error().Err(err).Msg("Failed to list shops by category")
		return respondError(c, fiber.StatusInternalServerError, "Failed to get shops")
	}
	return respondList(c, shops, len(shops))
}

func (h *Handler) getShop(c *fiber.Ctx) error {
	var shop models.Shop
	if err := h.db.Preload("Category").Preload("Floor").First(&shop, "id = ?", c.Params("id")).Error; err != nil {
		return respondStoreError(c, err, "Shop not found")
	}
	return respondData(c, fiber.StatusOK, shop)
}

func (h *Handler) createShop(c *fiber.Ctx) error {
	shop := new(models.Shop)
	if err := c.BodyParser(shop); err != nil {
		return respondError(c, fiber.StatusBadRequest, "Failed to parse request body")
	}
	if shop.OpeningTime == "" {
		shop.OpeningTime = "10:00"
	}
	if shop.ClosingTime == "" {
		shop.ClosingTime = "21:00"
	}
	shop.IsActive = true
	if err := h.validate.Struct(shop); err != nil {
		return respondValidationError(c, err)
	}

	if err := h.db.First(&models.Category{}, shop.CategoryID).Error; err != nil {
		return respondError(c, fiber.StatusBadRequest, "Category not found")
	}
	if err := h.db.First(&models.Floor{}, shop.FloorID).Error; err != nil {
		return respondError(c, fiber.StatusBadRequest, "Floor not found")
	}

	if err := h.db.Create(shop).Error; err != nil {
		h.log.Error().Err(err).Msg("Failed to create shop")
		return respondError(c, fiber.StatusInternalServerError, "Failed to create shop")
	}

	h.log.Info().Str("name", shop.Name).Msg("Shop created")
	return respondData(c, fiber.StatusCreated, shop)
}

func (h *Handler) updateShop(c *fiber.Ctx) error {
	var shop models.Shop
	if err := h.db.First(&shop, "id = ?", c.Params("id")).Error; err != nil {
		return respondStoreError(c, err, "Shop not found")
	}

	id := shop.ID
	if err := c.BodyParser(&shop); err != nil {
		return respondError(c, fiber.StatusBadRequest, "Failed to parse request body")
	}
	shop.ID = id
	if err := h.validate.Struct(&shop); err != nil {
		return respondValidationError(c, err)
	}

	if err := h.db.First(&models.Category{}, shop.CategoryID).Error; err != nil {
		return respondError(c, fiber.StatusBadRequest, "Category not found")
	}
	if err := h.db.First(&models.Floor{}, shop.FloorID).Error; err != nil {
		return respondError(c, fiber.StatusBadRequest, "Floor not found")
	}

	if err := h.db.Save(&shop).Error; err != nil {
		h.log.Error().Err(err).Msg("Failed to update shop")
		return respondError(c, fiber.StatusInternalServerError, "Failed to update shop")
	}

	h.log.Info().Str("name", shop.Name).Msg("Shop updated")
	return respondData(c, fiber.StatusOK, shop)
}

func (h *Handler) deleteShop(c *fiber.Ctx) error {
	var shop models.Shop
	if err := h.db.First(&shop, "id = ?", c.Params("id")).Error; err != nil {
		return respondStoreError(c, err, "Shop not found")
	}

	if err := h.db.Model(&shop).Update("is_active", false).Error; err != nil {
		h.log.Error().Err(err).Msg("Failed to delete shop")
		return respondError(c, fiber.StatusInternalServerError, "Failed to delete shop")
	}

	h.log.Info().Str("name", shop.Name).Msg("Shop deleted (soft)")
	return respondMessage(c, fiber.StatusOK, "Shop deleted successfully")
}
