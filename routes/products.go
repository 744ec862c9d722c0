package routes

import (
	"strconv"
	"strings"
	"time"

	"supermall/models"

	"github.com/gofiber/fiber/v2"
)

func (h *Handler) listProducts(c *fiber.Ctx) error {
	query := h.db.Preload("Category").Preload("Shop").Preload("Offer").Where("is_active = ?", true)

	if category := c.Query("category"); category != "" {
		query = query.Where("category_id = ?", category)
	}
	if shop := c.Query("shop"); shop != "" {
		query = query.Where("shop_id = ?", shop)
	}
	if hasOffer := c.Query("hasOffer"); hasOffer != "" {
		if value, err := strconv.ParseBool(hasOffer); err == nil {
			query = query.Where("has_offer = ?", value)
		}
	}
	if search := c.Query("search"); search != "" {
		query = query.Where("LOWER(name) LIKE ?", "%"+strings.ToLower(search)+"%")
	}
	if brand := c.Query("brand"); brand != "" {
		query = query.Where("LOWER(brand) LIKE ?", "%"+strings.ToLower(brand)+"%")
	}
	if minPrice := c.Query("minPrice"); minPrice != "" {
		if value, err := strconv.ParseFloat(minPrice, 64); err == nil {
			query = query.Where("price >= ?", value)
		}
	}
	if maxPrice := c.Query("maxPrice"); maxPrice != "" {
		if value, err := strconv.ParseFloat(maxPrice, 64); err == nil {
			query = query.Where("price <= ?", value)
		}
	}

	switch c.Query("sort") {
	case "price_asc":
		query = query.Order("price ASC")
	case "price_desc":
		query = query.Order("price DESC")
	case "rating":
		query = query.Order("rating DESC")
	case "name":
		query = query.Order("name ASC")
	default:
		query = query.Order("created_at DESC")
	}

	var products []models.Product
	if err := query.Find(&products).Error; err != nil {
		h.log.Error().Err(err).Msg("Failed to list products")
		return respondError(c, fiber.StatusInternalServerError, "Failed to get products")
	}
	return respondList(c, products, len(products))
}

// listProductsWithOffers returns active products whose linked offer is
// currently running.
func (h *Handler) listProductsWithOffers(c *fiber.Ctx) error {
	var products []models.Product
	err := h.db.Preload("Category").Preload("Shop").Preload("Offer").
		Where("is_active = ? AND has_offer = ?", true, true).
		Order("created_at DESC").Find(&products).Error
	if err != nil {
		h.log.Error().Err(err).Msg("Failed to list products with offers")
		return respondError(c, fiber.StatusInternalServerError, "Failed to get products")
	}

	now := time.Now()
	valid := make([]models.Product, 0, len(products))
	for _, product := range products {
		if product.Offer != nil && product.Offer.ValidAt(now) {
			valid = append(valid, product)
		}
	}
	return respondList(c, valid, len(valid))
}

func (h *Handler) compareProducts(c *fiber.Ctx) error {
	raw := strings.Split(c.Query("ids"), ",")
	ids := make([]uint, 0, len(raw))
	for _, part := range raw {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		if id, err := strconv.ParseUint(part, 10, 64); err == nil {
			ids = append(ids, uint(id))
		}
	}

	if len(ids) < 2 || len(ids) > 4 {
		return respondError(c, fiber.StatusBadRequest, "Please provide 2 to 4 product IDs to compare")
	}

	var products []models.Product
	err := h.db.Preload("Category").Preload("Shop").Preload("Offer").
		Where("is_active = ? AND id IN ?", true, ids).Find(&products).Error
	if err != nil {
		h.log.Error().Err(err).Msg("Failed to compare products")
		return respondError(c, fiber.StatusInternalServerError, "Failed to get products")
	}
	return respondList(c, products, len(products))
}

func (h *Handler) getProduct(c *fiber.Ctx) error {
	var product models.Product
	err := h.db.Preload("Category").Preload("Shop").Preload("Offer").
		First(&product, "id = ?", c.Params("id")).Error
	if err != nil {
		return respondStoreError(c, err, "Product not found")
	}
	return respondData(c, fiber.StatusOK, product)
}

func (h *Handler) createProduct(c *fiber.Ctx) error {
	product := new(models.Product)
	if err := c.BodyParser(product); err != nil {
		return respondError(c, fiber.StatusBadRequest, "Failed to parse request body")
	}
	product.IsActive = true
	if err := h.validate.Struct(product); err != nil {
		return respondValidationError(c, err)
	}

	if err := h.db.First(&models.Category{}, product.CategoryID).Error; err != nil {
		return respondError(c, fiber.StatusBadRequest, "Category not found")
	}
	if err := h.db.First(&models.Shop{}, product.ShopID).Error; err != nil {
		return respondError(c, fiber.StatusBadRequest, "Shop not found")
	}

	if err := h.db.Create(product).Error; err != nil {
		h.log.Error().Err(err).Msg("Failed to create product")
		return respondError(c, fiber.StatusInternalServerError, "Failed to create product")
	}

	h.log.Info().Str("name", product.Name).Msg("Product created")
	return respondData(c, fiber.StatusCreated, product)
}

func (h *Handler) updateProduct(c *fiber.Ctx) error {
	var product models.Product
	if err := h.db.First(&product, "id = ?", c.Params("id")).Error; err != nil {
		return respondStoreError(c, err, "Product not found")
	}

	id := product.ID
	if err := c.BodyParser(&product); err != nil {
		return respondError(c, fiber.StatusBadRequest, "Failed to parse request body")
	}
	product.ID = id
	if err := h.validate.Struct(&product); err != nil {
		return respondValidationError(c, err)
	}

	if err := h.db.First(&models.Category{}, product.CategoryID).Error; err != nil {
		return respondError(c, fiber.StatusBadRequest, "Category not found")
	}
	if err := h.db.First(&models.Shop{}, product.ShopID).Error; err != nil {
		return respondError(c, fiber.StatusBadRequest, "Shop not found")
	}

	if err := h.db.Save(&product).Error; err != nil {
		h.log.Error().Err(err).Msg("Failed to update product")
		return respondError(c, fiber.StatusInternalServerError, "Failed to update product")
	}

	h.log.Info().Str("name", product.Name).Msg("Product updated")
	return respondData(c, fiber.StatusOK, product)
}

func (h *Handler) deleteProduct(c *fiber.Ctx) error {
	var product models.Product
	if err := h.db.First(&product, "id = ?", c.Params("id")).Error; err != nil {
		return respondStoreError(c, err, "Product not found")
	}

	if err := h.db.Model(&product).Update("is_active", false).Error; err != nil {
		h.log.Error().Err(err).Msg("Failed to delete product")
		return respondError(c, fiber.StatusInternalServerError, "Failed to delete product")
	}

	h.log.Info().Str("name", product.Name).Msg("Product deleted (soft)")
	return respondMessage(c, fiber.StatusOK, "Product deleted successfully")
}
