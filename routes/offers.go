package routes

import (
	"time"

	"supermall/models"

	"github.com/gofiber/fiber/v2"
)

type ApplyOfferRequest struct {
	ProductIDs []uint `json:"productIds"`
}

// listOffers returns active offers currently inside their date window.
func (h *Handler) listOffers(c *fiber.Ctx) error {
	now := time.Now()
	query := h.db.Preload("Shop").
		Where("is_active = ? AND start_date <= ? AND end_date >= ?", true, now, now)

	if shop := c.Query("shop"); shop != "" {
		query = query.Where("shop_id = ?", shop)
	}

	var offers []models.Offer
	if err := query.Order("created_at DESC").Find(&offers).Error; err != nil {
		h.log.Error().Err(err).Msg("Failed to list offers")
		return respondError(c, fiber.StatusInternalServerError, "Failed to get offers")
	}
	return respondList(c, offers, len(offers))
}

// listAllOffers is the admin view: every offer, active or not.
func (h *Handler) listAllOffers(c *fiber.Ctx) error {
	var offers []models.Offer
	if err := h.db.Preload("Shop").Order("created_at DESC").Find(&offers).Error; err != nil {
		h.log.Error().Err(err).Msg("Failed to list all offers")
		return respondError(c, fiber.StatusInternalServerError, "Failed to get offers")
	}
	return respondList(c, offers, len(offers))
}

func (h *Handler) getOffer(c *fiber.Ctx) error {
	var offer models.Offer
	if err := h.db.Preload("Shop").First(&offer, "id = ?", c.Params("id")).Error; err != nil {
		return respondStoreError(c, err, "Offer not found")
	}

	// Up to 10 active products carrying this offer ride along.
	var products []models.Product
	err := h.db.Preload("Category").Preload("Shop").
		Where("offer_id = ? AND is_active = ?", offer.ID, true).
		Limit(10).Find(&products).Error
	if err != nil {
		h.log.Error().Err(err).Msg("Failed to load offer products")
		return respondError(c, fiber.StatusInternalServerError, "Failed to get offer")
	}

	return respondData(c, fiber.StatusOK, struct {
		models.Offer
		Products []models.Product `json:"products"`
	}{Offer: offer, Products: products})
}

func (h *Handler) createOffer(c *fiber.Ctx) error {
	offer := new(models.Offer)
	if err := c.BodyParser(offer); err != nil {
		return respondError(c, fiber.StatusBadRequest, "Failed to parse request body")
	}
	if offer.DiscountType == "" {
		offer.DiscountType = "percentage"
	}
	offer.IsActive = true
	if err := h.validate.Struct(offer); err != nil {
		return respondValidationError(c, err)
	}

	if err := h.db.First(&models.Shop{}, offer.ShopID).Error; err != nil {
		return respondError(c, fiber.StatusBadRequest, "Shop not found")
	}

	if err := h.db.Create(offer).Error; err != nil {
		h.log.Error().Err(err).Msg("Failed to create offer")
		return respondError(c, fiber.StatusInternalServerError, "Failed to create offer")
	}

	h.log.Info().Str("title", offer.Title).Msg("Offer created")
	return respondData(c, fiber.StatusCreated, offer)
}

func (h *Handler) updateOffer(c *fiber.Ctx) error {
	var offer models.Offer
	if err := h.db.First(&offer, "id = ?", c.Params("id")).Error; err != nil {
		return respondStoreError(c, err, "Offer not found")
	}

	id := offer.ID
	if err := c.BodyParser(&offer); err != nil {
		return respondError(c, fiber.StatusBadRequest, "Failed to parse request body")
	}
	offer.ID = id
	if err := h.validate.Struct(&offer); err != nil {
		return respondValidationError(c, err)
	}

	if err := h.db.Save(&offer).Error; err != nil {
		h.log.Error().Err(err).Msg("Failed to update offer")
		return respondError(c, fiber.StatusInternalServerError, "Failed to update offer")
	}

	h.log.Info().Str("title", offer.Title).Msg("Offer updated")
	return respondData(c, fiber.StatusOK, offer)
}

// deleteOffer soft-deletes the offer and revokes it from every product
// pointing at it, keeping hasOffer/offer consistent.
func (h *Handler) deleteOffer(c *fiber.Ctx) error {
	var offer models.Offer
	if err := h.db.First(&offer, "id = ?", c.Params("id")).Error; err != nil {
		return respondStoreError(c, err, "Offer not found")
	}

	if err := h.db.Model(&offer).Update("is_active", false).Error; err != nil {
		h.log.Error().Err(err).Msg("Failed to delete offer")
		return respondError(c, fiber.StatusInternalServerError, "Failed to delete offer")
	}

	if err := h.revokeOfferFromProducts(offer.ID); err != nil {
		h.log.Error().Err(err).Msg("Failed to clear offer from products")
		return respondError(c, fiber.StatusInternalServerError, "Failed to delete offer")
	}

	h.log.Info().Str("title", offer.Title).Msg("Offer deleted (soft)")
	return respondMessage(c, fiber.StatusOK, "Offer deleted successfully")
}

func (h *Handler) applyOffer(c *fiber.Ctx) error {
	var req ApplyOfferRequest
	if err := c.BodyParser(&req); err != nil {
		return respondError(c, fiber.StatusBadRequest, "Failed to parse request body")
	}
	if len(req.ProductIDs) == 0 {
		return respondError(c, fiber.StatusBadRequest, "Please provide product IDs")
	}

	var offer models.Offer
	if err := h.db.First(&offer, "id = ?", c.Params("id")).Error; err != nil {
		return respondStoreError(c, err, "Offer not found")
	}

	if err := h.applyOfferToProducts(offer.ID, req.ProductIDs); err != nil {
		h.log.Error().Err(err).Msg("Failed to apply offer")
		return respondError(c, fiber.StatusInternalServerError, "Failed to apply offer")
	}

	h.log.Info().Str("title", offer.Title).Int("products", len(req.ProductIDs)).Msg("Offer applied")
	return respondMessage(c, fiber.StatusOK, "Offer applied successfully")
}

// applyOfferToProducts and revokeOfferFromProducts are the single
// authoritative implementation of the hasOffer/offer pairing. Ids that
// match no product are skipped without error; the bulk update is not
// atomic across rows.
func (h *Handler) applyOfferToProducts(offerID uint, productIDs []uint) error {
	return h.db.Model(&models.Product{}).Where("id IN ?", productIDs).
		Updates(map[string]interface{}{"has_offer": true, "offer_id": offerID}).Error
}

func (h *Handler) revokeOfferFromProducts(offerID uint) error {
	return h.db.Model(&models.Product{}).Where("offer_id = ?", offerID).
		Updates(map[string]interface{}{"has_offer": false, "offer_id": nil}).Error
}
