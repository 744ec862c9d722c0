package routes_test

import (
	"fmt"
	"net/http"
	"testing"
	"time"

	"supermall/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOfferPublicListOnlyRunningOffers(t *testing.T) {
	env := newTestEnv(t)
	_, _, shop := env.catalog(t)
	now := time.Now()

	env.createOffer(t, "Running", shop.ID, now.AddDate(0, 0, -1), now.AddDate(0, 0, 7))
	env.createOffer(t, "Expired", shop.ID, now.AddDate(0, 0, -14), now.AddDate(0, 0, -7))
	env.createOffer(t, "Upcoming", shop.ID, now.AddDate(0, 0, 7), now.AddDate(0, 0, 14))

	inactive := env.createOffer(t, "Disabled", shop.ID, now.AddDate(0, 0, -1), now.AddDate(0, 0, 7))
	require.NoError(t, env.db.Model(&inactive).Update("is_active", false).Error)

	resp := env.request(t, http.MethodGet, "/api/offers", nil, "")
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var offers []models.Offer
	env2 := decodeData(t, resp, &offers)
	require.Equal(t, 1, env2.Count)
	assert.Equal(t, "Running", offers[0].Title)
	assert.True(t, offers[0].IsValid)
	require.NotNil(t, offers[0].Shop, "shop reference is populated")
}

func TestOfferAdminListShowsEverything(t *testing.T) {
	env := newTestEnv(t)
	token := env.adminToken(t)
	_, _, shop := env.catalog(t)
	now := time.Now()

	env.createOffer(t, "Running", shop.ID, now.AddDate(0, 0, -1), now.AddDate(0, 0, 7))
	env.createOffer(t, "Expired", shop.ID, now.AddDate(0, 0, -14), now.AddDate(0, 0, -7))

	// Admin only.
	resp := env.request(t, http.MethodGet, "/api/offers/all", nil, "")
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)

	resp = env.request(t, http.MethodGet, "/api/offers/all", nil, token)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, 2, decode(t, resp).Count)
}

func TestOfferGetIncludesProducts(t *testing.T) {
	env := newTestEnv(t)
	category, _, shop := env.catalog(t)
	offer := env.createOffer(t, "Electronics Week", shop.ID,
		time.Now().AddDate(0, 0, -1), time.Now().AddDate(0, 0, 7))

	product := env.createProduct(t, "Galaxy S24", 999, category.ID, shop.ID)
	require.NoError(t, env.db.Model(&models.Product{}).Where("id = ?", product.ID).
		Updates(map[string]interface{}{"has_offer": true, "offer_id": offer.ID}).Error)

	resp := env.request(t, http.MethodGet, fmt.Sprintf("/api/offers/%d", offer.ID), nil, "")
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var fetched struct {
		models.Offer
		Products []models.Product `json:"products"`
	}
	decodeData(t, resp, &fetched)
	assert.Equal(t, "Electronics Week", fetched.Title)
	require.Len(t, fetched.Products, 1)
	assert.Equal(t, product.ID, fetched.Products[0].ID)
}

func TestOfferApply(t *testing.T) {
	env := newTestEnv(t)
	token := env.adminToken(t)
	category, _, shop := env.catalog(t)
	offer := env.createOffer(t, "Electronics Week", shop.ID,
		time.Now().AddDate(0, 0, -1), time.Now().AddDate(0, 0, 7))

	p1 := env.createProduct(t, "One", 100, category.ID, shop.ID)
	p2 := env.createProduct(t, "Two", 200, category.ID, shop.ID)
	p3 := env.createProduct(t, "Three", 300, category.ID, shop.ID)

	resp := env.request(t, http.MethodPost, fmt.Sprintf("/api/offers/%d/apply", offer.ID),
		map[string]interface{}{"productIds": []uint{p1.ID, p2.ID}}, token)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var updated models.Product
	require.NoError(t, env.db.First(&updated, p1.ID).Error)
	assert.True(t, updated.HasOffer)
	require.NotNil(t, updated.OfferID)
	assert.Equal(t, offer.ID, *updated.OfferID)

	updated = models.Product{}
	require.NoError(t, env.db.First(&updated, p2.ID).Error)
	assert.True(t, updated.HasOffer)

	// The untouched product stays untouched.
	updated = models.Product{}
	require.NoError(t, env.db.First(&updated, p3.ID).Error)
	assert.False(t, updated.HasOffer)
	assert.Nil(t, updated.OfferID)
}

func TestOfferApplyIgnoresUnknownProductIDs(t *testing.T) {
	env := newTestEnv(t)
	token := env.adminToken(t)
	category, _, shop := env.catalog(t)
	offer := env.createOffer(t, "Electronics Week", shop.ID,
		time.Now().AddDate(0, 0, -1), time.Now().AddDate(0, 0, 7))
	product := env.createProduct(t, "One", 100, category.ID, shop.ID)

	resp := env.request(t, http.MethodPost, fmt.Sprintf("/api/offers/%d/apply", offer.ID),
		map[string]interface{}{"productIds": []uint{product.ID, 9999}}, token)
	require.Equal(t, http.StatusOK, resp.StatusCode, "unknown ids are silently skipped")

	var updated models.Product
	require.NoError(t, env.db.First(&updated, product.ID).Error)
	assert.True(t, updated.HasOffer)
}

func TestOfferApplyBadRequests(t *testing.T) {
	env := newTestEnv(t)
	token := env.adminToken(t)
	_, _, shop := env.catalog(t)
	offer := env.createOffer(t, "Electronics Week", shop.ID,
		time.Now().AddDate(0, 0, -1), time.Now().AddDate(0, 0, 7))

	// Empty id list.
	resp := env.request(t, http.MethodPost, fmt.Sprintf("/api/offers/%d/apply", offer.ID),
		map[string]interface{}{"productIds": []uint{}}, token)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)

	// Missing offer.
	resp = env.request(t, http.MethodPost, "/api/offers/9999/apply",
		map[string]interface{}{"productIds": []uint{1}}, token)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}

func TestOfferDeleteRevokesFromProducts(t *testing.T) {
	env := newTestEnv(t)
	token := env.adminToken(t)
	category, _, shop := env.catalog(t)
	offer := env.createOffer(t, "Electronics Week", shop.ID,
		time.Now().AddDate(0, 0, -1), time.Now().AddDate(0, 0, 7))

	p1 := env.createProduct(t, "One", 100, category.ID, shop.ID)
	p2 := env.createProduct(t, "Two", 200, category.ID, shop.ID)
	require.NoError(t, env.db.Model(&models.Product{}).Where("id IN ?", []uint{p1.ID, p2.ID}).
		Updates(map[string]interface{}{"has_offer": true, "offer_id": offer.ID}).Error)

	resp := env.request(t, http.MethodDelete, fmt.Sprintf("/api/offers/%d", offer.ID), nil, token)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var fetchedOffer models.Offer
	require.NoError(t, env.db.First(&fetchedOffer, offer.ID).Error)
	assert.False(t, fetchedOffer.IsActive, "offer is soft-deleted, not removed")

	for _, id := range []uint{p1.ID, p2.ID} {
		var product models.Product
		require.NoError(t, env.db.First(&product, id).Error)
		assert.False(t, product.HasOffer)
		assert.Nil(t, product.OfferID)
	}

	// Deleting again is a no-op.
	resp = env.request(t, http.MethodDelete, fmt.Sprintf("/api/offers/%d", offer.ID), nil, token)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
}

func TestOfferCreateValidation(t *testing.T) {
	env := newTestEnv(t)
	token := env.adminToken(t)
	_, _, shop := env.catalog(t)

	// Missing dates.
	resp := env.request(t, http.MethodPost, "/api/offers", map[string]interface{}{
		"title":         "Broken",
		"discountValue": 10,
		"shopId":        shop.ID,
	}, token)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)

	// Bad discount type.
	resp = env.request(t, http.MethodPost, "/api/offers", map[string]interface{}{
		"title":         "Broken",
		"discountType":  "bogus",
		"discountValue": 10,
		"shopId":        shop.ID,
		"startDate":     time.Now(),
		"endDate":       time.Now().AddDate(0, 0, 7),
	}, token)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}
