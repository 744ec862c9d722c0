package models

import (
	"math"
	"time"

	"gorm.io/gorm"
)

type Product struct {
	ID             uint              `gorm:"primaryKey" json:"id"`
	Name           string            `json:"name" validate:"required"`
	Description    string            `json:"description"`
	Price          float64           `json:"price" validate:"min=0"`
	OriginalPrice  float64           `json:"originalPrice" validate:"min=0"`
	CategoryID     uint              `json:"categoryId" validate:"required"`
	ShopID         uint              `json:"shopId" validate:"required"`
	Category       *Category         `gorm:"foreignKey:CategoryID" json:"category,omitempty"`
	Shop           *Shop             `gorm:"foreignKey:ShopID" json:"shop,omitempty"`
	Image          string            `json:"image"`
	Images         []string          `gorm:"type:text;serializer:json" json:"images"`
	Specifications map[string]string `gorm:"type:text;serializer:json" json:"specifications"`
	Brand          string            `json:"brand"`
	Stock          int               `json:"stock" validate:"min=0"`
	IsActive       bool              `json:"isActive"`
	HasOffer       bool              `json:"hasOffer"`
	OfferID        *uint             `json:"offerId"`
	Offer          *Offer            `gorm:"foreignKey:OfferID" json:"offer,omitempty"`
	Rating         float64           `json:"rating" validate:"min=0,max=5"`
	TotalRatings   int               `json:"totalRatings"`
	CreatedAt      time.Time         `gorm:"autoCreateTime" json:"createdAt"`
	UpdatedAt      time.Time         `gorm:"autoUpdateTime" json:"updatedAt"`

	// Derived, never stored.
	DiscountPercentage int `gorm:"-" json:"discountPercentage"`
}

// DiscountPercentage computes the rounded discount for a price pair.
// Zero when there is no markdown.
func DiscountPercentage(price, originalPrice float64) int {
	if originalPrice > 0 && originalPrice > price {
		return int(math.Round((originalPrice - price) / originalPrice * 100))
	}
	return 0
}

func (p *Product) AfterFind(*gorm.DB) error {
	p.DiscountPercentage = DiscountPercentage(p.Price, p.OriginalPrice)
	return nil
}

func (p *Product) AfterSave(*gorm.DB) error {
	p.DiscountPercentage = DiscountPercentage(p.Price, p.OriginalPrice)
	return nil
}
