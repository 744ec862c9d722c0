package models

import (
	"time"

	"gorm.io/gorm"
)

type Offer struct {
	ID                 uint      `gorm:"primaryKey" json:"id"`
	Title              string    `json:"title" validate:"required"`
	Description        string    `json:"description"`
	DiscountType       string    `json:"discountType" validate:"omitempty,oneof=percentage fixed"`
	DiscountValue      float64   `json:"discountValue" validate:"min=0"`
	ShopID             uint      `json:"shopId" validate:"required"`
	Shop               *Shop     `gorm:"foreignKey:ShopID" json:"shop,omitempty"`
	StartDate          time.Time `json:"startDate" validate:"required"`
	EndDate            time.Time `json:"endDate" validate:"required"`
	IsActive           bool      `json:"isActive"`
	Image              string    `json:"image"`
	TermsAndConditions string    `json:"termsAndConditions"`
	MinPurchaseAmount  float64   `json:"minPurchaseAmount"`
	MaxDiscountAmount  float64   `json:"maxDiscountAmount"`
	CreatedAt          time.Time `gorm:"autoCreateTime" json:"createdAt"`

	// Derived, never stored.
	IsValid bool `gorm:"-" json:"isValid"`
}

// ValidAt reports whether the offer is running at the given instant.
func (o *Offer) ValidAt(now time.Time) bool {
	return o.IsActive && !now.Before(o.StartDate) && !now.After(o.EndDate)
}

func (o *Offer) AfterFind(*gorm.DB) error {
	o.IsValid = o.ValidAt(time.Now())
	return nil
}

func (o *Offer) AfterSave(*gorm.DB) error {
	o.IsValid = o.ValidAt(time.Now())
	return nil
}
