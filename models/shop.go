package models

import "time"

type Shop struct {
	ID           uint      `gorm:"primaryKey" json:"id"`
	Name         string    `json:"name" validate:"required"`
	Description  string    `json:"description"`
	CategoryID   uint      `json:"categoryId" validate:"required"`
	FloorID      uint      `json:"floorId" validate:"required"`
	Category     *Category `gorm:"foreignKey:CategoryID" json:"category,omitempty"`
	Floor        *Floor    `gorm:"foreignKey:FloorID" json:"floor,omitempty"`
	Location     string    `json:"location"`
	ShopNumber   string    `json:"shopNumber"`
	ContactPhone string    `json:"contactPhone"`
	ContactEmail string    `json:"contactEmail"`
	OpeningTime  string    `json:"openingTime"`
	ClosingTime  string    `json:"closingTime"`
	Image        string    `json:"image"`
	Rating       float64   `json:"rating" validate:"min=0,max=5"`
	TotalRatings int       `json:"totalRatings"`
	IsActive     bool      `json:"isActive"`
	CreatedAt    time.Time `gorm:"autoCreateTime" json:"createdAt"`
	UpdatedAt    time.Time `gorm:"autoUpdateTime" json:"updatedAt"`
}
