package models

import "time"

type Floor struct {
	ID          uint      `gorm:"primaryKey" json:"id"`
	Name        string    `gorm:"uniqueIndex" json:"name" validate:"required"`
	Number      int       `gorm:"uniqueIndex" json:"number"`
	Description string    `json:"description"`
	MapImage    string    `json:"mapImage"`
	IsActive    bool      `json:"isActive"`
	CreatedAt   time.Time `gorm:"autoCreateTime" json:"createdAt"`
}
