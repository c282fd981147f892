package models

import (
	"time"

	"gorm.io/gorm"
)

type Product struct {
	ID          uint             `gorm:"primaryKey;autoIncrement" json:"id"`
	Name        string           `gorm:"not null" json:"name"`
	Description string           `json:"description"`
	Details     string           `json:"details"`
	Price       float64          `gorm:"not null" json:"price"` // Base price, used when no package is selected
	Image       string           `json:"image"`                 // Bare storage path, resolved to a URL by the storage bucket
	Stock       int              `json:"stock"`
	Sequence    int              `gorm:"default:0;index" json:"sequence"` // Admin-controlled display order
	CategoryID  *uint            `json:"category_id"`
	Category    *Category        `json:"category,omitempty"`
	Packages    []ProductPackage `gorm:"foreignKey:ProductID;constraint:OnDelete:CASCADE" json:"packages"`
	CreatedAt   time.Time        `json:"created_at"`
	UpdatedAt   time.Time        `json:"updated_at"`
	DeletedAt   gorm.DeletedAt   `gorm:"index" json:"-"`
}

// ProductPackage is a purchasable variant of a product with its own price.
type ProductPackage struct {
	ID        string  `gorm:"primaryKey" json:"id"`
	ProductID uint    `gorm:"index" json:"product_id"`
	Name      string  `gorm:"not null" json:"name"`
	Price     float64 `gorm:"not null" json:"price"`
}
