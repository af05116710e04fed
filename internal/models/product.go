package models

import "time"

// Product is a catalog item whose stock counter is mutated exclusively through
// the ledger service. Stock never goes below zero.
type Product struct {
	ID         string    `json:"id" gorm:"primaryKey;type:varchar(36)" validate:"omitempty,uuid"`
	Name       string    `json:"name" gorm:"type:varchar(255);not null" validate:"required,min=1,max=255"`
	Brand      string    `json:"brand" gorm:"type:varchar(255)" validate:"omitempty,max=255"`
	Stock      int       `json:"stock" validate:"gte=0"`
	Price      float64   `json:"price" gorm:"type:decimal(10,2);not null" validate:"required,gt=0"`
	CategoryID string    `json:"category_id" gorm:"type:varchar(36);not null;index" validate:"required"`
	Category   *Category `json:"category,omitempty" gorm:"foreignKey:CategoryID"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
}
