package models

import "time"

// Category groups products. A category cannot be deleted while any product
// still references it.
type Category struct {
	ID        string    `json:"id" gorm:"primaryKey;type:varchar(36)" validate:"omitempty,uuid"`
	Name      string    `json:"name" gorm:"type:varchar(255);not null" validate:"required,min=1,max=255"`
	Products  []Product `json:"products,omitempty" gorm:"foreignKey:CategoryID"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
