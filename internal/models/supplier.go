package models

import "time"

// Supplier is a plain address-book entry; it has no relation to stock.
type Supplier struct {
	ID        string    `json:"id" gorm:"primaryKey;type:varchar(36)" validate:"omitempty,uuid"`
	Name      string    `json:"name" gorm:"type:varchar(255);not null" validate:"required,min=1,max=255"`
	Address   string    `json:"address" gorm:"type:varchar(500)" validate:"omitempty,max=500"`
	Phone     string    `json:"phone" gorm:"type:varchar(50)" validate:"omitempty,max=50"`
	Email     string    `json:"email" gorm:"type:varchar(255)" validate:"omitempty,email"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
