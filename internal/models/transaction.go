package models

import (
	"time"

	"inventaris/internal/ledger"
)

// Transaction records a single stock movement for a product. Its stock effect
// is computed from its own (type, quantity) pair, never replayed from history,
// so every mutation must go through the ledger service.
type Transaction struct {
	ID        string              `json:"id" gorm:"primaryKey;type:varchar(36)" validate:"omitempty,uuid"`
	ProductID string              `json:"product_id" gorm:"type:varchar(36);not null;index" validate:"required"`
	Product   *Product            `json:"product,omitempty" gorm:"foreignKey:ProductID"`
	Type      ledger.MovementType `json:"type" gorm:"type:varchar(10);not null" validate:"required,oneof=IN OUT"`
	Quantity  int                 `json:"quantity" gorm:"not null" validate:"required,gt=0"`
	Note      string              `json:"note" gorm:"type:varchar(500)" validate:"omitempty,max=500"`
	CreatedAt time.Time           `json:"created_at"`
	UpdatedAt time.Time           `json:"updated_at"`
}
