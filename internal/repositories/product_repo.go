package repositories

import (
	"inventaris/internal/models"
)

// ProductRepository defines the interface for product data access. It is the
// single point of truth for stock: ApplyStockDelta performs the read-check-write
// as one atomic unit and fails with ledger.ErrInsufficientStock instead of
// clamping, so callers never race on the counter.
type ProductRepository interface {
	List(page, limit int) ([]models.Product, int64, error)
	GetByID(id string) (*models.Product, error)
	GetByCategory(categoryID string) ([]models.Product, error)
	Search(term string, page, limit int) ([]models.Product, int64, error)
	Create(product *models.Product) error
	Update(product *models.Product) error
	Delete(id string) error
	CountByCategory(categoryID string) (int64, error)

	// GetStock returns the current stock counter for a product.
	GetStock(id string) (int, error)
	// ApplyStockDelta atomically adds delta to the product's stock and returns
	// the new value. It fails with ledger.ErrInsufficientStock when the result
	// would be negative, leaving the stock unchanged.
	ApplyStockDelta(id string, delta int) (int, error)
}
