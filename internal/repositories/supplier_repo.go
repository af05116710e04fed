package repositories

import (
	"inventaris/internal/models"
)

// SupplierRepository defines the interface for supplier data access.
type SupplierRepository interface {
	List(page, limit int) ([]models.Supplier, int64, error)
	GetByID(id string) (*models.Supplier, error)
	Search(term string, page, limit int) ([]models.Supplier, int64, error)
	Create(supplier *models.Supplier) error
	Update(supplier *models.Supplier) error
	Delete(id string) error
}
