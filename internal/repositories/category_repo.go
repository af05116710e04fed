package repositories

import (
	"inventaris/internal/models"
)

// CategoryRepository defines the interface for category data access.
type CategoryRepository interface {
	List(page, limit int) ([]models.Category, int64, error)
	GetByID(id string) (*models.Category, error)
	Search(term string, page, limit int) ([]models.Category, int64, error)
	Create(category *models.Category) error
	Update(category *models.Category) error
	Delete(id string) error
}
