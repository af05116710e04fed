package repositories

import (
	"errors"
	"fmt"

	"inventaris/internal/ledger"
	"inventaris/internal/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GORMCategoryRepository is a GORM implementation of CategoryRepository.
type GORMCategoryRepository struct {
	db *gorm.DB
}

// NewGORMCategoryRepository creates a new instance of GORMCategoryRepository.
func NewGORMCategoryRepository(db *gorm.DB) *GORMCategoryRepository {
	return &GORMCategoryRepository{
		db: db,
	}
}

// List retrieves a page of categories with their products preloaded.
func (r *GORMCategoryRepository) List(page, limit int) ([]models.Category, int64, error) {
	var categories []models.Category
	var total int64
	if err := r.db.Model(&models.Category{}).Count(&total).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to count categories: %w", err)
	}
	offset, limit := pageWindow(page, limit)
	if err := r.db.Preload("Products").Offset(offset).Limit(limit).Find(&categories).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to list categories: %w", err)
	}
	return categories, total, nil
}

// GetByID retrieves a single category by its ID with its products preloaded.
func (r *GORMCategoryRepository) GetByID(id string) (*models.Category, error) {
	var category models.Category
	if err := r.db.Preload("Products").First(&category, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("category with ID %s: %w", id, ledger.ErrNotFound)
		}
		return nil, fmt.Errorf("failed to get category by ID %s: %w", id, err)
	}
	return &category, nil
}

// Search retrieves a page of categories whose name contains the term.
func (r *GORMCategoryRepository) Search(term string, page, limit int) ([]models.Category, int64, error) {
	pattern := "%" + term + "%"
	query := r.db.Model(&models.Category{}).Where("name LIKE ?", pattern)

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to count category search results: %w", err)
	}

	var categories []models.Category
	offset, limit := pageWindow(page, limit)
	if err := query.Preload("Products").Offset(offset).Limit(limit).Find(&categories).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to search categories: %w", err)
	}
	return categories, total, nil
}

// Create creates a new category in the database.
func (r *GORMCategoryRepository) Create(category *models.Category) error {
	if category.ID == "" {
		category.ID = uuid.New().String()
	}
	if err := r.db.Create(category).Error; err != nil {
		return fmt.Errorf("failed to create category: %w", err)
	}
	return nil
}

// Update updates an existing category in the database.
func (r *GORMCategoryRepository) Update(category *models.Category) error {
	res := r.db.Save(category)
	if res.Error != nil {
		return fmt.Errorf("failed to update category: %w", res.Error)
	}
	if res.RowsAffected == 0 {
		return fmt.Errorf("category with ID %s: %w", category.ID, ledger.ErrNotFound)
	}
	return nil
}

// Delete deletes a category by its ID from the database.
func (r *GORMCategoryRepository) Delete(id string) error {
	res := r.db.Delete(&models.Category{}, "id = ?", id)
	if res.Error != nil {
		return fmt.Errorf("failed to delete category: %w", res.Error)
	}
	if res.RowsAffected == 0 {
		return fmt.Errorf("category with ID %s: %w", id, ledger.ErrNotFound)
	}
	return nil
}
