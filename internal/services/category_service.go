package services

import (
	"math"

	"inventaris/internal/ledger"
	"inventaris/internal/models"
	"inventaris/internal/repositories"
)

// CategoryService handles business logic related to categories.
type CategoryService struct {
	categoryRepo repositories.CategoryRepository
	productRepo  repositories.ProductRepository
}

// NewCategoryService creates a new CategoryService.
func NewCategoryService(categoryRepo repositories.CategoryRepository, productRepo repositories.ProductRepository) *CategoryService {
	return &CategoryService{
		categoryRepo: categoryRepo,
		productRepo:  productRepo,
	}
}

// CategoryStats summarizes the products of one category.
type CategoryStats struct {
	TotalProducts int     `json:"totalProducts"`
	TotalStock    int     `json:"totalStock"`
	AveragePrice  float64 `json:"averagePrice"`
}

// ListCategories retrieves a page of categories with their products.
func (s *CategoryService) ListCategories(page, limit int) ([]models.Category, int64, error) {
	return s.categoryRepo.List(page, limit)
}

// GetCategoryByID retrieves a single category with its products.
func (s *CategoryService) GetCategoryByID(id string) (*models.Category, error) {
	return s.categoryRepo.GetByID(id)
}

// SearchCategories matches categories by name substring.
func (s *CategoryService) SearchCategories(term string, page, limit int) ([]models.Category, int64, error) {
	return s.categoryRepo.Search(term, page, limit)
}

// CreateCategory creates a new category.
func (s *CategoryService) CreateCategory(category *models.Category) error {
	return s.categoryRepo.Create(category)
}

// UpdateCategory updates an existing category.
func (s *CategoryService) UpdateCategory(category *models.Category) error {
	return s.categoryRepo.Update(category)
}

// DeleteCategory deletes a category. Deletion is refused while any product
// still references the category.
func (s *CategoryService) DeleteCategory(id string) error {
	if _, err := s.categoryRepo.GetByID(id); err != nil {
		return err
	}
	count, err := s.productRepo.CountByCategory(id)
	if err != nil {
		return err
	}
	if count > 0 {
		return ledger.Validationf("cannot delete category: %d products still reference it", count)
	}
	return s.categoryRepo.Delete(id)
}

// CategoryStats computes product count, total stock, and average price
// (rounded to 2 decimals) for one category.
func (s *CategoryService) CategoryStats(id string) (*models.Category, *CategoryStats, error) {
	category, err := s.categoryRepo.GetByID(id)
	if err != nil {
		return nil, nil, err
	}
	products, err := s.productRepo.GetByCategory(id)
	if err != nil {
		return nil, nil, err
	}

	stats := &CategoryStats{TotalProducts: len(products)}
	var priceSum float64
	for _, p := range products {
		stats.TotalStock += p.Stock
		priceSum += p.Price
	}
	if len(products) > 0 {
		stats.AveragePrice = math.Round(priceSum/float64(len(products))*100) / 100
	}
	return category, stats, nil
}
