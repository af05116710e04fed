package services

import (
	"inventaris/internal/ledger"
	"inventaris/internal/models"
	"inventaris/internal/repositories"
)

// ProductService handles business logic related to products. Stock edits made
// here are administrative overrides; movement-driven stock changes go through
// LedgerService.
type ProductService struct {
	productRepo  repositories.ProductRepository
	categoryRepo repositories.CategoryRepository
}

// NewProductService creates a new ProductService.
func NewProductService(productRepo repositories.ProductRepository, categoryRepo repositories.CategoryRepository) *ProductService {
	return &ProductService{
		productRepo:  productRepo,
		categoryRepo: categoryRepo,
	}
}

// ListProducts retrieves a page of products with their categories.
func (s *ProductService) ListProducts(page, limit int) ([]models.Product, int64, error) {
	return s.productRepo.List(page, limit)
}

// GetProductByID retrieves a single product by its ID.
func (s *ProductService) GetProductByID(id string) (*models.Product, error) {
	return s.productRepo.GetByID(id)
}

// GetProductsByCategory retrieves all products in a category.
func (s *ProductService) GetProductsByCategory(categoryID string) ([]models.Product, error) {
	if _, err := s.categoryRepo.GetByID(categoryID); err != nil {
		return nil, err
	}
	return s.productRepo.GetByCategory(categoryID)
}

// SearchProducts matches products by name or brand substring.
func (s *ProductService) SearchProducts(term string, page, limit int) ([]models.Product, int64, error) {
	return s.productRepo.Search(term, page, limit)
}

// CreateProduct creates a new product after checking its category exists and
// its opening stock is not negative.
func (s *ProductService) CreateProduct(product *models.Product) error {
	if product.Stock < 0 {
		return ledger.Validationf("stock must not be negative")
	}
	if _, err := s.categoryRepo.GetByID(product.CategoryID); err != nil {
		return err
	}
	return s.productRepo.Create(product)
}

// UpdateProduct updates an existing product with the same checks as create.
func (s *ProductService) UpdateProduct(product *models.Product) error {
	if product.Stock < 0 {
		return ledger.Validationf("stock must not be negative")
	}
	if _, err := s.categoryRepo.GetByID(product.CategoryID); err != nil {
		return err
	}
	return s.productRepo.Update(product)
}

// DeleteProduct deletes a product by its ID.
func (s *ProductService) DeleteProduct(id string) error {
	return s.productRepo.Delete(id)
}
