package repositories

import (
	"fmt"
	"strings"
	"sync"

	"inventaris/internal/ledger"
	"inventaris/internal/models"

	"github.com/google/uuid"
)

// MockProductRepository is an in-memory implementation of ProductRepository.
type MockProductRepository struct {
	products map[string]models.Product
	mu       sync.RWMutex
}

// NewMockProductRepository creates a new instance of MockProductRepository.
func NewMockProductRepository() *MockProductRepository {
	return &MockProductRepository{
		products: make(map[string]models.Product),
	}
}

// List returns a page of products.
func (r *MockProductRepository) List(page, limit int) ([]models.Product, int64, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	all := make([]models.Product, 0, len(r.products))
	for _, p := range r.products {
		all = append(all, p)
	}
	return pageSlice(all, page, limit), int64(len(all)), nil
}

// GetByID returns a product by its ID.
func (r *MockProductRepository) GetByID(id string) (*models.Product, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	product, ok := r.products[id]
	if !ok {
		return nil, fmt.Errorf("product with ID %s: %w", id, ledger.ErrNotFound)
	}
	return &product, nil
}

// GetByCategory returns all products in a category.
func (r *MockProductRepository) GetByCategory(categoryID string) ([]models.Product, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var matched []models.Product
	for _, p := range r.products {
		if p.CategoryID == categoryID {
			matched = append(matched, p)
		}
	}
	return matched, nil
}

// Search returns a page of products matching the term on name or brand.
func (r *MockProductRepository) Search(term string, page, limit int) ([]models.Product, int64, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	needle := strings.ToLower(term)
	var matched []models.Product
	for _, p := range r.products {
		if strings.Contains(strings.ToLower(p.Name), needle) ||
			strings.Contains(strings.ToLower(p.Brand), needle) {
			matched = append(matched, p)
		}
	}
	return pageSlice(matched, page, limit), int64(len(matched)), nil
}

// Create adds a new product.
func (r *MockProductRepository) Create(product *models.Product) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if product.ID == "" {
		product.ID = uuid.New().String()
	}
	r.products[product.ID] = *product
	return nil
}

// Update modifies an existing product.
func (r *MockProductRepository) Update(product *models.Product) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.products[product.ID]; !ok {
		return fmt.Errorf("product with ID %s: %w", product.ID, ledger.ErrNotFound)
	}
	r.products[product.ID] = *product
	return nil
}

// Delete removes a product by its ID.
func (r *MockProductRepository) Delete(id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.products[id]; !ok {
		return fmt.Errorf("product with ID %s: %w", id, ledger.ErrNotFound)
	}
	delete(r.products, id)
	return nil
}

// CountByCategory returns the number of products referencing a category.
func (r *MockProductRepository) CountByCategory(categoryID string) (int64, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var count int64
	for _, p := range r.products {
		if p.CategoryID == categoryID {
			count++
		}
	}
	return count, nil
}

// GetStock returns the current stock counter for a product.
func (r *MockProductRepository) GetStock(id string) (int, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	product, ok := r.products[id]
	if !ok {
		return 0, fmt.Errorf("product with ID %s: %w", id, ledger.ErrNotFound)
	}
	return product.Stock, nil
}

// ApplyStockDelta adjusts the stock counter under the write lock, rejecting
// any delta that would make it negative.
func (r *MockProductRepository) ApplyStockDelta(id string, delta int) (int, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	product, ok := r.products[id]
	if !ok {
		return 0, fmt.Errorf("product with ID %s: %w", id, ledger.ErrNotFound)
	}
	if product.Stock+delta < 0 {
		return 0, fmt.Errorf("product %s: %w", id, ledger.ErrInsufficientStock)
	}
	product.Stock += delta
	r.products[id] = product
	return product.Stock, nil
}

// pageSlice applies page/limit windowing to an in-memory result set.
func pageSlice[T any](items []T, page, limit int) []T {
	offset, limit := pageWindow(page, limit)
	if offset >= len(items) {
		return []T{}
	}
	end := offset + limit
	if end > len(items) {
		end = len(items)
	}
	return items[offset:end]
}
