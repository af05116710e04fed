package repositories

import (
	"errors"
	"fmt"

	"inventaris/internal/ledger"
	"inventaris/internal/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GORMProductRepository is a GORM implementation of ProductRepository.
type GORMProductRepository struct {
	db *gorm.DB
}

// NewGORMProductRepository creates a new instance of GORMProductRepository.
func NewGORMProductRepository(db *gorm.DB) *GORMProductRepository {
	return &GORMProductRepository{
		db: db,
	}
}

// List retrieves a page of products with their categories preloaded.
func (r *GORMProductRepository) List(page, limit int) ([]models.Product, int64, error) {
	var products []models.Product
	var total int64
	if err := r.db.Model(&models.Product{}).Count(&total).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to count products: %w", err)
	}
	offset, limit := pageWindow(page, limit)
	if err := r.db.Preload("Category").Offset(offset).Limit(limit).Find(&products).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to list products: %w", err)
	}
	return products, total, nil
}

// GetByID retrieves a single product by its ID with its category preloaded.
func (r *GORMProductRepository) GetByID(id string) (*models.Product, error) {
	var product models.Product
	if err := r.db.Preload("Category").First(&product, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("product with ID %s: %w", id, ledger.ErrNotFound)
		}
		return nil, fmt.Errorf("failed to get product by ID %s: %w", id, err)
	}
	return &product, nil
}

// GetByCategory retrieves all products belonging to a category.
func (r *GORMProductRepository) GetByCategory(categoryID string) ([]models.Product, error) {
	var products []models.Product
	if err := r.db.Preload("Category").Find(&products, "category_id = ?", categoryID).Error; err != nil {
		return nil, fmt.Errorf("failed to get products for category %s: %w", categoryID, err)
	}
	return products, nil
}

// Search retrieves a page of products whose name or brand contains the term.
func (r *GORMProductRepository) Search(term string, page, limit int) ([]models.Product, int64, error) {
	pattern := "%" + term + "%"
	query := r.db.Model(&models.Product{}).Where("name LIKE ? OR brand LIKE ?", pattern, pattern)

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to count product search results: %w", err)
	}

	var products []models.Product
	offset, limit := pageWindow(page, limit)
	if err := query.Preload("Category").Offset(offset).Limit(limit).Find(&products).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to search products: %w", err)
	}
	return products, total, nil
}

// Create creates a new product in the database.
func (r *GORMProductRepository) Create(product *models.Product) error {
	if product.ID == "" {
		product.ID = uuid.New().String()
	}
	if err := r.db.Create(product).Error; err != nil {
		return fmt.Errorf("failed to create product: %w", err)
	}
	return nil
}

// Update updates an existing product in the database.
func (r *GORMProductRepository) Update(product *models.Product) error {
	res := r.db.Save(product)
	if res.Error != nil {
		return fmt.Errorf("failed to update product: %w", res.Error)
	}
	if res.RowsAffected == 0 {
		return fmt.Errorf("product with ID %s: %w", product.ID, ledger.ErrNotFound)
	}
	return nil
}

// Delete deletes a product by its ID from the database.
func (r *GORMProductRepository) Delete(id string) error {
	res := r.db.Delete(&models.Product{}, "id = ?", id)
	if res.Error != nil {
		return fmt.Errorf("failed to delete product: %w", res.Error)
	}
	if res.RowsAffected == 0 {
		return fmt.Errorf("product with ID %s: %w", id, ledger.ErrNotFound)
	}
	return nil
}

// CountByCategory returns the number of products referencing a category.
func (r *GORMProductRepository) CountByCategory(categoryID string) (int64, error) {
	var count int64
	if err := r.db.Model(&models.Product{}).Where("category_id = ?", categoryID).Count(&count).Error; err != nil {
		return 0, fmt.Errorf("failed to count products for category %s: %w", categoryID, err)
	}
	return count, nil
}

// GetStock returns the current stock counter for a product.
func (r *GORMProductRepository) GetStock(id string) (int, error) {
	var product models.Product
	if err := r.db.Select("stock").First(&product, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return 0, fmt.Errorf("product with ID %s: %w", id, ledger.ErrNotFound)
		}
		return 0, fmt.Errorf("failed to get stock for product %s: %w", id, err)
	}
	return product.Stock, nil
}

// ApplyStockDelta adds delta to the product's stock as a single conditional
// UPDATE, so concurrent adjustments to the same product serialize at the
// database and the counter can never go negative.
func (r *GORMProductRepository) ApplyStockDelta(id string, delta int) (int, error) {
	var stock int
	err := r.db.Transaction(func(tx *gorm.DB) error {
		res := tx.Model(&models.Product{}).
			Where("id = ? AND stock + ? >= 0", id, delta).
			Update("stock", gorm.Expr("stock + ?", delta))
		if res.Error != nil {
			return fmt.Errorf("failed to adjust stock for product %s: %w", id, res.Error)
		}
		if res.RowsAffected == 0 {
			// Zero rows means either the product is missing or the guard
			// rejected a negative result; tell the two apart.
			var count int64
			if err := tx.Model(&models.Product{}).Where("id = ?", id).Count(&count).Error; err != nil {
				return fmt.Errorf("failed to check product %s: %w", id, err)
			}
			if count == 0 {
				return fmt.Errorf("product with ID %s: %w", id, ledger.ErrNotFound)
			}
			return fmt.Errorf("product %s: %w", id, ledger.ErrInsufficientStock)
		}

		var product models.Product
		if err := tx.Select("stock").First(&product, "id = ?", id).Error; err != nil {
			return fmt.Errorf("failed to read stock for product %s: %w", id, err)
		}
		stock = product.Stock
		return nil
	})
	if err != nil {
		return 0, err
	}
	return stock, nil
}
