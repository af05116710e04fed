package repositories

import (
	"errors"
	"fmt"

	"inventaris/internal/ledger"
	"inventaris/internal/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GORMSupplierRepository is a GORM implementation of SupplierRepository.
type GORMSupplierRepository struct {
	db *gorm.DB
}

// NewGORMSupplierRepository creates a new instance of GORMSupplierRepository.
func NewGORMSupplierRepository(db *gorm.DB) *GORMSupplierRepository {
	return &GORMSupplierRepository{
		db: db,
	}
}

// List retrieves a page of suppliers.
func (r *GORMSupplierRepository) List(page, limit int) ([]models.Supplier, int64, error) {
	var suppliers []models.Supplier
	var total int64
	if err := r.db.Model(&models.Supplier{}).Count(&total).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to count suppliers: %w", err)
	}
	offset, limit := pageWindow(page, limit)
	if err := r.db.Offset(offset).Limit(limit).Find(&suppliers).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to list suppliers: %w", err)
	}
	return suppliers, total, nil
}

// GetByID retrieves a single supplier by its ID.
func (r *GORMSupplierRepository) GetByID(id string) (*models.Supplier, error) {
	var supplier models.Supplier
	if err := r.db.First(&supplier, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("supplier with ID %s: %w", id, ledger.ErrNotFound)
		}
		return nil, fmt.Errorf("failed to get supplier by ID %s: %w", id, err)
	}
	return &supplier, nil
}

// Search retrieves a page of suppliers matching the term on name, address,
// phone, or email.
func (r *GORMSupplierRepository) Search(term string, page, limit int) ([]models.Supplier, int64, error) {
	pattern := "%" + term + "%"
	query := r.db.Model(&models.Supplier{}).
		Where("name LIKE ? OR address LIKE ? OR phone LIKE ? OR email LIKE ?", pattern, pattern, pattern, pattern)

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to count supplier search results: %w", err)
	}

	var suppliers []models.Supplier
	offset, limit := pageWindow(page, limit)
	if err := query.Offset(offset).Limit(limit).Find(&suppliers).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to search suppliers: %w", err)
	}
	return suppliers, total, nil
}

// Create creates a new supplier in the database.
func (r *GORMSupplierRepository) Create(supplier *models.Supplier) error {
	if supplier.ID == "" {
		supplier.ID = uuid.New().String()
	}
	if err := r.db.Create(supplier).Error; err != nil {
		return fmt.Errorf("failed to create supplier: %w", err)
	}
	return nil
}

// Update updates an existing supplier in the database.
func (r *GORMSupplierRepository) Update(supplier *models.Supplier) error {
	res := r.db.Save(supplier)
	if res.Error != nil {
		return fmt.Errorf("failed to update supplier: %w", res.Error)
	}
	if res.RowsAffected == 0 {
		return fmt.Errorf("supplier with ID %s: %w", supplier.ID, ledger.ErrNotFound)
	}
	return nil
}

// Delete deletes a supplier by its ID from the database.
func (r *GORMSupplierRepository) Delete(id string) error {
	res := r.db.Delete(&models.Supplier{}, "id = ?", id)
	if res.Error != nil {
		return fmt.Errorf("failed to delete supplier: %w", res.Error)
	}
	if res.RowsAffected == 0 {
		return fmt.Errorf("supplier with ID %s: %w", id, ledger.ErrNotFound)
	}
	return nil
}
