package services

import (
	"inventaris/internal/models"
	"inventaris/internal/repositories"
)

// SupplierService handles business logic related to suppliers.
type SupplierService struct {
	repo repositories.SupplierRepository
}

// NewSupplierService creates a new SupplierService.
func NewSupplierService(repo repositories.SupplierRepository) *SupplierService {
	return &SupplierService{
		repo: repo,
	}
}

// ListSuppliers retrieves a page of suppliers.
func (s *SupplierService) ListSuppliers(page, limit int) ([]models.Supplier, int64, error) {
	return s.repo.List(page, limit)
}

// GetSupplierByID retrieves a single supplier by its ID.
func (s *SupplierService) GetSupplierByID(id string) (*models.Supplier, error) {
	return s.repo.GetByID(id)
}

// SearchSuppliers matches suppliers by name, address, phone, or email substring.
func (s *SupplierService) SearchSuppliers(term string, page, limit int) ([]models.Supplier, int64, error) {
	return s.repo.Search(term, page, limit)
}

// CreateSupplier creates a new supplier.
func (s *SupplierService) CreateSupplier(supplier *models.Supplier) error {
	return s.repo.Create(supplier)
}

// UpdateSupplier updates an existing supplier.
func (s *SupplierService) UpdateSupplier(supplier *models.Supplier) error {
	return s.repo.Update(supplier)
}

// DeleteSupplier deletes a supplier by its ID.
func (s *SupplierService) DeleteSupplier(id string) error {
	return s.repo.Delete(id)
}
