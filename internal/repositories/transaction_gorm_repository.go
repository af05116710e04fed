package repositories

import (
	"errors"
	"fmt"
	"time"

	"inventaris/internal/ledger"
	"inventaris/internal/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GORMTransactionRepository is a GORM implementation of TransactionRepository.
type GORMTransactionRepository struct {
	db *gorm.DB
}

// NewGORMTransactionRepository creates a new instance of GORMTransactionRepository.
func NewGORMTransactionRepository(db *gorm.DB) *GORMTransactionRepository {
	return &GORMTransactionRepository{
		db: db,
	}
}

// List retrieves a page of transactions, newest first, with products
// preloaded. An empty movement type disables the filter.
func (r *GORMTransactionRepository) List(page, limit int, movementType ledger.MovementType) ([]models.Transaction, int64, error) {
	query := r.db.Model(&models.Transaction{})
	if movementType != "" {
		query = query.Where("type = ?", movementType)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to count transactions: %w", err)
	}

	var transactions []models.Transaction
	offset, limit := pageWindow(page, limit)
	if err := query.Preload("Product").Order("created_at DESC").
		Offset(offset).Limit(limit).Find(&transactions).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to list transactions: %w", err)
	}
	return transactions, total, nil
}

// GetByID retrieves a single transaction by its ID with its product preloaded.
func (r *GORMTransactionRepository) GetByID(id string) (*models.Transaction, error) {
	var transaction models.Transaction
	if err := r.db.Preload("Product").First(&transaction, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("transaction with ID %s: %w", id, ledger.ErrNotFound)
		}
		return nil, fmt.Errorf("failed to get transaction by ID %s: %w", id, err)
	}
	return &transaction, nil
}

// GetByProduct retrieves all transactions for a product, newest first.
func (r *GORMTransactionRepository) GetByProduct(productID string) ([]models.Transaction, error) {
	var transactions []models.Transaction
	if err := r.db.Preload("Product").Order("created_at DESC").
		Find(&transactions, "product_id = ?", productID).Error; err != nil {
		return nil, fmt.Errorf("failed to get transactions for product %s: %w", productID, err)
	}
	return transactions, nil
}

// ListBetween retrieves all transactions within the optional date bounds.
func (r *GORMTransactionRepository) ListBetween(from, to *time.Time) ([]models.Transaction, error) {
	query := r.db.Preload("Product")
	if from != nil {
		query = query.Where("created_at >= ?", *from)
	}
	if to != nil {
		query = query.Where("created_at <= ?", *to)
	}

	var transactions []models.Transaction
	if err := query.Find(&transactions).Error; err != nil {
		return nil, fmt.Errorf("failed to list transactions by date: %w", err)
	}
	return transactions, nil
}

// Search retrieves a page of transactions whose product name or note contains
// the term.
func (r *GORMTransactionRepository) Search(term string, page, limit int) ([]models.Transaction, int64, error) {
	pattern := "%" + term + "%"
	query := r.db.Model(&models.Transaction{}).
		Joins("JOIN products ON products.id = transactions.product_id").
		Where("products.name LIKE ? OR transactions.note LIKE ?", pattern, pattern)

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to count transaction search results: %w", err)
	}

	var transactions []models.Transaction
	offset, limit := pageWindow(page, limit)
	if err := query.Preload("Product").Order("transactions.created_at DESC").
		Offset(offset).Limit(limit).Find(&transactions).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to search transactions: %w", err)
	}
	return transactions, total, nil
}

// Create creates a new transaction row in the database.
func (r *GORMTransactionRepository) Create(transaction *models.Transaction) error {
	if transaction.ID == "" {
		transaction.ID = uuid.New().String()
	}
	// The preloaded association must not be written back through Create.
	if err := r.db.Omit("Product").Create(transaction).Error; err != nil {
		return fmt.Errorf("failed to create transaction: %w", err)
	}
	return nil
}

// Update updates an existing transaction row in the database.
func (r *GORMTransactionRepository) Update(transaction *models.Transaction) error {
	res := r.db.Omit("Product").Save(transaction)
	if res.Error != nil {
		return fmt.Errorf("failed to update transaction: %w", res.Error)
	}
	if res.RowsAffected == 0 {
		return fmt.Errorf("transaction with ID %s: %w", transaction.ID, ledger.ErrNotFound)
	}
	return nil
}

// Delete deletes a transaction row by its ID from the database.
func (r *GORMTransactionRepository) Delete(id string) error {
	res := r.db.Delete(&models.Transaction{}, "id = ?", id)
	if res.Error != nil {
		return fmt.Errorf("failed to delete transaction: %w", res.Error)
	}
	if res.RowsAffected == 0 {
		return fmt.Errorf("transaction with ID %s: %w", id, ledger.ErrNotFound)
	}
	return nil
}
