package repositories

import (
	"time"

	"inventaris/internal/ledger"
	"inventaris/internal/models"
)

// TransactionRepository defines the interface for stock-movement data access.
// It only persists and queries movement rows; stock effects are applied
// separately through ProductRepository by the ledger service.
type TransactionRepository interface {
	// List returns a page of transactions, newest first, optionally filtered
	// by movement type (empty type means no filter).
	List(page, limit int, movementType ledger.MovementType) ([]models.Transaction, int64, error)
	GetByID(id string) (*models.Transaction, error)
	GetByProduct(productID string) ([]models.Transaction, error)
	// ListBetween returns all transactions within the optional date bounds.
	ListBetween(from, to *time.Time) ([]models.Transaction, error)
	// Search matches the product name or the transaction note by substring.
	Search(term string, page, limit int) ([]models.Transaction, int64, error)
	Create(transaction *models.Transaction) error
	Update(transaction *models.Transaction) error
	Delete(id string) error
}
