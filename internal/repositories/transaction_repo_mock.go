package repositories

import (
	"fmt"
	"sort"
	"strings"
	"sync"
	"time"

	"inventaris/internal/ledger"
	"inventaris/internal/models"

	"github.com/google/uuid"
)

// MockTransactionRepository is an in-memory implementation of
// TransactionRepository. Product preloads are not simulated; entries are
// returned as stored.
type MockTransactionRepository struct {
	transactions map[string]models.Transaction
	mu           sync.RWMutex
}

// NewMockTransactionRepository creates a new instance of MockTransactionRepository.
func NewMockTransactionRepository() *MockTransactionRepository {
	return &MockTransactionRepository{
		transactions: make(map[string]models.Transaction),
	}
}

func (r *MockTransactionRepository) sortedLocked() []models.Transaction {
	all := make([]models.Transaction, 0, len(r.transactions))
	for _, t := range r.transactions {
		all = append(all, t)
	}
	sort.Slice(all, func(i, j int) bool {
		return all[i].CreatedAt.After(all[j].CreatedAt)
	})
	return all
}

// List returns a page of transactions, newest first.
func (r *MockTransactionRepository) List(page, limit int, movementType ledger.MovementType) ([]models.Transaction, int64, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var matched []models.Transaction
	for _, t := range r.sortedLocked() {
		if movementType == "" || t.Type == movementType {
			matched = append(matched, t)
		}
	}
	return pageSlice(matched, page, limit), int64(len(matched)), nil
}

// GetByID returns a transaction by its ID.
func (r *MockTransactionRepository) GetByID(id string) (*models.Transaction, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	transaction, ok := r.transactions[id]
	if !ok {
		return nil, fmt.Errorf("transaction with ID %s: %w", id, ledger.ErrNotFound)
	}
	return &transaction, nil
}

// GetByProduct returns all transactions for a product, newest first.
func (r *MockTransactionRepository) GetByProduct(productID string) ([]models.Transaction, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var matched []models.Transaction
	for _, t := range r.sortedLocked() {
		if t.ProductID == productID {
			matched = append(matched, t)
		}
	}
	return matched, nil
}

// ListBetween returns all transactions within the optional date bounds.
func (r *MockTransactionRepository) ListBetween(from, to *time.Time) ([]models.Transaction, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var matched []models.Transaction
	for _, t := range r.transactions {
		if from != nil && t.CreatedAt.Before(*from) {
			continue
		}
		if to != nil && t.CreatedAt.After(*to) {
			continue
		}
		matched = append(matched, t)
	}
	return matched, nil
}

// Search returns a page of transactions whose note contains the term.
func (r *MockTransactionRepository) Search(term string, page, limit int) ([]models.Transaction, int64, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	needle := strings.ToLower(term)
	var matched []models.Transaction
	for _, t := range r.sortedLocked() {
		if strings.Contains(strings.ToLower(t.Note), needle) {
			matched = append(matched, t)
		}
	}
	return pageSlice(matched, page, limit), int64(len(matched)), nil
}

// Create adds a new transaction.
func (r *MockTransactionRepository) Create(transaction *models.Transaction) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if transaction.ID == "" {
		transaction.ID = uuid.New().String()
	}
	if transaction.CreatedAt.IsZero() {
		transaction.CreatedAt = time.Now()
	}
	transaction.UpdatedAt = time.Now()
	r.transactions[transaction.ID] = *transaction
	return nil
}

// Update modifies an existing transaction.
func (r *MockTransactionRepository) Update(transaction *models.Transaction) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.transactions[transaction.ID]; !ok {
		return fmt.Errorf("transaction with ID %s: %w", transaction.ID, ledger.ErrNotFound)
	}
	transaction.UpdatedAt = time.Now()
	r.transactions[transaction.ID] = *transaction
	return nil
}

// Delete removes a transaction by its ID.
func (r *MockTransactionRepository) Delete(id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.transactions[id]; !ok {
		return fmt.Errorf("transaction with ID %s: %w", id, ledger.ErrNotFound)
	}
	delete(r.transactions, id)
	return nil
}
