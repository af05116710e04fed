package services

import (
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"time"

	"inventaris/internal/ledger"
	"inventaris/internal/models"
	"inventaris/internal/repositories"
	"inventaris/pkg/rabbitmq"
)

// EventPublisher publishes movement events to the message broker.
// *rabbitmq.Client satisfies it; a nil publisher disables events.
type EventPublisher interface {
	Publish(routingKey string, body []byte) error
}

// LedgerService owns every stock mutation. Each transaction create, update,
// and delete validates its input, applies the stock delta through the product
// repository's atomic adjustment, and compensates already-applied deltas when
// a later step fails, so product stock and transaction rows stay consistent.
//
// Failed mutations are never retried here; the caller may resubmit.
type LedgerService struct {
	transactionRepo repositories.TransactionRepository
	productRepo     repositories.ProductRepository
	publisher       EventPublisher
}

// NewLedgerService creates a new LedgerService.
func NewLedgerService(transactionRepo repositories.TransactionRepository, productRepo repositories.ProductRepository, publisher EventPublisher) *LedgerService {
	return &LedgerService{
		transactionRepo: transactionRepo,
		productRepo:     productRepo,
		publisher:       publisher,
	}
}

// CreateMovementInput is the validated request for recording a movement.
type CreateMovementInput struct {
	ProductID string
	Type      ledger.MovementType
	Quantity  int
	Note      string
}

// UpdateMovementInput is a partial correction of an existing movement;
// nil fields keep their current values.
type UpdateMovementInput struct {
	ProductID *string
	Type      *ledger.MovementType
	Quantity  *int
	Note      *string
}

// MovementResult carries the transaction and the product(s) a mutation
// touched. PrevProduct is set only when an update moved the transaction to a
// different product.
type MovementResult struct {
	Transaction *models.Transaction `json:"transaction"`
	Product     *models.Product     `json:"product"`
	PrevProduct *models.Product     `json:"previous_product,omitempty"`
}

// MovementStats aggregates transactions over a date range.
type MovementStats struct {
	TotalTransactions int `json:"totalTransactions"`
	InCount           int `json:"inCount"`
	OutCount          int `json:"outCount"`
	TotalIn           int `json:"totalIn"`
	TotalOut          int `json:"totalOut"`
	NetChange         int `json:"netChange"`
}

func validateMovement(t ledger.MovementType, quantity int) error {
	if !t.Valid() {
		return ledger.Validationf("type must be %q or %q", ledger.MovementIn, ledger.MovementOut)
	}
	if quantity <= 0 {
		return ledger.Validationf("quantity must be a positive whole number")
	}
	return nil
}

// CreateTransaction records a movement and applies its stock effect. When the
// row cannot be persisted after the stock was already adjusted, the adjustment
// is compensated; a failed compensation escalates to ErrInconsistentState.
func (s *LedgerService) CreateTransaction(in CreateMovementInput) (*MovementResult, error) {
	if err := validateMovement(in.Type, in.Quantity); err != nil {
		return nil, err
	}

	product, err := s.productRepo.GetByID(in.ProductID)
	if err != nil {
		return nil, err
	}

	delta := ledger.Delta(in.Type, in.Quantity)
	newStock, err := s.productRepo.ApplyStockDelta(in.ProductID, delta)
	if err != nil {
		return nil, err
	}

	transaction := &models.Transaction{
		ProductID: in.ProductID,
		Type:      in.Type,
		Quantity:  in.Quantity,
		Note:      in.Note,
	}
	if err := s.transactionRepo.Create(transaction); err != nil {
		if _, undoErr := s.productRepo.ApplyStockDelta(in.ProductID, -delta); undoErr != nil {
			log.Printf("Stock rollback failed for product %s after persist failure: %v", in.ProductID, undoErr)
			return nil, fmt.Errorf("transaction not persisted and stock rollback failed: %w", ledger.ErrInconsistentState)
		}
		return nil, fmt.Errorf("failed to persist transaction: %w", err)
	}

	product.Stock = newStock
	transaction.Product = product
	s.publishEvent("transaction.created", transaction, newStock)

	return &MovementResult{Transaction: transaction, Product: product}, nil
}

// UpdateTransaction corrects an existing movement as "reverse old effect,
// apply new effect": the old delta is undone on the old product first, then
// the new delta is applied to the (possibly different) new product, then the
// row is persisted. Each step that fails unwinds the ones before it; if an
// unwind itself fails the service reports ErrInconsistentState.
func (s *LedgerService) UpdateTransaction(id string, in UpdateMovementInput) (*MovementResult, error) {
	existing, err := s.transactionRepo.GetByID(id)
	if err != nil {
		return nil, err
	}

	oldProductID := existing.ProductID
	oldType := existing.Type
	oldQuantity := existing.Quantity

	newProductID := oldProductID
	if in.ProductID != nil && *in.ProductID != "" {
		newProductID = *in.ProductID
	}
	newType := oldType
	if in.Type != nil {
		newType = *in.Type
	}
	newQuantity := oldQuantity
	if in.Quantity != nil {
		newQuantity = *in.Quantity
	}

	if err := validateMovement(newType, newQuantity); err != nil {
		return nil, err
	}
	if newProductID != oldProductID {
		if _, err := s.productRepo.GetByID(newProductID); err != nil {
			return nil, err
		}
	}

	// Reverse before applying, even for the same product, so the forward
	// stock check sees true availability after the reversal.
	reverse := ledger.Inverse(oldType, oldQuantity)
	if _, err := s.productRepo.ApplyStockDelta(oldProductID, reverse); err != nil {
		if errors.Is(err, ledger.ErrInsufficientStock) {
			// Undoing a recorded movement must always fit; a rejection here
			// means the counter no longer matches the ledger.
			log.Printf("Reversal rejected for transaction %s on product %s: %v", id, oldProductID, err)
			return nil, fmt.Errorf("cannot reverse transaction %s: %w", id, ledger.ErrInconsistentState)
		}
		return nil, err
	}

	forward := ledger.Delta(newType, newQuantity)
	if _, err := s.productRepo.ApplyStockDelta(newProductID, forward); err != nil {
		if _, undoErr := s.productRepo.ApplyStockDelta(oldProductID, -reverse); undoErr != nil {
			log.Printf("Reversal rollback failed for transaction %s on product %s: %v", id, oldProductID, undoErr)
			return nil, fmt.Errorf("reversal rollback failed for transaction %s: %w", id, ledger.ErrInconsistentState)
		}
		return nil, err
	}

	existing.ProductID = newProductID
	existing.Type = newType
	existing.Quantity = newQuantity
	if in.Note != nil {
		existing.Note = *in.Note
	}
	existing.Product = nil
	if err := s.transactionRepo.Update(existing); err != nil {
		if _, undoErr := s.productRepo.ApplyStockDelta(newProductID, -forward); undoErr != nil {
			log.Printf("Forward rollback failed for transaction %s on product %s: %v", id, newProductID, undoErr)
			return nil, fmt.Errorf("stock rollback failed for transaction %s: %w", id, ledger.ErrInconsistentState)
		}
		if _, undoErr := s.productRepo.ApplyStockDelta(oldProductID, -reverse); undoErr != nil {
			log.Printf("Reversal rollback failed for transaction %s on product %s: %v", id, oldProductID, undoErr)
			return nil, fmt.Errorf("stock rollback failed for transaction %s: %w", id, ledger.ErrInconsistentState)
		}
		return nil, fmt.Errorf("failed to persist transaction update: %w", err)
	}

	product, err := s.productRepo.GetByID(newProductID)
	if err != nil {
		return nil, err
	}
	existing.Product = product

	result := &MovementResult{Transaction: existing, Product: product}
	if newProductID != oldProductID {
		prev, err := s.productRepo.GetByID(oldProductID)
		if err != nil {
			return nil, err
		}
		result.PrevProduct = prev
	}

	s.publishEvent("transaction.updated", existing, product.Stock)
	return result, nil
}

// DeleteTransaction undoes a movement's stock effect and removes its row.
// Returns the product with its restored stock.
func (s *LedgerService) DeleteTransaction(id string) (*models.Product, error) {
	existing, err := s.transactionRepo.GetByID(id)
	if err != nil {
		return nil, err
	}

	reverse := ledger.Inverse(existing.Type, existing.Quantity)
	if _, err := s.productRepo.ApplyStockDelta(existing.ProductID, reverse); err != nil {
		if errors.Is(err, ledger.ErrInsufficientStock) {
			log.Printf("Reversal rejected for transaction %s on product %s: %v", id, existing.ProductID, err)
			return nil, fmt.Errorf("cannot reverse transaction %s: %w", id, ledger.ErrInconsistentState)
		}
		return nil, err
	}

	if err := s.transactionRepo.Delete(id); err != nil {
		if _, undoErr := s.productRepo.ApplyStockDelta(existing.ProductID, -reverse); undoErr != nil {
			log.Printf("Reversal rollback failed for transaction %s on product %s: %v", id, existing.ProductID, undoErr)
			return nil, fmt.Errorf("stock rollback failed for transaction %s: %w", id, ledger.ErrInconsistentState)
		}
		return nil, fmt.Errorf("failed to delete transaction: %w", err)
	}

	product, err := s.productRepo.GetByID(existing.ProductID)
	if err != nil {
		return nil, err
	}

	s.publishEvent("transaction.deleted", existing, product.Stock)
	return product, nil
}

// GetStock returns the current stock counter for a product.
func (s *LedgerService) GetStock(productID string) (int, error) {
	return s.productRepo.GetStock(productID)
}

// GetTransaction retrieves a single transaction with its product.
func (s *LedgerService) GetTransaction(id string) (*models.Transaction, error) {
	return s.transactionRepo.GetByID(id)
}

// ListTransactions retrieves a page of transactions, optionally filtered by
// movement type.
func (s *LedgerService) ListTransactions(page, limit int, movementType ledger.MovementType) ([]models.Transaction, int64, error) {
	if movementType != "" && !movementType.Valid() {
		return nil, 0, ledger.Validationf("type filter must be %q or %q", ledger.MovementIn, ledger.MovementOut)
	}
	return s.transactionRepo.List(page, limit, movementType)
}

// TransactionsByProduct retrieves all transactions for a product, newest first.
func (s *LedgerService) TransactionsByProduct(productID string) ([]models.Transaction, error) {
	return s.transactionRepo.GetByProduct(productID)
}

// SearchTransactions matches transactions by product name or note substring.
func (s *LedgerService) SearchTransactions(term string, page, limit int) ([]models.Transaction, int64, error) {
	return s.transactionRepo.Search(term, page, limit)
}

// Stats aggregates movement counts and quantities over an optional date range.
func (s *LedgerService) Stats(from, to *time.Time) (*MovementStats, error) {
	transactions, err := s.transactionRepo.ListBetween(from, to)
	if err != nil {
		return nil, err
	}

	stats := &MovementStats{TotalTransactions: len(transactions)}
	for _, t := range transactions {
		if t.Type == ledger.MovementIn {
			stats.InCount++
			stats.TotalIn += t.Quantity
		} else {
			stats.OutCount++
			stats.TotalOut += t.Quantity
		}
	}
	stats.NetChange = stats.TotalIn - stats.TotalOut
	return stats, nil
}

// publishEvent sends a movement event to the broker. Publish failures are
// logged and never fail the mutation that already committed.
func (s *LedgerService) publishEvent(event string, transaction *models.Transaction, stock int) {
	if s.publisher == nil {
		return
	}

	payload := map[string]interface{}{
		"event":          event,
		"transaction_id": transaction.ID,
		"product_id":     transaction.ProductID,
		"type":           transaction.Type,
		"quantity":       transaction.Quantity,
		"stock":          stock,
	}
	body, err := json.Marshal(payload)
	if err != nil {
		log.Printf("Failed to marshal %s event for transaction %s: %v", event, transaction.ID, err)
		return
	}
	if err := s.publisher.Publish(rabbitmq.EventQueue, body); err != nil {
		log.Printf("Warning: failed to publish %s event for transaction %s: %v", event, transaction.ID, err)
	}
}
