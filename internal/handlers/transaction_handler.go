package handlers

import (
	"fmt"
	"time"

	"inventaris/internal/ledger"
	"inventaris/internal/services"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

// TransactionHandler handles HTTP requests for stock-movement transactions.
type TransactionHandler struct {
	service  *services.LedgerService
	validate *validator.Validate
}

// NewTransactionHandler creates a new TransactionHandler.
func NewTransactionHandler(service *services.LedgerService) *TransactionHandler {
	return &TransactionHandler{
		service:  service,
		validate: validator.New(),
	}
}

// RegisterRoutes registers the transaction routes with the Fiber app.
func (h *TransactionHandler) RegisterRoutes(router fiber.Router) {
	transactionRoutes := router.Group("/transactions")
	transactionRoutes.Get("/", h.HandleList)
	transactionRoutes.Post("/", h.HandleCreate)
	transactionRoutes.Get("/search", h.HandleSearch)
	transactionRoutes.Get("/stats", h.HandleStats)
	transactionRoutes.Get("/product/:productId", h.HandleByProduct)
	transactionRoutes.Get("/:id", h.HandleGet)
	transactionRoutes.Put("/:id", h.HandleUpdate)
	transactionRoutes.Delete("/:id", h.HandleDelete)
}

// CreateTransactionRequest is the body for recording a stock movement.
type CreateTransactionRequest struct {
	ProductID string `json:"product_id" validate:"required"`
	Type      string `json:"type" validate:"required,oneof=IN OUT"`
	Quantity  int    `json:"quantity" validate:"required,gt=0"`
	Note      string `json:"note" validate:"omitempty,max=500"`
}

// UpdateTransactionRequest is a partial correction of a recorded movement;
// nil fields keep their current values.
type UpdateTransactionRequest struct {
	ProductID *string `json:"product_id" validate:"omitempty,min=1"`
	Type      *string `json:"type" validate:"omitempty,oneof=IN OUT"`
	Quantity  *int    `json:"quantity" validate:"omitempty,gt=0"`
	Note      *string `json:"note" validate:"omitempty,max=500"`
}

// HandleList retrieves a page of transactions, optionally filtered by type.
func (h *TransactionHandler) HandleList(c *fiber.Ctx) error {
	page, limit := pageParams(c)
	movementType := ledger.MovementType(c.Query("type"))
	transactions, total, err := h.service.ListTransactions(page, limit, movementType)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(paginated(transactions, total, page, limit))
}

// HandleCreate records a new stock movement and applies its stock effect.
func (h *TransactionHandler) HandleCreate(c *fiber.Ctx) error {
	var req CreateTransactionRequest
	if err := c.BodyParser(&req); err != nil {
		return writeBodyError(c, err)
	}
	if err := h.validate.Struct(req); err != nil {
		return writeValidationError(c, err)
	}

	result, err := h.service.CreateTransaction(services.CreateMovementInput{
		ProductID: req.ProductID,
		Type:      ledger.MovementType(req.Type),
		Quantity:  req.Quantity,
		Note:      req.Note,
	})
	if err != nil {
		return writeError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(result)
}

// HandleSearch retrieves transactions matching the term on product name or note.
func (h *TransactionHandler) HandleSearch(c *fiber.Ctx) error {
	page, limit := pageParams(c)
	transactions, total, err := h.service.SearchTransactions(c.Query("search"), page, limit)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(paginated(transactions, total, page, limit))
}

// HandleStats aggregates movements over the optional dateFrom/dateTo range.
func (h *TransactionHandler) HandleStats(c *fiber.Ctx) error {
	from, err := parseDateQuery(c.Query("dateFrom"))
	if err != nil {
		return writeError(c, ledger.Validationf("invalid dateFrom: %v", err))
	}
	to, err := parseDateQuery(c.Query("dateTo"))
	if err != nil {
		return writeError(c, ledger.Validationf("invalid dateTo: %v", err))
	}

	stats, err := h.service.Stats(from, to)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(stats)
}

// HandleByProduct retrieves all transactions of a product, newest first.
func (h *TransactionHandler) HandleByProduct(c *fiber.Ctx) error {
	transactions, err := h.service.TransactionsByProduct(c.Params("productId"))
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(transactions)
}

// HandleGet retrieves a single transaction with its product.
func (h *TransactionHandler) HandleGet(c *fiber.Ctx) error {
	transaction, err := h.service.GetTransaction(c.Params("id"))
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(transaction)
}

// HandleUpdate corrects a recorded movement, reversing its old stock effect
// and applying the new one.
func (h *TransactionHandler) HandleUpdate(c *fiber.Ctx) error {
	var req UpdateTransactionRequest
	if err := c.BodyParser(&req); err != nil {
		return writeBodyError(c, err)
	}
	if err := h.validate.Struct(req); err != nil {
		return writeValidationError(c, err)
	}

	input := services.UpdateMovementInput{
		ProductID: req.ProductID,
		Quantity:  req.Quantity,
		Note:      req.Note,
	}
	if req.Type != nil {
		movementType := ledger.MovementType(*req.Type)
		input.Type = &movementType
	}

	result, err := h.service.UpdateTransaction(c.Params("id"), input)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(result)
}

// HandleDelete reverses a movement's stock effect and removes it.
func (h *TransactionHandler) HandleDelete(c *fiber.Ctx) error {
	product, err := h.service.DeleteTransaction(c.Params("id"))
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(fiber.Map{
		"message": "Transaction deleted successfully",
		"product": product,
	})
}

// parseDateQuery accepts RFC 3339 timestamps or bare yyyy-mm-dd dates.
func parseDateQuery(value string) (*time.Time, error) {
	if value == "" {
		return nil, nil
	}
	if t, err := time.Parse(time.RFC3339, value); err == nil {
		return &t, nil
	}
	t, err := time.Parse("2006-01-02", value)
	if err != nil {
		return nil, fmt.Errorf("expected RFC 3339 or yyyy-mm-dd, got %q", value)
	}
	return &t, nil
}
