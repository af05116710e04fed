package handlers

import (
	"inventaris/internal/models"
	"inventaris/internal/services"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

// SupplierHandler handles HTTP requests for suppliers.
type SupplierHandler struct {
	service  *services.SupplierService
	validate *validator.Validate
}

// NewSupplierHandler creates a new SupplierHandler.
func NewSupplierHandler(service *services.SupplierService) *SupplierHandler {
	return &SupplierHandler{
		service:  service,
		validate: validator.New(),
	}
}

// RegisterRoutes registers the supplier routes with the Fiber app.
func (h *SupplierHandler) RegisterRoutes(router fiber.Router) {
	supplierRoutes := router.Group("/suppliers")
	supplierRoutes.Get("/", h.HandleList)
	supplierRoutes.Post("/", h.HandleCreate)
	supplierRoutes.Get("/search", h.HandleSearch)
	supplierRoutes.Get("/:id", h.HandleGet)
	supplierRoutes.Put("/:id", h.HandleUpdate)
	supplierRoutes.Delete("/:id", h.HandleDelete)
}

// CreateSupplierRequest is the body for creating a supplier.
type CreateSupplierRequest struct {
	Name    string `json:"name" validate:"required,min=1,max=255"`
	Address string `json:"address" validate:"omitempty,max=500"`
	Phone   string `json:"phone" validate:"omitempty,max=50"`
	Email   string `json:"email" validate:"omitempty,email"`
}

// UpdateSupplierRequest is a partial supplier update; nil fields are unchanged.
type UpdateSupplierRequest struct {
	Name    *string `json:"name" validate:"omitempty,min=1,max=255"`
	Address *string `json:"address" validate:"omitempty,max=500"`
	Phone   *string `json:"phone" validate:"omitempty,max=50"`
	Email   *string `json:"email" validate:"omitempty,email"`
}

// HandleList retrieves a page of suppliers.
func (h *SupplierHandler) HandleList(c *fiber.Ctx) error {
	page, limit := pageParams(c)
	suppliers, total, err := h.service.ListSuppliers(page, limit)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(paginated(suppliers, total, page, limit))
}

// HandleCreate creates a new supplier.
func (h *SupplierHandler) HandleCreate(c *fiber.Ctx) error {
	var req CreateSupplierRequest
	if err := c.BodyParser(&req); err != nil {
		return writeBodyError(c, err)
	}
	if err := h.validate.Struct(req); err != nil {
		return writeValidationError(c, err)
	}

	supplier := &models.Supplier{
		Name:    req.Name,
		Address: req.Address,
		Phone:   req.Phone,
		Email:   req.Email,
	}
	if err := h.service.CreateSupplier(supplier); err != nil {
		return writeError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(supplier)
}

// HandleSearch retrieves suppliers matching the search term.
func (h *SupplierHandler) HandleSearch(c *fiber.Ctx) error {
	page, limit := pageParams(c)
	suppliers, total, err := h.service.SearchSuppliers(c.Query("search"), page, limit)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(paginated(suppliers, total, page, limit))
}

// HandleGet retrieves a single supplier.
func (h *SupplierHandler) HandleGet(c *fiber.Ctx) error {
	supplier, err := h.service.GetSupplierByID(c.Params("id"))
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(supplier)
}

// HandleUpdate applies a partial update to an existing supplier.
func (h *SupplierHandler) HandleUpdate(c *fiber.Ctx) error {
	supplier, err := h.service.GetSupplierByID(c.Params("id"))
	if err != nil {
		return writeError(c, err)
	}

	var req UpdateSupplierRequest
	if err := c.BodyParser(&req); err != nil {
		return writeBodyError(c, err)
	}
	if err := h.validate.Struct(req); err != nil {
		return writeValidationError(c, err)
	}

	if req.Name != nil {
		supplier.Name = *req.Name
	}
	if req.Address != nil {
		supplier.Address = *req.Address
	}
	if req.Phone != nil {
		supplier.Phone = *req.Phone
	}
	if req.Email != nil {
		supplier.Email = *req.Email
	}
	if err := h.service.UpdateSupplier(supplier); err != nil {
		return writeError(c, err)
	}
	return c.JSON(supplier)
}

// HandleDelete deletes a supplier.
func (h *SupplierHandler) HandleDelete(c *fiber.Ctx) error {
	if err := h.service.DeleteSupplier(c.Params("id")); err != nil {
		return writeError(c, err)
	}
	return c.JSON(fiber.Map{
		"message": "Supplier deleted successfully",
	})
}
