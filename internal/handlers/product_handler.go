package handlers

import (
	"inventaris/internal/models"
	"inventaris/internal/services"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

// ProductHandler handles HTTP requests for products. The stock query goes
// through the ledger service, the stock's single point of truth.
type ProductHandler struct {
	service  *services.ProductService
	ledger   *services.LedgerService
	validate *validator.Validate
}

// NewProductHandler creates a new ProductHandler.
func NewProductHandler(service *services.ProductService, ledger *services.LedgerService) *ProductHandler {
	return &ProductHandler{
		service:  service,
		ledger:   ledger,
		validate: validator.New(),
	}
}

// RegisterRoutes registers the product routes with the Fiber app.
func (h *ProductHandler) RegisterRoutes(router fiber.Router) {
	productRoutes := router.Group("/products")
	productRoutes.Get("/", h.HandleList)
	productRoutes.Post("/", h.HandleCreate)
	productRoutes.Get("/search", h.HandleSearch)
	productRoutes.Get("/category/:categoryId", h.HandleByCategory)
	productRoutes.Get("/:id", h.HandleGet)
	productRoutes.Put("/:id", h.HandleUpdate)
	productRoutes.Delete("/:id", h.HandleDelete)
	productRoutes.Get("/:id/stock", h.HandleStock)
}

// CreateProductRequest is the body for creating a product. Stock set here is
// the administrative opening value; later changes go through transactions.
type CreateProductRequest struct {
	Name       string  `json:"name" validate:"required,min=1,max=255"`
	Brand      string  `json:"brand" validate:"omitempty,max=255"`
	Stock      int     `json:"stock" validate:"gte=0"`
	Price      float64 `json:"price" validate:"required,gt=0"`
	CategoryID string  `json:"category_id" validate:"required"`
}

// UpdateProductRequest is a partial product update; nil fields are unchanged.
type UpdateProductRequest struct {
	Name       *string  `json:"name" validate:"omitempty,min=1,max=255"`
	Brand      *string  `json:"brand" validate:"omitempty,max=255"`
	Stock      *int     `json:"stock" validate:"omitempty,gte=0"`
	Price      *float64 `json:"price" validate:"omitempty,gt=0"`
	CategoryID *string  `json:"category_id" validate:"omitempty,min=1"`
}

// HandleList retrieves a page of products.
func (h *ProductHandler) HandleList(c *fiber.Ctx) error {
	page, limit := pageParams(c)
	products, total, err := h.service.ListProducts(page, limit)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(paginated(products, total, page, limit))
}

// HandleCreate creates a new product.
func (h *ProductHandler) HandleCreate(c *fiber.Ctx) error {
	var req CreateProductRequest
	if err := c.BodyParser(&req); err != nil {
		return writeBodyError(c, err)
	}
	if err := h.validate.Struct(req); err != nil {
		return writeValidationError(c, err)
	}

	product := &models.Product{
		Name:       req.Name,
		Brand:      req.Brand,
		Stock:      req.Stock,
		Price:      req.Price,
		CategoryID: req.CategoryID,
	}
	if err := h.service.CreateProduct(product); err != nil {
		return writeError(c, err)
	}

	created, err := h.service.GetProductByID(product.ID)
	if err != nil {
		return writeError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(created)
}

// HandleSearch retrieves products matching the search term on name or brand.
func (h *ProductHandler) HandleSearch(c *fiber.Ctx) error {
	page, limit := pageParams(c)
	products, total, err := h.service.SearchProducts(c.Query("search"), page, limit)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(paginated(products, total, page, limit))
}

// HandleByCategory retrieves all products of a category.
func (h *ProductHandler) HandleByCategory(c *fiber.Ctx) error {
	products, err := h.service.GetProductsByCategory(c.Params("categoryId"))
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(products)
}

// HandleGet retrieves a single product.
func (h *ProductHandler) HandleGet(c *fiber.Ctx) error {
	product, err := h.service.GetProductByID(c.Params("id"))
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(product)
}

// HandleUpdate applies a partial update to an existing product.
func (h *ProductHandler) HandleUpdate(c *fiber.Ctx) error {
	product, err := h.service.GetProductByID(c.Params("id"))
	if err != nil {
		return writeError(c, err)
	}

	var req UpdateProductRequest
	if err := c.BodyParser(&req); err != nil {
		return writeBodyError(c, err)
	}
	if err := h.validate.Struct(req); err != nil {
		return writeValidationError(c, err)
	}

	if req.Name != nil {
		product.Name = *req.Name
	}
	if req.Brand != nil {
		product.Brand = *req.Brand
	}
	if req.Stock != nil {
		product.Stock = *req.Stock
	}
	if req.Price != nil {
		product.Price = *req.Price
	}
	if req.CategoryID != nil {
		product.CategoryID = *req.CategoryID
	}
	product.Category = nil // do not write the preload back
	if err := h.service.UpdateProduct(product); err != nil {
		return writeError(c, err)
	}

	updated, err := h.service.GetProductByID(product.ID)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(updated)
}

// HandleDelete deletes a product.
func (h *ProductHandler) HandleDelete(c *fiber.Ctx) error {
	if err := h.service.DeleteProduct(c.Params("id")); err != nil {
		return writeError(c, err)
	}
	return c.JSON(fiber.Map{
		"message": "Product deleted successfully",
	})
}

// HandleStock returns the product's current stock counter.
func (h *ProductHandler) HandleStock(c *fiber.Ctx) error {
	productID := c.Params("id")
	stock, err := h.ledger.GetStock(productID)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(fiber.Map{
		"product_id": productID,
		"stock":      stock,
	})
}
