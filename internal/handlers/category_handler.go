package handlers

import (
	"inventaris/internal/models"
	"inventaris/internal/services"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

// CategoryHandler handles HTTP requests for categories.
type CategoryHandler struct {
	service  *services.CategoryService
	validate *validator.Validate
}

// NewCategoryHandler creates a new CategoryHandler.
func NewCategoryHandler(service *services.CategoryService) *CategoryHandler {
	return &CategoryHandler{
		service:  service,
		validate: validator.New(),
	}
}

// RegisterRoutes registers the category routes with the Fiber app.
func (h *CategoryHandler) RegisterRoutes(router fiber.Router) {
	categoryRoutes := router.Group("/categories")
	categoryRoutes.Get("/", h.HandleList)
	categoryRoutes.Post("/", h.HandleCreate)
	categoryRoutes.Get("/search", h.HandleSearch)
	categoryRoutes.Get("/:id", h.HandleGet)
	categoryRoutes.Put("/:id", h.HandleUpdate)
	categoryRoutes.Delete("/:id", h.HandleDelete)
	categoryRoutes.Get("/:id/stats", h.HandleStats)
}

// CategoryRequest is the body for creating or renaming a category.
type CategoryRequest struct {
	Name string `json:"name" validate:"required,min=1,max=255"`
}

// HandleList retrieves a page of categories.
func (h *CategoryHandler) HandleList(c *fiber.Ctx) error {
	page, limit := pageParams(c)
	categories, total, err := h.service.ListCategories(page, limit)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(paginated(categories, total, page, limit))
}

// HandleCreate creates a new category.
func (h *CategoryHandler) HandleCreate(c *fiber.Ctx) error {
	var req CategoryRequest
	if err := c.BodyParser(&req); err != nil {
		return writeBodyError(c, err)
	}
	if err := h.validate.Struct(req); err != nil {
		return writeValidationError(c, err)
	}

	category := &models.Category{Name: req.Name}
	if err := h.service.CreateCategory(category); err != nil {
		return writeError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(category)
}

// HandleSearch retrieves categories matching the search term.
func (h *CategoryHandler) HandleSearch(c *fiber.Ctx) error {
	page, limit := pageParams(c)
	categories, total, err := h.service.SearchCategories(c.Query("search"), page, limit)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(paginated(categories, total, page, limit))
}

// HandleGet retrieves a single category with its products.
func (h *CategoryHandler) HandleGet(c *fiber.Ctx) error {
	category, err := h.service.GetCategoryByID(c.Params("id"))
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(category)
}

// HandleUpdate renames an existing category.
func (h *CategoryHandler) HandleUpdate(c *fiber.Ctx) error {
	category, err := h.service.GetCategoryByID(c.Params("id"))
	if err != nil {
		return writeError(c, err)
	}

	var req CategoryRequest
	if err := c.BodyParser(&req); err != nil {
		return writeBodyError(c, err)
	}
	if err := h.validate.Struct(req); err != nil {
		return writeValidationError(c, err)
	}

	category.Name = req.Name
	category.Products = nil // do not write the preload back
	if err := h.service.UpdateCategory(category); err != nil {
		return writeError(c, err)
	}
	return c.JSON(category)
}

// HandleDelete deletes a category unless products still reference it.
func (h *CategoryHandler) HandleDelete(c *fiber.Ctx) error {
	if err := h.service.DeleteCategory(c.Params("id")); err != nil {
		return writeError(c, err)
	}
	return c.JSON(fiber.Map{
		"message": "Category deleted successfully",
	})
}

// HandleStats returns product count, total stock, and average price for a
// category.
func (h *CategoryHandler) HandleStats(c *fiber.Ctx) error {
	category, stats, err := h.service.CategoryStats(c.Params("id"))
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(fiber.Map{
		"category": category,
		"stats":    stats,
	})
}
