package handlers

import (
	"errors"
	"fmt"
	"log"

	"inventaris/internal/ledger"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

// errorKind labels an error for the {kind, message} error payload.
func errorKind(err error) string {
	switch {
	case ledger.IsValidation(err):
		return "validation"
	case errors.Is(err, ledger.ErrInsufficientStock):
		return "insufficient_stock"
	case errors.Is(err, ledger.ErrNotFound):
		return "not_found"
	case errors.Is(err, ledger.ErrInconsistentState):
		return "inconsistent_state"
	default:
		return "internal"
	}
}

func statusForError(err error) int {
	switch {
	case ledger.IsValidation(err), errors.Is(err, ledger.ErrInsufficientStock):
		return fiber.StatusUnprocessableEntity
	case errors.Is(err, ledger.ErrNotFound):
		return fiber.StatusNotFound
	default:
		return fiber.StatusInternalServerError
	}
}

// writeError maps a service error to its HTTP status and error payload.
func writeError(c *fiber.Ctx, err error) error {
	status := statusForError(err)
	if status == fiber.StatusInternalServerError {
		log.Printf("Error handling %s %s: %v", c.Method(), c.Path(), err)
	}
	return c.Status(status).JSON(fiber.Map{
		"kind":    errorKind(err),
		"message": err.Error(),
	})
}

// writeBodyError reports an unparseable request body.
func writeBodyError(c *fiber.Ctx, err error) error {
	return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
		"kind":    "validation",
		"message": "invalid request body",
		"error":   err.Error(),
	})
}

// writeValidationError reports failed struct validation field by field.
func writeValidationError(c *fiber.Ctx, err error) error {
	var validationErrors validator.ValidationErrors
	if !errors.As(err, &validationErrors) {
		return writeError(c, err)
	}

	errorMessages := make(map[string]string)
	for _, e := range validationErrors {
		errorMessages[e.Field()] = fmt.Sprintf("Field '%s' failed on the '%s' tag", e.Field(), e.Tag())
	}
	return c.Status(fiber.StatusUnprocessableEntity).JSON(fiber.Map{
		"kind":    "validation",
		"message": "validation failed",
		"errors":  errorMessages,
	})
}
