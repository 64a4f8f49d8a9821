package handlers

import (
	"errors"
	"log"
	"net/http"

	"github.com/gofiber/fiber/v2"

	"github.com/Shradhesh0/sweet-shop-mgmt/internal/apperrors"
)

// renderError translates a domain error into its JSON error response.
// Insufficient-stock errors additionally report the available and requested
// amounts. Unclassified errors are logged and surfaced as a generic 500 so no
// internal detail leaks to the caller.
func renderError(c *fiber.Ctx, err error) error {
	var stock *apperrors.InsufficientStockError
	if errors.As(err, &stock) {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error":     "Insufficient stock",
			"available": stock.Available,
			"requested": stock.Requested,
		})
	}

	status := apperrors.StatusFor(err)
	if status == http.StatusInternalServerError {
		log.Printf("Internal error: %v", err)
		return c.Status(status).JSON(fiber.Map{
			"error": "Internal server error",
		})
	}
	return c.Status(status).JSON(fiber.Map{
		"error": err.Error(),
	})
}

// validationError shapes a 400 response for a request that failed input
// validation.
func validationError(c *fiber.Ctx, message string) error {
	return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
		"error": message,
	})
}
