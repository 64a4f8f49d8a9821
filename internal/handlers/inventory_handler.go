package handlers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/Shradhesh0/sweet-shop-mgmt/internal/services"
)

// InventoryHandler handles HTTP requests that adjust sweet stock.
type InventoryHandler struct {
	service *services.InventoryService
}

// NewInventoryHandler creates a new InventoryHandler.
func NewInventoryHandler(service *services.InventoryService) *InventoryHandler {
	return &InventoryHandler{service: service}
}

// RegisterRoutes registers the purchase and restock routes. requireAdmin
// gates the restock route.
func (h *InventoryHandler) RegisterRoutes(router fiber.Router, requireAdmin fiber.Handler) {
	sweets := router.Group("/sweets")
	sweets.Post("/:id/purchase", h.HandlePurchase)
	sweets.Post("/:id/restock", requireAdmin, h.HandleRestock)
}

// quantityRequest is the request body for purchase and restock.
type quantityRequest struct {
	Quantity int `json:"quantity"`
}

// actorID returns the authenticated caller's user id from the request context.
func actorID(c *fiber.Ctx) uint {
	id, _ := c.Locals("user_id").(uint)
	return id
}

// HandlePurchase decrements a sweet's stock and reports the total price at
// the current unit price.
func (h *InventoryHandler) HandlePurchase(c *fiber.Ctx) error {
	id, ok := parseSweetID(c)
	if !ok {
		return validationError(c, "Invalid sweet id")
	}

	var req quantityRequest
	if err := c.BodyParser(&req); err != nil || req.Quantity <= 0 {
		return validationError(c, "Valid quantity is required")
	}

	result, err := h.service.Purchase(id, req.Quantity, actorID(c))
	if err != nil {
		return renderError(c, err)
	}

	return c.JSON(fiber.Map{
		"message":    "Purchase successful",
		"sweet":      result.Sweet,
		"purchased":  result.Purchased,
		"totalPrice": result.TotalPrice,
	})
}

// HandleRestock increments a sweet's stock. Admin only.
func (h *InventoryHandler) HandleRestock(c *fiber.Ctx) error {
	id, ok := parseSweetID(c)
	if !ok {
		return validationError(c, "Invalid sweet id")
	}

	var req quantityRequest
	if err := c.BodyParser(&req); err != nil || req.Quantity <= 0 {
		return validationError(c, "Valid quantity is required")
	}

	sweet, err := h.service.Restock(id, req.Quantity, actorID(c))
	if err != nil {
		return renderError(c, err)
	}

	return c.JSON(fiber.Map{
		"message":   "Restock successful",
		"sweet":     sweet,
		"restocked": req.Quantity,
	})
}
