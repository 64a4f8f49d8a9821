package handlers

import (
	"strconv"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"

	"github.com/Shradhesh0/sweet-shop-mgmt/internal/models"
	"github.com/Shradhesh0/sweet-shop-mgmt/internal/services"
)

// SweetHandler handles HTTP requests for the sweet catalog.
type SweetHandler struct {
	service  *services.SweetService
	validate *validator.Validate
}

// NewSweetHandler creates a new SweetHandler.
func NewSweetHandler(service *services.SweetService) *SweetHandler {
	return &SweetHandler{
		service:  service,
		validate: validator.New(),
	}
}

// RegisterRoutes registers the sweet routes. requireAdmin gates the
// admin-only delete route.
func (h *SweetHandler) RegisterRoutes(router fiber.Router, requireAdmin fiber.Handler) {
	sweets := router.Group("/sweets")
	sweets.Get("/", h.HandleGetSweets)
	sweets.Get("/search", h.HandleSearchSweets)
	sweets.Post("/", h.HandleCreateSweet)
	sweets.Put("/:id", h.HandleUpdateSweet)
	sweets.Delete("/:id", requireAdmin, h.HandleDeleteSweet)
}

// parseSweetID extracts the numeric :id route parameter.
func parseSweetID(c *fiber.Ctx) (uint, bool) {
	id, err := strconv.ParseUint(c.Params("id"), 10, 32)
	if err != nil {
		return 0, false
	}
	return uint(id), true
}

// HandleGetSweets lists every sweet, newest first.
func (h *SweetHandler) HandleGetSweets(c *fiber.Ctx) error {
	sweets, err := h.service.GetAllSweets()
	if err != nil {
		return renderError(c, err)
	}
	return c.JSON(fiber.Map{"sweets": sweets})
}

// HandleSearchSweets lists sweets matching the query filters. Filters combine
// conjunctively and absent parameters are not part of the predicate.
func (h *SweetHandler) HandleSearchSweets(c *fiber.Ctx) error {
	filter := models.SearchFilter{
		Name:     c.Query("name"),
		Category: c.Query("category"),
	}

	if raw := c.Query("minPrice"); raw != "" {
		min, err := strconv.ParseFloat(raw, 64)
		if err != nil {
			return validationError(c, "Invalid minPrice value")
		}
		filter.MinPrice = &min
	}
	if raw := c.Query("maxPrice"); raw != "" {
		max, err := strconv.ParseFloat(raw, 64)
		if err != nil {
			return validationError(c, "Invalid maxPrice value")
		}
		filter.MaxPrice = &max
	}

	sweets, err := h.service.SearchSweets(filter)
	if err != nil {
		return renderError(c, err)
	}
	return c.JSON(fiber.Map{
		"count":  len(sweets),
		"sweets": sweets,
	})
}

// CreateSweetRequest is the request body for creating a sweet. Price and
// quantity are pointers so a missing field can be told apart from zero.
type CreateSweetRequest struct {
	Name        string   `json:"name" validate:"required,max=255"`
	Category    string   `json:"category" validate:"required,max=100"`
	Price       *float64 `json:"price" validate:"required,gt=0"`
	Quantity    *int     `json:"quantity" validate:"required,gte=0"`
	Description string   `json:"description"`
	ImageURL    string   `json:"image_url"`
}

// HandleCreateSweet creates a new sweet.
func (h *SweetHandler) HandleCreateSweet(c *fiber.Ctx) error {
	var req CreateSweetRequest
	if err := c.BodyParser(&req); err != nil {
		return validationError(c, "Invalid request body")
	}
	if err := h.validate.Struct(req); err != nil {
		return validationError(c, "Name, category, price, and quantity are required and must be valid")
	}

	sweet := &models.Sweet{
		Name:        req.Name,
		Category:    req.Category,
		Price:       *req.Price,
		Quantity:    *req.Quantity,
		Description: req.Description,
		ImageURL:    req.ImageURL,
	}
	if err := h.service.CreateSweet(sweet); err != nil {
		return renderError(c, err)
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"message": "Sweet created successfully",
		"sweet":   sweet,
	})
}

// HandleUpdateSweet applies a partial update: only fields present in the body
// change. An empty body is rejected before any store access.
func (h *SweetHandler) HandleUpdateSweet(c *fiber.Ctx) error {
	id, ok := parseSweetID(c)
	if !ok {
		return validationError(c, "Invalid sweet id")
	}

	var patch models.SweetPatch
	if err := c.BodyParser(&patch); err != nil {
		return validationError(c, "Invalid request body")
	}
	if err := h.validate.Struct(patch); err != nil {
		return validationError(c, "Invalid price or quantity value")
	}

	sweet, err := h.service.UpdateSweet(id, patch)
	if err != nil {
		return renderError(c, err)
	}

	return c.JSON(fiber.Map{
		"message": "Sweet updated successfully",
		"sweet":   sweet,
	})
}

// HandleDeleteSweet removes a sweet. Admin only.
func (h *SweetHandler) HandleDeleteSweet(c *fiber.Ctx) error {
	id, ok := parseSweetID(c)
	if !ok {
		return validationError(c, "Invalid sweet id")
	}

	if err := h.service.DeleteSweet(id); err != nil {
		return renderError(c, err)
	}
	return c.JSON(fiber.Map{
		"message": "Sweet deleted successfully",
	})
}
