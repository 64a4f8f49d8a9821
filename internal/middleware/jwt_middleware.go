package middleware

import (
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/Shradhesh0/sweet-shop-mgmt/internal/models"
	"github.com/Shradhesh0/sweet-shop-mgmt/internal/services"
)

// AuthRequired is a Fiber middleware that verifies the bearer token and
// attaches the caller's identity and role to the request context.
func AuthRequired(authService *services.AuthService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		authHeader := c.Get("Authorization")
		if authHeader == "" {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
				"error": "Authorization header is required",
			})
		}

		// Expected format: "Bearer <token>"
		parts := strings.SplitN(authHeader, " ", 2)
		if len(parts) != 2 || parts[0] != "Bearer" {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
				"error": "Authorization header format must be 'Bearer <token>'",
			})
		}

		claims, err := authService.ValidateToken(parts[1])
		if err != nil {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
				"error": "Invalid or expired token",
			})
		}

		// Numeric JSON claims decode as float64.
		id, ok := claims["id"].(float64)
		if !ok {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
				"error": "Invalid or expired token",
			})
		}
		// A token carrying anything outside the closed role set is rejected
		// outright rather than treated as a regular user.
		roleClaim, _ := claims["role"].(string)
		role := models.Role(roleClaim)
		if !role.Valid() {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
				"error": "Invalid or expired token",
			})
		}

		c.Locals("user_id", uint(id))
		c.Locals("email", claims["email"])
		c.Locals("role", role)

		return c.Next()
	}
}

// AdminRequired restricts a route to callers whose token carries the admin
// role. It must run after AuthRequired. The role is matched against the
// closed Role set; anything unrecognized is denied.
func AdminRequired() fiber.Handler {
	return func(c *fiber.Ctx) error {
		role, _ := c.Locals("role").(models.Role)
		switch role {
		case models.RoleAdmin:
			return c.Next()
		case models.RoleUser:
			return c.Status(fiber.StatusForbidden).JSON(fiber.Map{
				"error": "Admin access required",
			})
		default:
			return c.Status(fiber.StatusForbidden).JSON(fiber.Map{
				"error": "Admin access required",
			})
		}
	}
}
