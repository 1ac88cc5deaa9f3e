package auth

import (
	"database/sql"
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/Thhaokip/school-management/app/models"
)

// SetupUsersRoutes mounts the users endpoint. Login must stay reachable
// without a token; the change-password branch authenticates with the
// current password itself.
func SetupUsersRoutes(app *fiber.App, db *sql.DB) {
	app.Post("/api/users", func(c *fiber.Ctx) error {
		return UsersAPI(c, db)
	})
}

// AuthMiddleware validates the JWT (cookie or bearer header) and sets the
// user context
func AuthMiddleware(c *fiber.Ctx) error {
	tokenString := c.Cookies("jwt_token")

	if tokenString == "" {
		auth := c.Get("Authorization")
		if strings.HasPrefix(auth, "Bearer ") {
			tokenString = strings.TrimPrefix(auth, "Bearer ")
		}
	}

	if tokenString == "" {
		return c.Status(401).JSON(fiber.Map{"error": "No token found"})
	}

	claims, err := ValidateJWT(tokenString)
	if err != nil {
		return c.Status(401).JSON(fiber.Map{"error": "Invalid token"})
	}

	c.Locals("user_id", claims.UserID)
	c.Locals("user_email", claims.Email)
	c.Locals("user_name", claims.Name)
	c.Locals("user_role", claims.Role)

	return c.Next()
}

// RequireRole checks that the authenticated user holds one of the allowed
// roles. Admins pass every check.
func RequireRole(allowedRoles ...string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		role, _ := c.Locals("user_role").(string)

		if role == models.RoleAdmin {
			return c.Next()
		}
		for _, allowed := range allowedRoles {
			if role == allowed {
				return c.Next()
			}
		}

		return c.Status(403).JSON(fiber.Map{"error": "Insufficient permissions"})
	}
}
