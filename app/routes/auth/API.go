package auth

import (
	"database/sql"
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/Thhaokip/school-management/app/database"
)

// UsersAPI handles POST /api/users: a login request by default, or a
// password change when action is "changePassword".
func UsersAPI(c *fiber.Ctx, db *sql.DB) error {
	type UsersRequest struct {
		Action          string `json:"action"`
		Email           string `json:"email"`
		Password        string `json:"password"`
		UserID          string `json:"userId"`
		CurrentPassword string `json:"currentPassword"`
		NewPassword     string `json:"newPassword"`
	}

	var req UsersRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid request"})
	}

	if req.Action == "changePassword" {
		return changePassword(c, db, req.UserID, req.CurrentPassword, req.NewPassword)
	}
	return login(c, db, req.Email, req.Password)
}

func login(c *fiber.Ctx, db *sql.DB, email, password string) error {
	if email == "" || password == "" {
		return c.Status(400).JSON(fiber.Map{"success": false, "message": "Email and password are required"})
	}

	user, err := database.GetUserByEmail(db, email)
	if err != nil {
		if err == sql.ErrNoRows {
			return c.Status(401).JSON(fiber.Map{"success": false, "message": "Invalid credentials"})
		}
		return c.Status(500).JSON(fiber.Map{"error": "Database error"})
	}

	if !CheckPasswordHash(password, user.Password) {
		return c.Status(401).JSON(fiber.Map{"success": false, "message": "Invalid credentials"})
	}

	token, err := GenerateJWT(user.ID, user.Name, user.Email, user.Role)
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to generate token"})
	}

	// Set JWT as HTTP-only cookie
	c.Cookie(&fiber.Cookie{
		Name:     "jwt_token",
		Value:    token,
		Expires:  time.Now().Add(24 * time.Hour),
		HTTPOnly: true,
		SameSite: "Lax",
	})

	return c.JSON(fiber.Map{
		"success": true,
		"token":   token,
		"user": fiber.Map{
			"id":    user.ID,
			"name":  user.Name,
			"email": user.Email,
			"role":  user.Role,
		},
	})
}

func changePassword(c *fiber.Ctx, db *sql.DB, userID, currentPassword, newPassword string) error {
	if userID == "" || currentPassword == "" || newPassword == "" {
		return c.Status(400).JSON(fiber.Map{"success": false, "message": "Missing required fields"})
	}
	if len(newPassword) < 8 {
		return c.Status(400).JSON(fiber.Map{"success": false, "message": "New password must be at least 8 characters"})
	}

	user, err := database.GetUserByID(db, userID)
	if err != nil {
		if err == sql.ErrNoRows {
			return c.Status(404).JSON(fiber.Map{"success": false, "message": "User not found"})
		}
		return c.Status(500).JSON(fiber.Map{"error": "Database error"})
	}

	if !CheckPasswordHash(currentPassword, user.Password) {
		return c.Status(400).JSON(fiber.Map{"success": false, "message": "Current password is incorrect"})
	}

	hashedPassword, err := HashPassword(newPassword)
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to hash password"})
	}

	if err := database.UpdateUserPassword(db, userID, hashedPassword); err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to update password"})
	}

	return c.JSON(fiber.Map{"success": true, "message": "Password changed successfully"})
}
