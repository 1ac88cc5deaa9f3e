package accountants

import (
	"database/sql"

	"github.com/gofiber/fiber/v2"

	"github.com/Thhaokip/school-management/app/database"
	"github.com/Thhaokip/school-management/app/models"
	"github.com/Thhaokip/school-management/app/validation"
)

// GetAccountantsAPI returns all accountants
func GetAccountantsAPI(c *fiber.Ctx, db *sql.DB) error {
	accountants, err := database.GetAllAccountants(db)
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to fetch accountants"})
	}
	return c.JSON(accountants)
}

// CreateAccountantAPI creates a new accountant
func CreateAccountantAPI(c *fiber.Ctx, db *sql.DB) error {
	accountant := &models.Accountant{IsActive: true}
	if err := c.BodyParser(accountant); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid request body"})
	}

	if err := validation.Struct(accountant); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": validation.Message(err)})
	}

	if err := database.CreateAccountant(db, accountant); err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to create accountant"})
	}

	return c.Status(201).JSON(fiber.Map{
		"id":      accountant.ID,
		"message": "Accountant created successfully",
	})
}

// UpdateAccountantAPI updates an existing accountant
func UpdateAccountantAPI(c *fiber.Ctx, db *sql.DB) error {
	accountant := &models.Accountant{}
	if err := c.BodyParser(accountant); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid request body"})
	}
	if id := c.Params("id"); id != "" {
		accountant.ID = id
	}
	if accountant.ID == "" {
		return c.Status(400).JSON(fiber.Map{"error": "Accountant ID is required"})
	}

	if err := validation.Struct(accountant); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": validation.Message(err)})
	}

	if err := database.UpdateAccountant(db, accountant); err != nil {
		if err == sql.ErrNoRows {
			return c.Status(404).JSON(fiber.Map{"error": "Accountant not found"})
		}
		return c.Status(500).JSON(fiber.Map{"error": "Failed to update accountant"})
	}

	return c.JSON(fiber.Map{"message": "Accountant updated successfully"})
}
