package feeheads

import (
	"database/sql"

	"github.com/gofiber/fiber/v2"

	"github.com/Thhaokip/school-management/app/database"
	"github.com/Thhaokip/school-management/app/models"
	"github.com/Thhaokip/school-management/app/validation"
)

// GetFeeHeadsAPI returns all fee heads with their class mappings
func GetFeeHeadsAPI(c *fiber.Ctx, db *sql.DB) error {
	feeHeads, err := database.GetAllFeeHeads(db)
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to fetch fee heads"})
	}
	return c.JSON(feeHeads)
}

// CreateFeeHeadAPI creates a new fee head
func CreateFeeHeadAPI(c *fiber.Ctx, db *sql.DB) error {
	feeHead := &models.FeeHead{IsActive: true}
	if err := c.BodyParser(feeHead); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid request body"})
	}

	if err := validation.Struct(feeHead); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": validation.Message(err)})
	}

	if err := database.CreateFeeHead(db, feeHead); err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to create fee head"})
	}

	return c.Status(201).JSON(fiber.Map{
		"id":      feeHead.ID,
		"message": "Fee head created successfully",
	})
}

// UpdateFeeHeadAPI updates an existing fee head and replaces its class
// mappings
func UpdateFeeHeadAPI(c *fiber.Ctx, db *sql.DB) error {
	feeHead := &models.FeeHead{}
	if err := c.BodyParser(feeHead); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid request body"})
	}
	if id := c.Params("id"); id != "" {
		feeHead.ID = id
	}
	if feeHead.ID == "" {
		return c.Status(400).JSON(fiber.Map{"error": "Fee head ID is required"})
	}

	if err := validation.Struct(feeHead); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": validation.Message(err)})
	}

	if err := database.UpdateFeeHead(db, feeHead); err != nil {
		if err == sql.ErrNoRows {
			return c.Status(404).JSON(fiber.Map{"error": "Fee head not found"})
		}
		return c.Status(500).JSON(fiber.Map{"error": "Failed to update fee head"})
	}

	return c.JSON(fiber.Map{"message": "Fee head updated successfully"})
}
