package classes

import (
	"database/sql"
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/Thhaokip/school-management/app/database"
	"github.com/Thhaokip/school-management/app/models"
	"github.com/Thhaokip/school-management/app/validation"
)

// GetClassesAPI returns all classes
func GetClassesAPI(c *fiber.Ctx, db *sql.DB) error {
	classes, err := database.GetAllClasses(db)
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to fetch classes"})
	}
	return c.JSON(classes)
}

// CreateClassAPI creates a new class
func CreateClassAPI(c *fiber.Ctx, db *sql.DB) error {
	class := &models.Class{IsActive: true}
	if err := c.BodyParser(class); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid request body"})
	}

	if err := validation.Struct(class); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": validation.Message(err)})
	}

	if err := database.CreateClass(db, class); err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to create class"})
	}

	return c.Status(201).JSON(fiber.Map{
		"id":      class.ID,
		"message": "Class created successfully",
	})
}

// UpdateClassAPI updates an existing class
func UpdateClassAPI(c *fiber.Ctx, db *sql.DB) error {
	class := &models.Class{}
	if err := c.BodyParser(class); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid request body"})
	}
	if id := c.Params("id"); id != "" {
		class.ID = id
	}
	if class.ID == "" {
		return c.Status(400).JSON(fiber.Map{"error": "Class ID is required"})
	}

	if err := validation.Struct(class); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": validation.Message(err)})
	}

	if err := database.UpdateClass(db, class); err != nil {
		if err == sql.ErrNoRows {
			return c.Status(404).JSON(fiber.Map{"error": "Class not found"})
		}
		return c.Status(500).JSON(fiber.Map{"error": "Failed to update class"})
	}

	return c.JSON(fiber.Map{"message": "Class updated successfully"})
}

// DeleteClassAPI deletes a class. Fee-head mappings referencing the class
// are removed by cascade.
func DeleteClassAPI(c *fiber.Ctx, db *sql.DB) error {
	id := c.Params("id")
	if id == "" {
		var req struct {
			ID string `json:"id"`
		}
		if err := c.BodyParser(&req); err != nil || req.ID == "" {
			return c.Status(400).JSON(fiber.Map{"error": "Class ID is required"})
		}
		id = req.ID
	}

	if err := database.DeleteClass(db, id); err != nil {
		if err == sql.ErrNoRows {
			return c.Status(404).JSON(fiber.Map{"error": "Class not found"})
		}
		if errors.Is(err, database.ErrBadReference) {
			return c.Status(422).JSON(fiber.Map{"error": "Class is still referenced and cannot be deleted"})
		}
		return c.Status(500).JSON(fiber.Map{"error": "Failed to delete class"})
	}

	return c.JSON(fiber.Map{"message": "Class deleted successfully"})
}
