package payments

import (
	"database/sql"
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/Thhaokip/school-management/app/database"
	"github.com/Thhaokip/school-management/app/models"
	"github.com/Thhaokip/school-management/app/validation"
)

type recordPaymentRequest struct {
	StudentID         string  `json:"studentId" validate:"required"`
	FeeHeadID         string  `json:"feeHeadId" validate:"required"`
	AccountantID      string  `json:"accountantId" validate:"required"`
	AcademicSessionID string  `json:"academicSessionId" validate:"required"`
	Amount            float64 `json:"amount" validate:"required,gt=0"`
	Month             *string `json:"month,omitempty"`
	PaymentMethod     string  `json:"paymentMethod" validate:"required"`
}

// GetPaymentsAPI returns all payments, newest first
func GetPaymentsAPI(c *fiber.Ctx, db *sql.DB) error {
	payments, err := database.GetAllPayments(db)
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to fetch payments"})
	}
	return c.JSON(payments)
}

// RecordPaymentAPI records a fee payment and returns the stored record with
// its freshly issued receipt number. All business checks run before any row
// is written.
func RecordPaymentAPI(c *fiber.Ctx, db *sql.DB) error {
	req := &recordPaymentRequest{}
	if err := c.BodyParser(req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid request body"})
	}

	if err := validation.Struct(req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": validation.Message(err)})
	}
	if !models.ValidPaymentMethod(req.PaymentMethod) {
		return c.Status(400).JSON(fiber.Map{"error": "Unknown payment method"})
	}

	feeHead, err := database.GetFeeHeadByID(db, req.FeeHeadID)
	if err != nil {
		if err == sql.ErrNoRows {
			return c.Status(404).JSON(fiber.Map{"error": "Fee head not found"})
		}
		return c.Status(500).JSON(fiber.Map{"error": "Failed to fetch fee head"})
	}
	if !feeHead.IsOneTime && (req.Month == nil || *req.Month == "") {
		return c.Status(400).JSON(fiber.Map{"error": "Month is required for recurring fee heads"})
	}
	if feeHead.IsOneTime {
		req.Month = nil
	}

	payment := &models.FeePayment{
		StudentID:         req.StudentID,
		FeeHeadID:         req.FeeHeadID,
		AccountantID:      req.AccountantID,
		AcademicSessionID: req.AcademicSessionID,
		Amount:            req.Amount,
		Month:             req.Month,
		PaymentMethod:     req.PaymentMethod,
	}

	if err := database.RecordPayment(db, payment); err != nil {
		if errors.Is(err, database.ErrBadReference) {
			return c.Status(422).JSON(fiber.Map{"error": "Payment references an unknown student, accountant or session"})
		}
		return c.Status(500).JSON(fiber.Map{"error": "Failed to record payment"})
	}

	// Re-read through the list join so the response carries display names.
	stored, err := database.GetPaymentWithDetails(db, payment.ID)
	if err != nil {
		stored = payment
	}

	return c.Status(201).JSON(fiber.Map{
		"payment": stored,
		"message": "Payment recorded successfully",
	})
}

// GetReceiptAPI renders the printable receipt page for a payment
func GetReceiptAPI(c *fiber.Ctx, db *sql.DB) error {
	payment, err := database.GetPaymentWithDetails(db, c.Params("id"))
	if err != nil {
		if err == sql.ErrNoRows {
			return c.Status(404).JSON(fiber.Map{"error": "Payment not found"})
		}
		return c.Status(500).JSON(fiber.Map{"error": "Failed to fetch payment"})
	}

	// Related rows may have been removed since the payment was recorded;
	// BuildReceipt falls back to the names stored on the payment row.
	student, _ := database.GetStudentByID(db, payment.StudentID)
	feeHead, _ := database.GetFeeHeadByID(db, payment.FeeHeadID)
	accountant, _ := database.GetAccountantByID(db, payment.AccountantID)
	session, _ := database.GetAcademicSessionByID(db, payment.AcademicSessionID)
	profile, _ := database.GetSchoolProfile(db)

	return c.Render("receipt", BuildReceipt(payment, student, feeHead, accountant, session, profile))
}
