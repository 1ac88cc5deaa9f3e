package payments

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/Thhaokip/school-management/app/models"
)

func TestFormatAmount(t *testing.T) {
	// Indian digit grouping
	assert.Equal(t, "500.00", FormatAmount(500))
	assert.Equal(t, "1,500.00", FormatAmount(1500))
	assert.Equal(t, "1,00,000.00", FormatAmount(100000))
	assert.Equal(t, "12,34,567.50", FormatAmount(1234567.5))
}

func TestBuildReceiptWithAllRows(t *testing.T) {
	website := "https://example.edu"
	month := "July"
	p := &models.FeePayment{
		ReceiptNumber: "RCPT-25-0042",
		PaidDate:      time.Date(2025, 7, 15, 10, 30, 0, 0, time.UTC),
		Amount:        2500,
		Month:         &month,
		PaymentMethod: "UPI",
		Status:        models.PaymentStatusPaid,
	}
	student := &models.Student{
		StudentID:  "STU-001",
		Name:       "Asha Rao",
		Class:      "VII",
		Section:    "B",
		RollNumber: "14",
		ParentName: "Meera Rao",
	}
	feeHead := &models.FeeHead{Name: "Tuition Fee"}
	accountant := &models.Accountant{Name: "R. Gupta"}
	session := &models.AcademicSession{Name: "2025-26"}
	profile := &models.SchoolProfile{
		Name:    "Sunrise Public School",
		Address: "12 Lake Road",
		City:    "Imphal",
		State:   "Manipur",
		ZipCode: "795001",
		Phone:   "+91 385 0000",
		Email:   "office@sunrise.edu",
		Website: &website,
	}

	data := BuildReceipt(p, student, feeHead, accountant, session, profile)

	assert.Equal(t, "Sunrise Public School", data.SchoolName)
	assert.Equal(t, "12 Lake Road, Imphal, Manipur 795001", data.SchoolAddress)
	assert.Equal(t, "RCPT-25-0042", data.ReceiptNumber)
	assert.Equal(t, "15 Jul 2025", data.PaidDate)
	assert.Equal(t, "Asha Rao", data.StudentName)
	assert.Equal(t, "STU-001", data.StudentCode)
	assert.Equal(t, "VII", data.Class)
	assert.Equal(t, "July", data.Month)
	assert.Equal(t, "2,500.00", data.Amount)
	assert.Equal(t, "R. Gupta", data.AccountantName)
	assert.Equal(t, "2025-26", data.SessionName)
}

func TestBuildReceiptFallsBackToStoredNames(t *testing.T) {
	p := &models.FeePayment{
		ReceiptNumber:  "RCPT-25-0001",
		PaidDate:       time.Date(2025, 1, 2, 0, 0, 0, 0, time.UTC),
		Amount:         100,
		PaymentMethod:  "Cash",
		Status:         models.PaymentStatusPaid,
		StudentName:    "Asha Rao",
		StudentCode:    "STU-001",
		FeeHeadName:    "Exam Fee",
		AccountantName: "R. Gupta",
	}

	data := BuildReceipt(p, nil, nil, nil, nil, nil)

	assert.Equal(t, "Asha Rao", data.StudentName)
	assert.Equal(t, "STU-001", data.StudentCode)
	assert.Equal(t, "Exam Fee", data.FeeHeadName)
	assert.Equal(t, "R. Gupta", data.AccountantName)
	assert.Equal(t, "School", data.SchoolName)
	assert.Empty(t, data.Month)
	assert.Empty(t, data.SessionName)
}

func TestBuildReceiptPlaceholders(t *testing.T) {
	p := &models.FeePayment{
		ReceiptNumber: "RCPT-25-0002",
		PaidDate:      time.Date(2025, 1, 3, 0, 0, 0, 0, time.UTC),
		Amount:        100,
		PaymentMethod: "Cash",
	}

	// nothing joined, nothing denormalized: the receipt still renders
	data := BuildReceipt(p, nil, nil, nil, nil, nil)

	assert.Equal(t, "Unknown Student", data.StudentName)
	assert.Equal(t, "Fee", data.FeeHeadName)
	assert.Equal(t, "-", data.AccountantName)
}
