package models

import "time"

// FeePayment records a single fee payment. Rows are append-only: the receipt
// number is assigned exactly once at creation and never reused, and no
// update or delete path exists.
type FeePayment struct {
	ID                string        `json:"id"`
	StudentID         string        `json:"studentId"`
	FeeHeadID         string        `json:"feeHeadId"`
	AccountantID      string        `json:"accountantId"`
	AcademicSessionID string        `json:"academicSessionId"`
	Amount            float64       `json:"amount"`
	PaidDate          time.Time     `json:"paidDate"`
	Month             *string       `json:"month,omitempty"`
	ReceiptNumber     string        `json:"receiptNumber"`
	PaymentMethod     string        `json:"paymentMethod"`
	Status            PaymentStatus `json:"status"`

	// Denormalized names attached by the list/record joins so the client can
	// render without a second round trip. They also serve as the fallback
	// when a related row has since been removed.
	StudentName    string `json:"studentName,omitempty"`
	StudentCode    string `json:"studentCode,omitempty"`
	FeeHeadName    string `json:"feeHeadName,omitempty"`
	AccountantName string `json:"accountantName,omitempty"`
}
