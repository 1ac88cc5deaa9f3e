package models

// PaymentStatus represents the lifecycle state of a fee payment
type PaymentStatus string

const (
	PaymentStatusPaid    PaymentStatus = "paid"
	PaymentStatusPending PaymentStatus = "pending"
	PaymentStatusOverdue PaymentStatus = "overdue"
)

// Role names recognised by the access layer
const (
	RoleAdmin      = "admin"
	RoleAccountant = "accountant"
)

// PaymentMethods lists the methods offered on the payment form
var PaymentMethods = []string{"Cash", "Online Transfer", "Cheque", "UPI", "Card"}

// ValidPaymentMethod reports whether m is one of the accepted methods.
func ValidPaymentMethod(m string) bool {
	for _, method := range PaymentMethods {
		if m == method {
			return true
		}
	}
	return false
}
