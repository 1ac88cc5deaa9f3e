package payments

import (
	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"

	"github.com/Thhaokip/school-management/app/models"
)

var amountPrinter = message.NewPrinter(language.MustParse("en-IN"))

// ReceiptData is the view model for the printable receipt template.
type ReceiptData struct {
	SchoolName    string
	SchoolAddress string
	SchoolPhone   string
	SchoolEmail   string
	SchoolLogo    string

	ReceiptNumber string
	PaidDate      string

	StudentName string
	StudentCode string
	Class       string
	Section     string
	RollNumber  string
	ParentName  string

	FeeHeadName    string
	Month          string
	Amount         string
	PaymentMethod  string
	Status         string
	AccountantName string
	SessionName    string
}

// BuildReceipt assembles the receipt view from a payment and whatever
// related rows could still be loaded. Missing rows degrade to the names
// stored on the payment itself, and finally to a placeholder, so a receipt
// can always be reprinted.
func BuildReceipt(p *models.FeePayment, student *models.Student, feeHead *models.FeeHead,
	accountant *models.Accountant, session *models.AcademicSession, profile *models.SchoolProfile) *ReceiptData {

	data := &ReceiptData{
		SchoolName:     "School",
		ReceiptNumber:  p.ReceiptNumber,
		PaidDate:       p.PaidDate.Format("02 Jan 2006"),
		StudentName:    fallback(p.StudentName, "Unknown Student"),
		StudentCode:    p.StudentCode,
		FeeHeadName:    fallback(p.FeeHeadName, "Fee"),
		Amount:         FormatAmount(p.Amount),
		PaymentMethod:  p.PaymentMethod,
		Status:         string(p.Status),
		AccountantName: fallback(p.AccountantName, "-"),
	}
	if p.Month != nil {
		data.Month = *p.Month
	}

	if student != nil {
		data.StudentName = student.Name
		data.StudentCode = student.StudentID
		data.Class = student.Class
		data.Section = student.Section
		data.RollNumber = student.RollNumber
		data.ParentName = student.ParentName
	}
	if feeHead != nil {
		data.FeeHeadName = feeHead.Name
	}
	if accountant != nil {
		data.AccountantName = accountant.Name
	}
	if session != nil {
		data.SessionName = session.Name
	}
	if profile != nil {
		data.SchoolName = profile.Name
		data.SchoolAddress = profile.Address + ", " + profile.City + ", " + profile.State + " " + profile.ZipCode
		data.SchoolPhone = profile.Phone
		data.SchoolEmail = profile.Email
		if profile.Logo != nil {
			data.SchoolLogo = *profile.Logo
		}
	}

	return data
}

// FormatAmount renders an amount with Indian digit grouping, e.g.
// 100000 -> "1,00,000.00".
func FormatAmount(amount float64) string {
	return amountPrinter.Sprintf("%v",
		number.Decimal(amount, number.MinFractionDigits(2), number.MaxFractionDigits(2)))
}

func fallback(s, def string) string {
	if s == "" {
		return def
	}
	return s
}
