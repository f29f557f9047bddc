package transactions

import (
	"strconv"
	"strings"

	"github.com/waumini/sadaka/internal/pkg/models"
)

// TransactionForm is the editable draft of a new transaction. Amount stays a
// string until validation so the entered text survives a failed submit.
// Error keys use the API field names, so server rejections map onto the same
// display as local validation.
type TransactionForm struct {
	MemberName  string
	PhoneNumber string
	Amount      string
	Category    models.TransactionCategory
	PaymentType models.PaymentType
}

// NewTransactionForm returns a draft with the default selections.
func NewTransactionForm() TransactionForm {
	return TransactionForm{
		Category:    models.CategoryTithe,
		PaymentType: models.PaymentCash,
	}
}

// Validate checks the draft and returns field-keyed errors. An empty map
// means the draft may be submitted.
func (f *TransactionForm) Validate() map[string]string {
	errs := make(map[string]string)

	if strings.TrimSpace(f.MemberName) == "" {
		errs["member_name"] = "Member name is required"
	}

	amount, err := strconv.ParseFloat(strings.TrimSpace(f.Amount), 64)
	if f.Amount == "" || err != nil || amount <= 0 {
		errs["amount"] = "Valid amount is required"
	}

	if f.PaymentType == models.PaymentMpesa && strings.TrimSpace(f.PhoneNumber) == "" {
		errs["phone_number"] = "Phone number is required for M-Pesa"
	}

	return errs
}

// Request converts a validated draft into the create payload.
func (f *TransactionForm) Request() models.CreateTransactionRequest {
	amount, _ := strconv.ParseFloat(strings.TrimSpace(f.Amount), 64)
	return models.CreateTransactionRequest{
		MemberName:  strings.TrimSpace(f.MemberName),
		PhoneNumber: strings.TrimSpace(f.PhoneNumber),
		Amount:      amount,
		Category:    f.Category,
		PaymentType: f.PaymentType,
	}
}
