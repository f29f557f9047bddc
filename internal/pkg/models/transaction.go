package models

import (
	"net/url"
	"time"
)

// TransactionCategory classifies what a payment was given for.
type TransactionCategory string

const (
	CategoryTithe    TransactionCategory = "TITHE"
	CategoryOffering TransactionCategory = "OFFERING"
	CategoryBuilding TransactionCategory = "BUILDING"
)

// PaymentType is how the money was received.
type PaymentType string

const (
	PaymentCash  PaymentType = "CASH"
	PaymentMpesa PaymentType = "MPESA"
)

// TransactionStatus tracks the one-way PENDING -> COMPLETED transition.
type TransactionStatus string

const (
	StatusPending   TransactionStatus = "PENDING"
	StatusCompleted TransactionStatus = "COMPLETED"
)

// Transaction represents a recorded payment as returned by the API.
type Transaction struct {
	ID                 int64               `json:"id"`
	MemberName         string              `json:"member_name"`
	PhoneNumber        string              `json:"phone_number,omitempty"`
	Amount             float64             `json:"amount"`
	Category           TransactionCategory `json:"category"`
	CategoryDisplay    string              `json:"category_display,omitempty"`
	PaymentType        PaymentType         `json:"payment_type"`
	PaymentTypeDisplay string              `json:"payment_type_display,omitempty"`
	Status             TransactionStatus   `json:"status"`
	StatusDisplay      string              `json:"status_display,omitempty"`
	RecordedByName     string              `json:"recorded_by_name,omitempty"`
	CreatedAt          time.Time           `json:"created_at"`
	UpdatedAt          time.Time           `json:"updated_at"`
}

// CreateTransactionRequest is the payload for the transaction create endpoint.
type CreateTransactionRequest struct {
	MemberName  string              `json:"member_name"`
	PhoneNumber string              `json:"phone_number,omitempty"`
	Amount      float64             `json:"amount"`
	Category    TransactionCategory `json:"category"`
	PaymentType PaymentType         `json:"payment_type"`
}

// TransactionFilter is the full filter set for the transaction list. The
// list endpoint is always queried with the whole set; empty fields are
// omitted from the query string.
type TransactionFilter struct {
	Category    TransactionCategory
	PaymentType PaymentType
	Status      TransactionStatus
	DateFrom    string
	DateTo      string
}

// Values encodes the filter as list-endpoint query parameters.
func (f TransactionFilter) Values() url.Values {
	values := url.Values{}
	add := func(key, val string) {
		if val != "" {
			values.Set(key, val)
		}
	}
	add("category", string(f.Category))
	add("paymentType", string(f.PaymentType))
	add("status", string(f.Status))
	add("dateFrom", f.DateFrom)
	add("dateTo", f.DateTo)
	return values
}

// IsZero reports whether no filter field is set.
func (f TransactionFilter) IsZero() bool {
	return f == TransactionFilter{}
}
