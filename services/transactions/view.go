package transactions

import (
	"github.com/waumini/sadaka/internal/pkg/format"
	"github.com/waumini/sadaka/internal/pkg/models"
)

// Display labels used when the API response carries none.
var (
	categoryLabels = map[models.TransactionCategory]string{
		models.CategoryTithe:    "Tithe",
		models.CategoryOffering: "Offering",
		models.CategoryBuilding: "Church Building",
	}
	paymentLabels = map[models.PaymentType]string{
		models.PaymentCash:  "Cash",
		models.PaymentMpesa: "M-Pesa",
	}
	statusLabels = map[models.TransactionStatus]string{
		models.StatusPending:   "Pending",
		models.StatusCompleted: "Completed",
	}
)

// Row is a transaction prepared for display. Formatting is display-only;
// the underlying record is never mutated.
type Row struct {
	ID          int64
	MemberName  string
	PhoneNumber string
	Amount      string
	Category    string
	PaymentType string
	Status      string
	RecordedBy  string
	CreatedAt   string

	// CanComplete is true only for a pending row seen by a treasurer.
	CanComplete bool
}

// Rows builds display rows for the viewer's session.
func Rows(items []models.Transaction, viewer models.Session) []Row {
	rows := make([]Row, 0, len(items))
	for _, tx := range items {
		rows = append(rows, Row{
			ID:          tx.ID,
			MemberName:  tx.MemberName,
			PhoneNumber: tx.PhoneNumber,
			Amount:      format.Money(tx.Amount),
			Category:    label(tx.CategoryDisplay, categoryLabels[tx.Category]),
			PaymentType: label(tx.PaymentTypeDisplay, paymentLabels[tx.PaymentType]),
			Status:      label(tx.StatusDisplay, statusLabels[tx.Status]),
			RecordedBy:  tx.RecordedByName,
			CreatedAt:   format.Timestamp(tx.CreatedAt),
			CanComplete: tx.Status == models.StatusPending && viewer.IsAdmin(),
		})
	}
	return rows
}

func label(fromAPI, fallback string) string {
	if fromAPI != "" {
		return fromAPI
	}
	return fallback
}
