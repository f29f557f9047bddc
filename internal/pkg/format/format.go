package format

import (
	"time"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

var printer = message.NewPrinter(language.English)

// Money renders an amount for display in Kenyan shillings, with digit
// grouping and two decimal places. Display only; amounts are never mutated.
func Money(amount float64) string {
	return printer.Sprintf("KSh %.2f", amount)
}

// Timestamp renders a server timestamp for display in the local timezone.
func Timestamp(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.Local().Format("02 Jan 2006, 15:04")
}
